package textract

import (
	"strings"
	"unicode"
)

// Clean normalizes recovered text: horizontal whitespace runs collapse
// to one space, concatenated words from lost layout get re-split at
// lower/upper boundaries, and blank-line runs shrink to a single
// newline. Line structure is preserved so header-based section scoping
// still works downstream.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = collapseSpaces(line)
		line = splitConcatenated(line)
		if line == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func collapseSpaces(line string) string {
	var b strings.Builder
	space := false
	for _, r := range line {
		if r == '\f' {
			b.WriteRune(r)
			space = false
			continue
		}
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// splitConcatenated inserts a space at lowercase-to-uppercase
// boundaries ("FireSection" -> "Fire Section"), a cheap fix for text
// layers that drop spacing.
func splitConcatenated(line string) string {
	var b strings.Builder
	var prev rune
	for i, r := range line {
		if i > 0 && unicode.IsLower(prev) && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
