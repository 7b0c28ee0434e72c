// Package money parses and formats rand amounts as they appear in quote
// documents: "R 1,200,000.00", "R450", "1 200 000", etc.
package money

import (
	"strconv"
	"strings"
)

// Digits strips everything except digits and the decimal point. This is
// the canonical cleanup applied to every captured amount string before
// parsing.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse extracts a float amount from a raw captured string. ok is false
// when nothing numeric survives cleanup.
func Parse(raw string) (float64, bool) {
	s := Digits(raw)
	if s == "" || s == "." {
		return 0, false
	}
	// A stray trailing dot ("1,200." after cleanup) is fine; multiple
	// dots from thousand separators used as decimals are not worth
	// rescuing and fail the parse.
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "."), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FormatPremium renders an amount the way premiums are displayed:
// "R1,234.56" with trailing zeros and a bare decimal point trimmed,
// so 450.00 becomes "R450" and 971.45 stays "R971.45".
func FormatPremium(f float64) string {
	s := group(strconv.FormatFloat(f, 'f', 2, 64))
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return "R" + s
}

// FormatSum renders a sum insured with no decimals: "R1,200,000".
func FormatSum(f float64) string {
	return "R" + group(strconv.FormatFloat(f, 'f', 0, 64))
}

// group inserts comma thousand separators into a plain decimal string.
func group(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	if neg {
		intPart = "-" + intPart
	}
	if hasFrac {
		return intPart + "." + frac
	}
	return intPart
}
