// Package scan is the shared pattern-cascade primitive: an ordered list
// of (regexp, validator) pairs scanned most-specific-first, where the
// first capture that passes validation wins. Field and section
// extraction are both parameterized by tables of these candidates
// instead of duplicating control flow.
package scan

import "regexp"

// Candidate pairs a pattern with an acceptance predicate for its first
// capture group. A nil Validate accepts any match.
type Candidate struct {
	Re       *regexp.Regexp
	Validate func(capture string) bool
}

// First returns the first capture, across candidates in order, that
// passes its validator.
func First(text string, cands []Candidate) (string, bool) {
	for _, c := range cands {
		for _, m := range c.Re.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 {
				continue
			}
			if c.Validate == nil || c.Validate(m[1]) {
				return m[1], true
			}
		}
	}
	return "", false
}

// Each calls fn with every capture from every candidate, in candidate
// order. Used where the best match is chosen by comparison (e.g. the
// highest plausible amount) rather than by position.
func Each(text string, cands []Candidate, fn func(capture string)) {
	for _, c := range cands {
		for _, m := range c.Re.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 {
				continue
			}
			if c.Validate == nil || c.Validate(m[1]) {
				fn(m[1])
			}
		}
	}
}

// Any reports whether any candidate matches at all. Capture groups are
// not required.
func Any(text string, res []*regexp.Regexp) bool {
	for _, re := range res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
