package agents

import (
	"regexp"

	"github.com/pvanrooyen/quotecomp/internal/money"
)

// firstPremium returns the first captured amount within [min, max],
// premium-formatted.
func firstPremium(text string, patterns []*regexp.Regexp, min, max float64) (string, bool) {
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if len(money.Digits(m[1])) < 2 {
				continue
			}
			amount, ok := money.Parse(m[1])
			if !ok {
				continue
			}
			if amount >= min && amount <= max {
				return money.FormatPremium(amount), true
			}
		}
	}
	return "", false
}

// firstSum returns the first captured amount at or above floor,
// sum-insured-formatted.
func firstSum(text string, patterns []*regexp.Regexp, floor float64) (string, bool) {
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			amount, ok := money.Parse(m[1])
			if !ok {
				continue
			}
			if amount >= floor {
				return money.FormatSum(amount), true
			}
		}
	}
	return "", false
}

func anyMatch(text string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// appendUnique appends s to list unless already present.
func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
