// Package sections turns recovered quote text into one structured
// coverage record per policy category. Every extraction step degrades
// to a sentinel instead of failing, so a record is always produced.
package sections

import (
	"regexp"
	"strings"

	"github.com/pvanrooyen/quotecomp/internal/catalog"
	"github.com/pvanrooyen/quotecomp/internal/money"
	"github.com/pvanrooyen/quotecomp/internal/scan"
)

// Sentinels used when nothing plausible is found.
const (
	NotAvailable   = "N/A"
	StandardExcess = "Standard"
)

// DetailedItem is one itemized entry under a category (a scheduled
// asset, a sub-limit, a cover component).
type DetailedItem struct {
	Description   string `json:"description"`
	SumInsured    string `json:"sum_insured"`
	Premium       string `json:"premium,omitempty"`
	Type          string `json:"type,omitempty"`
	Reinstatement string `json:"reinstatement_value,omitempty"`
}

// Record is the per-category extraction result.
type Record struct {
	Included      bool              `json:"included"`
	Premium       string            `json:"premium"`
	SumInsured    string            `json:"sum_insured"`
	SubSections   []string          `json:"sub_sections"`
	Excess        string            `json:"excess"`
	DetailedItems []DetailedItem    `json:"detailed_items"`
	Extensions    []string          `json:"extensions"`
	Deductibles   map[string]string `json:"deductibles"`
}

// Engine extracts section records. All pattern tables are compiled once
// per catalog category at construction and shared read-only afterwards.
type Engine struct {
	cat      *catalog.Catalog
	patterns map[string]*categoryPatterns
	subRe    map[string]*regexp.Regexp
}

// NewEngine compiles per-category pattern tables for every catalog
// category.
func NewEngine(cat *catalog.Catalog) *Engine {
	e := &Engine{
		cat:      cat,
		patterns: make(map[string]*categoryPatterns, len(cat.Categories())),
		subRe:    make(map[string]*regexp.Regexp),
	}
	for _, name := range cat.Categories() {
		e.patterns[name] = compileCategoryPatterns(name)
		for _, sub := range cat.SubSections(name) {
			if _, ok := e.subRe[sub]; !ok {
				e.subRe[sub] = compileSubSection(sub)
			}
		}
	}
	return e
}

// Extract builds the Record for one category from full document text.
// It never fails; absent evidence produces an excluded record with
// sentinel values.
func (e *Engine) Extract(text, category string) Record {
	pats := e.patterns[category]
	if pats == nil {
		pats = compileCategoryPatterns(category)
	}

	rec := Record{
		Premium:     NotAvailable,
		SumInsured:  NotAvailable,
		Excess:      StandardExcess,
		Deductibles: map[string]string{},
	}

	// Best-effort isolation of this category's text span; item and
	// extension parsing prefer it to reduce bleed from neighbours.
	scoped := pats.rawSectionText(text)
	window := text
	if scoped != "" {
		window = scoped
	}

	// Premium, validated against the category's plausibility band.
	rng := e.cat.PremiumRange(category)
	premium, havePremium := scan.First(text, withAmountValidator(pats.premium, func(amount float64) bool {
		return amount >= rng.Min && amount <= rng.Max
	}, 2))
	if havePremium {
		if f, ok := money.Parse(premium); ok {
			rec.Premium = money.FormatPremium(f)
		}
	}

	// Sum insured, floored by the category's minimum plausible value.
	minSum := e.cat.MinSumInsured(category)
	sum, haveSum := scan.First(text, withAmountValidator(pats.sumInsured, func(amount float64) bool {
		return amount >= minSum
	}, 4))
	if haveSum {
		if f, ok := money.Parse(sum); ok {
			rec.SumInsured = money.FormatSum(f)
		}
	}

	// Inclusion: positive evidence (explicit markers or a valid
	// premium) includes; negative evidence always excludes, even when
	// positive evidence exists.
	positive := scan.Any(text, pats.included) || havePremium
	negative := scan.Any(text, pats.excluded)
	switch {
	case negative:
		rec.Included = false
		rec.Premium = NotAvailable
		rec.SumInsured = NotAvailable
	case positive:
		rec.Included = true
	}

	// Sub-sections, appended in catalog order rather than document order.
	for _, sub := range e.cat.SubSections(category) {
		re := e.subRe[sub]
		if re == nil {
			re = compileSubSection(sub)
		}
		if re.MatchString(text) {
			rec.SubSections = append(rec.SubSections, sub)
		}
	}

	// Itemized categories get line-item parsing over the scoped text.
	if isItemized(category) {
		items := parseDetailedItems(window)
		rec.DetailedItems = append(rec.DetailedItems, items...)
		for _, item := range limitItems(items, 3) {
			if item.Description != "" && len(item.Description) < 50 {
				rec.SubSections = append(rec.SubSections, item.Description)
			}
		}
	}

	rec.Extensions = parseExtensions(window)

	excess, kind, ok := pats.extractExcess(text)
	if ok {
		rec.Excess = excess
		rec.Deductibles[kind] = excess
	}

	return rec
}

// isItemized reports whether a category is prone to itemized riders.
func isItemized(category string) bool {
	switch strings.ToLower(category) {
	case "business all risks", "all risks", "office contents",
		"electronic equipment", "buildings combined", "personal, all risks":
		return true
	}
	return false
}

func limitItems(items []DetailedItem, n int) []DetailedItem {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// withAmountValidator wraps candidates with a parse-then-range check.
// minDigits rejects captures too short to be a real amount.
func withAmountValidator(cands []scan.Candidate, ok func(float64) bool, minDigits int) []scan.Candidate {
	out := make([]scan.Candidate, len(cands))
	for i, c := range cands {
		out[i] = scan.Candidate{Re: c.Re, Validate: func(capture string) bool {
			if len(money.Digits(capture)) < minDigits {
				return false
			}
			amount, parsed := money.Parse(capture)
			return parsed && ok(amount)
		}}
	}
	return out
}
