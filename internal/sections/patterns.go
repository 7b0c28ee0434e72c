package sections

import (
	"regexp"
	"strings"

	"github.com/pvanrooyen/quotecomp/internal/money"
	"github.com/pvanrooyen/quotecomp/internal/scan"
)

// categoryPatterns holds the compiled candidate tables for one
// category. Built once at engine construction, read-only afterwards.
type categoryPatterns struct {
	premium    []scan.Candidate
	sumInsured []scan.Candidate
	included   []*regexp.Regexp
	excluded   []*regexp.Regexp
	excess     []excessPattern
	rawSection []*regexp.Regexp
}

type excessPattern struct {
	re         *regexp.Regexp
	percentage bool
}

func compileCategoryPatterns(category string) *categoryPatterns {
	esc := regexp.QuoteMeta(category)

	premium := []scan.Candidate{
		{Re: regexp.MustCompile(`(?i)` + esc + `\s*[:\-]?\s*(?:Premium|Monthly|PM)?\s*[:\-]?\s*R\s?([\d,.\s]+)`)},
		{Re: regexp.MustCompile(`(?i)Premium\s*[:\-]?\s*` + esc + `\s*[:\-]?\s*R\s?([\d,.\s]+)`)},
		{Re: regexp.MustCompile(`(?i)` + esc + `\s*.*?(?:Monthly|per\s+month|PM)\s*[:\-]?\s*R\s?([\d,.\s]+)`)},
		{Re: regexp.MustCompile(`(?i)` + esc + `\s*Section\s*[:\-]?\s*R\s?([\d,.\s]+)`)},
		{Re: regexp.MustCompile(`(?i)` + esc + `(?:\s+Insurance|\s+Cover|\s+Section)?\s*[:\-]?\s*R\s?([\d,.\s]+)`)},
		{Re: regexp.MustCompile(`(?i)(?:Monthly\s+)?` + esc + `\s*[:\-]?\s*R\s?([\d,.\s]+)`)},
	}

	sumInsured := []scan.Candidate{
		{Re: regexp.MustCompile(`(?i)` + esc + `\s*[:\-]?\s*.*?(?:Sum\s+Insured|Limit|Value|Cover)\s*[:\-]?\s*R\s?([\d,.\s]{5,})`)},
		{Re: regexp.MustCompile(`(?i)(?:Sum\s+Insured|Limit|Value|Cover)\s*[:\-]?\s*` + esc + `\s*[:\-]?\s*R\s?([\d,.\s]{5,})`)},
		{Re: regexp.MustCompile(`(?i)` + esc + `[^\n]*?(?:Buildings?|Contents?|Property)\s*[:\-]?\s*R\s?([\d,.\s]{5,})`)},
		{Re: regexp.MustCompile(`(?i)` + esc + `\s*.*?R\s?([\d,.\s]{5,})(?:\s*(?:limit|cover|insured))`)},
		{Re: regexp.MustCompile(`(?i)(?:Building|Property|Structure)\s*.*?` + esc + `\s*[:\-]?\s*R\s?([\d,.\s]{5,})`)},
		{Re: regexp.MustCompile(`(?i)Contents\s*.*?` + esc + `\s*[:\-]?\s*R\s?([\d,.\s]{5,})`)},
	}

	included := []*regexp.Regexp{
		regexp.MustCompile(`(?i)` + esc + `\s*[:\-]?\s*(?:Yes|Y|Included|✓|Covered|Available)`),
		regexp.MustCompile(`(?i)` + esc + `\s*[:\-]?\s*R\s?[\d,.\s]+`),
		regexp.MustCompile(`(?i)` + esc + `\s+Section\s*[:\-]?\s*(?:Yes|Y|Included)`),
		regexp.MustCompile(`✓\s*` + esc),
		regexp.MustCompile(`(?i)` + esc + `\s*.*?(?:applicable|included|covered)`),
	}

	excluded := []*regexp.Regexp{
		regexp.MustCompile(`(?i)` + esc + `\s*[:\-]?\s*(?:No|N|Not\s+included|✗|Excluded|Not\s+covered|N/A)\b`),
		regexp.MustCompile(`✗\s*` + esc),
		regexp.MustCompile(`(?i)` + esc + `\s*[^\n]*?(?:excluded|not\s+applicable|not\s+covered)`),
	}

	excess := []excessPattern{
		{re: regexp.MustCompile(`(?i)` + esc + `\s*.*?(?:Excess|Deductible)\s*[:\-]?\s*R\s?([\d,.\s]+)`)},
		{re: regexp.MustCompile(`(?i)(?:Standard\s+)?(?:Excess|Deductible)\s*[:\-]?\s*R\s?([\d,.\s]+)`)},
		{re: regexp.MustCompile(`(?i)(\d+)%\s+of\s+(?:claim|loss)`), percentage: true},
		{re: regexp.MustCompile(`(?i)Minimum\s+(?:excess\s+)?R\s?([\d,.\s]+)`)},
		{re: regexp.MustCompile(`(?i)(?:Excess|Deductible)\s*.*?` + esc + `\s*[:\-]?\s*R\s?([\d,.\s]+)`)},
	}

	// Section span: from the category header to the next ALL-CAPS
	// header or end of document. The header alternative stays
	// case-sensitive so lowercase labels don't truncate the span.
	spaced := strings.ReplaceAll(esc, ` `, `\s*`)
	rawSection := []*regexp.Regexp{
		regexp.MustCompile(`(?is)(?:` + esc + `|` + spaced + `)\s*[:\-]*\s*(.*?)(?:(?-i:[A-Z][A-Z\s]+:)|$)`),
		regexp.MustCompile(`(?is)` + esc + `\s*(?-i:SECTION)\s*(.*?)(?:(?-i:[A-Z]+\s+SECTION)|$)`),
		regexp.MustCompile(`(?is)` + esc + `.*?\n(.*?)(?:\n(?-i:[A-Z][A-Z\s]+:)|$)`),
	}

	return &categoryPatterns{
		premium:    premium,
		sumInsured: sumInsured,
		included:   included,
		excluded:   excluded,
		excess:     excess,
		rawSection: rawSection,
	}
}

// rawSectionText isolates this category's text span. Empty when no
// pattern matches; callers fall back to the full document.
func (p *categoryPatterns) rawSectionText(fullText string) string {
	for _, re := range p.rawSection {
		if m := re.FindStringSubmatch(fullText); len(m) > 1 {
			if span := strings.TrimSpace(m[1]); span != "" {
				return span
			}
		}
	}
	return ""
}

// extractExcess returns the excess value, its deductible kind
// ("standard" or "percentage"), and whether anything matched. A
// category-scoped amount is preferred; a percentage-of-claim form is
// stored distinctly from a fixed amount.
func (p *categoryPatterns) extractExcess(text string) (value, kind string, ok bool) {
	for _, ep := range p.excess {
		m := ep.re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		if ep.percentage {
			return m[1] + "% of claim", "percentage", true
		}
		if f, parsed := money.Parse(m[1]); parsed {
			return money.FormatSum(f), "standard", true
		}
	}
	return "", "", false
}

// compileSubSection builds a whitespace-tolerant matcher for one
// sub-section name.
func compileSubSection(name string) *regexp.Regexp {
	tolerant := strings.ReplaceAll(regexp.QuoteMeta(name), ` `, `\s+`)
	return regexp.MustCompile(`(?i)\b` + tolerant + `\b`)
}
