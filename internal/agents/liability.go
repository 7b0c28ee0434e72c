package agents

import "regexp"

// LiabilityAgent extracts the Public liability section, with the
// liability limit surfaced as a structured attribute.
type LiabilityAgent struct {
	indicator *regexp.Regexp
	premium   []*regexp.Regexp
	limit     []*regexp.Regexp
}

func NewLiabilityAgent() *LiabilityAgent {
	return &LiabilityAgent{
		indicator: regexp.MustCompile(`(?i)Public\s+liability`),
		premium: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Public\s+liability\s*.*?R\s?([\d,.\s]+)`),
			regexp.MustCompile(`(?i)Public\s+Liability\s*.*?Premium\s*.*?R\s?([\d,.\s]+)`),
			regexp.MustCompile(`(?i)Liability\s*.*?R\s?([\d,.\s]+)`),
		},
		limit: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Public\s+liability\s*.*?Limit\s*.*?R\s?([\d,.\s]{6,})`),
			regexp.MustCompile(`(?i)Public\s+liability\s*.*?R\s?([\d,.\s]{6,})`),
			regexp.MustCompile(`(?i)Liability\s+limit\s*.*?R\s?([\d,.\s]{6,})`),
		},
	}
}

func (a *LiabilityAgent) Category() string { return "Public liability" }

func (a *LiabilityAgent) Run(docs []string) []Override {
	out := make([]Override, len(docs))
	for i, doc := range docs {
		out[i] = a.extract(doc)
	}
	return out
}

func (a *LiabilityAgent) extract(text string) Override {
	ov := Override{
		Category:   "Public liability",
		Premium:    "N/A",
		SumInsured: "N/A",
		Excess:     "Standard",
	}

	if !a.indicator.MatchString(text) {
		return ov
	}
	ov.Included = true

	if p, ok := firstPremium(text, a.premium, 50, 5000); ok {
		ov.Premium = p
	}

	if limit, ok := firstSum(text, a.limit, 100000); ok {
		ov.SumInsured = limit
		ov.Attributes = append(ov.Attributes, Attribute{
			Description: "General Public Liability",
			SumInsured:  limit,
			Type:        "Liability",
		})
		ov.SubSections = appendUnique(ov.SubSections, "Limit: "+limit)
	}

	return ov
}
