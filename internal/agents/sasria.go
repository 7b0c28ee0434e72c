package agents

import "regexp"

// SasriaAgent covers the SASRIA special-risks section. SASRIA cover
// tracks the main sections, so the sum insured is reported as such and
// the sub-sections are the statutory perils.
type SasriaAgent struct {
	indicator *regexp.Regexp
	premium   []*regexp.Regexp
}

func NewSasriaAgent() *SasriaAgent {
	return &SasriaAgent{
		indicator: regexp.MustCompile(`(?i)\bSASRIA\b`),
		premium: []*regexp.Regexp{
			regexp.MustCompile(`(?i)SASRIA\s*.*?R\s?([\d,.\s]+)`),
			regexp.MustCompile(`(?i)SASRIA\s*.*?Premium\s*.*?R\s?([\d,.\s]+)`),
			regexp.MustCompile(`(?i)Special\s+risks?\s*.*?R\s?([\d,.\s]+)`),
		},
	}
}

func (a *SasriaAgent) Category() string { return "SASRIA" }

func (a *SasriaAgent) Run(docs []string) []Override {
	out := make([]Override, len(docs))
	for i, doc := range docs {
		out[i] = a.extract(doc)
	}
	return out
}

func (a *SasriaAgent) extract(text string) Override {
	ov := Override{
		Category:   "SASRIA",
		Premium:    "N/A",
		SumInsured: "N/A",
		Excess:     "Standard",
	}

	if !a.indicator.MatchString(text) {
		return ov
	}
	ov.Included = true
	ov.SumInsured = "As per main sections"
	ov.SubSections = []string{"Riot damages", "Strike damages", "Civil commotion"}

	if p, ok := firstPremium(text, a.premium, 20, 3000); ok {
		ov.Premium = p
	}

	return ov
}
