package agents

import "regexp"

// ContentsAgent covers the Office contents section, splitting out
// furniture and office equipment where the document names them.
type ContentsAgent struct {
	indicator  *regexp.Regexp
	premium    []*regexp.Regexp
	sumInsured []*regexp.Regexp
	furniture  []*regexp.Regexp
	equipment  []*regexp.Regexp
}

func NewContentsAgent() *ContentsAgent {
	return &ContentsAgent{
		indicator: regexp.MustCompile(`(?i)Office\s+contents`),
		premium: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Office\s+contents\s*.*?R\s?([\d,.\s]+)`),
			regexp.MustCompile(`(?i)Office\s+contents\s*.*?Premium\s*.*?R\s?([\d,.\s]+)`),
			regexp.MustCompile(`(?i)Contents\s*.*?R\s?([\d,.\s]+)`),
		},
		sumInsured: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Office\s+contents\s*.*?Sum\s+insured\s*.*?R\s?([\d,.\s]{5,})`),
			regexp.MustCompile(`(?i)Office\s+contents\s*.*?R\s?([\d,.\s]{5,})`),
		},
		furniture: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Furniture\s*(?:and\s+fittings)?\s*.*?R\s?([\d,.\s]{4,})`),
		},
		equipment: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:Office|Computer)\s+equipment\s*.*?R\s?([\d,.\s]{4,})`),
		},
	}
}

func (a *ContentsAgent) Category() string { return "Office contents" }

func (a *ContentsAgent) Run(docs []string) []Override {
	out := make([]Override, len(docs))
	for i, doc := range docs {
		out[i] = a.extract(doc)
	}
	return out
}

func (a *ContentsAgent) extract(text string) Override {
	ov := Override{
		Category:   "Office contents",
		Premium:    "N/A",
		SumInsured: "N/A",
		Excess:     "Standard",
	}

	if !a.indicator.MatchString(text) {
		return ov
	}
	ov.Included = true

	if p, ok := firstPremium(text, a.premium, 20, 5000); ok {
		ov.Premium = p
	}
	if s, ok := firstSum(text, a.sumInsured, 10000); ok {
		ov.SumInsured = s
	}

	if v, ok := firstSum(text, a.furniture, 1000); ok {
		ov.Attributes = append(ov.Attributes, Attribute{
			Description: "Furniture and Fittings",
			SumInsured:  v,
			Type:        "Contents",
		})
		ov.SubSections = appendUnique(ov.SubSections, "Furniture and fittings")
	}
	if v, ok := firstSum(text, a.equipment, 1000); ok {
		ov.Attributes = append(ov.Attributes, Attribute{
			Description: "Office Equipment",
			SumInsured:  v,
			Type:        "Contents",
		})
		ov.SubSections = appendUnique(ov.SubSections, "Office equipment")
	}

	return ov
}
