package agents

import "regexp"

// BuildingsAgent handles the Buildings combined section, breaking the
// insured values out per structure where the document itemizes them.
type BuildingsAgent struct {
	indicator   *regexp.Regexp
	premium     []*regexp.Regexp
	sumInsured  []*regexp.Regexp
	mainBuild   []*regexp.Regexp
	outbuilding []*regexp.Regexp
	boundary    *regexp.Regexp
}

func NewBuildingsAgent() *BuildingsAgent {
	return &BuildingsAgent{
		indicator: regexp.MustCompile(`(?i)Buildings?\s+combined`),
		premium: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Buildings?\s+combined\s*.*?R\s?([\d,.\s]+)`),
			regexp.MustCompile(`(?i)Buildings?\s+combined\s*.*?Premium\s*.*?R\s?([\d,.\s]+)`),
			regexp.MustCompile(`(?i)Buildings?\s*.*?R\s?([\d,.\s]+)`),
		},
		sumInsured: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Buildings?\s+combined\s*.*?Sum\s+insured\s*.*?R\s?([\d,.\s]{6,})`),
			regexp.MustCompile(`(?i)Buildings?\s+combined\s*.*?R\s?([\d,.\s]{6,})`),
		},
		mainBuild: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Main\s+building\s*.*?R\s?([\d,.\s]{6,})`),
			regexp.MustCompile(`(?i)Dwelling\s*.*?R\s?([\d,.\s]{6,})`),
		},
		outbuilding: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Outbuildings?\s*.*?R\s?([\d,.\s]{4,})`),
		},
		boundary: regexp.MustCompile(`(?i)Boundary\s+walls?`),
	}
}

func (a *BuildingsAgent) Category() string { return "Buildings combined" }

func (a *BuildingsAgent) Run(docs []string) []Override {
	out := make([]Override, len(docs))
	for i, doc := range docs {
		out[i] = a.extract(doc)
	}
	return out
}

func (a *BuildingsAgent) extract(text string) Override {
	ov := Override{
		Category:   "Buildings combined",
		Premium:    "N/A",
		SumInsured: "N/A",
		Excess:     "Standard",
	}

	if !a.indicator.MatchString(text) {
		return ov
	}
	ov.Included = true

	if p, ok := firstPremium(text, a.premium, 50, 15000); ok {
		ov.Premium = p
	}
	if s, ok := firstSum(text, a.sumInsured, 100000); ok {
		ov.SumInsured = s
	}

	if v, ok := firstSum(text, a.mainBuild, 100000); ok {
		ov.Attributes = append(ov.Attributes, Attribute{
			Description: "Main Building Structure",
			SumInsured:  v,
			Type:        "Building",
		})
		ov.SubSections = appendUnique(ov.SubSections, "Main building")
	}
	if v, ok := firstSum(text, a.outbuilding, 10000); ok {
		ov.Attributes = append(ov.Attributes, Attribute{
			Description: "Outbuildings",
			SumInsured:  v,
			Type:        "Building",
		})
		ov.SubSections = appendUnique(ov.SubSections, "Outbuildings")
	}
	if a.boundary.MatchString(text) {
		ov.SubSections = appendUnique(ov.SubSections, "Boundary walls")
	}

	return ov
}
