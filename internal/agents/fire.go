package agents

import "regexp"

// FireAgent extracts the Fire section with dedicated patterns for
// building, contents and stock sub-totals. Sum insured floors are set
// for commercial property values, far above the generic defaults.
type FireAgent struct {
	indicators []*regexp.Regexp
	premium    []*regexp.Regexp
	sumInsured []*regexp.Regexp
	buildings  []*regexp.Regexp
	contents   []*regexp.Regexp
	stock      []*regexp.Regexp
	excess     []*regexp.Regexp
	excessPct  *regexp.Regexp
	subs       map[string][]*regexp.Regexp
	subOrder   []string
}

func NewFireAgent() *FireAgent {
	return &FireAgent{
		indicators: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bFire\b`),
			regexp.MustCompile(`(?i)Fire\s+(?:Insurance|Cover|Section)`),
			regexp.MustCompile(`(?i)Fire\s+&\s+Allied\s+Perils`),
		},
		premium: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Fire\s*[:\-]?\s*.*?(?:Premium|Monthly)\s*.*?R\s?([\d,.\s]+)`),
			regexp.MustCompile(`(?i)Fire\s+(?:Insurance|Cover|Section)\s*.*?Premium\s*.*?R\s?([\d,.\s]+)`),
			regexp.MustCompile(`(?i)(?:Fire|Fire\s+&\s+Allied\s+Perils)\s*.*?Monthly\s*.*?R\s?([\d,.\s]+)`),
			regexp.MustCompile(`(?i)Fire\s*[:\-]?\s*R\s?([\d,.\s]+)(?:\s*(?:per\s+month|monthly|pm))?`),
			regexp.MustCompile(`(?i)(?:Fire\s+section|Fire\s+cover)\s*[:\-]?\s*.*?R\s?([\d,.\s]+)`),
			regexp.MustCompile(`(?i)Fire\s+and\s+Allied\s+Perils\s*.*?R\s?([\d,.\s]+)`),
		},
		sumInsured: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Fire\s*.*?(?:Buildings?|Structure)\s*[:\-]?\s*R\s?([\d,.\s]{6,})`),
			regexp.MustCompile(`(?i)Fire\s*.*?(?:Contents|Stock)\s*[:\-]?\s*R\s?([\d,.\s]{6,})`),
			regexp.MustCompile(`(?i)Fire\s*.*?(?:Sum\s+Insured|Limit|Value)\s*[:\-]?\s*R\s?([\d,.\s]{6,})`),
			regexp.MustCompile(`(?i)(?:Building|Property)\s+value\s*.*?Fire\s*.*?R\s?([\d,.\s]{6,})`),
			regexp.MustCompile(`(?i)Fire\s+section\s*.*?(?:building|structure|property)\s*[:\-]?\s*R\s?([\d,.\s]{6,})`),
		},
		buildings: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Fire\s*.*?Buildings?\s*[:\-]?\s*R\s?([\d,.\s]{6,})`),
			regexp.MustCompile(`(?i)Main\s+building\s*.*?R\s?([\d,.\s]{6,})`),
			regexp.MustCompile(`(?i)Building\s+structure\s*.*?R\s?([\d,.\s]{6,})`),
			regexp.MustCompile(`(?i)Property\s+value\s*.*?R\s?([\d,.\s]{6,})`),
		},
		contents: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Fire\s*.*?Contents\s*[:\-]?\s*R\s?([\d,.\s]{5,})`),
			regexp.MustCompile(`(?i)Contents\s+cover\s*.*?R\s?([\d,.\s]{5,})`),
		},
		stock: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Fire\s*.*?Stock\s*[:\-]?\s*R\s?([\d,.\s]{5,})`),
			regexp.MustCompile(`(?i)Stock\s+in\s+trade\s*.*?R\s?([\d,.\s]{5,})`),
		},
		excess: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Fire\s*.*?(?:Excess|Deductible)\s*[:\-]?\s*R\s?([\d,.\s]+)`),
			regexp.MustCompile(`(?i)Excess\s*.*?Fire\s*.*?R\s?([\d,.\s]+)`),
		},
		excessPct: regexp.MustCompile(`(?i)Fire\s*.*?(\d+)%\s+of\s+claim`),
		subs: map[string][]*regexp.Regexp{
			"Building structure":        {regexp.MustCompile(`(?i)building\s+structure`), regexp.MustCompile(`(?i)main\s+building`), regexp.MustCompile(`(?i)property\s+structure`)},
			"Contents":                  {regexp.MustCompile(`(?i)\bcontents\b`)},
			"Stock":                     {regexp.MustCompile(`(?i)\bstock\b`)},
			"Loss of rent":              {regexp.MustCompile(`(?i)loss\s+of\s+rent`), regexp.MustCompile(`(?i)rental\s+income`)},
			"Debris removal":            {regexp.MustCompile(`(?i)debris\s+removal`), regexp.MustCompile(`(?i)clearing\s+costs`)},
			"Alternative accommodation": {regexp.MustCompile(`(?i)alternative\s+accommodation`), regexp.MustCompile(`(?i)temporary\s+accommodation`)},
		},
		subOrder: []string{"Building structure", "Contents", "Stock", "Loss of rent", "Debris removal", "Alternative accommodation"},
	}
}

func (a *FireAgent) Category() string { return "Fire" }

func (a *FireAgent) Run(docs []string) []Override {
	out := make([]Override, len(docs))
	for i, doc := range docs {
		out[i] = a.extract(doc)
	}
	return out
}

func (a *FireAgent) extract(text string) Override {
	ov := Override{
		Category:   "Fire",
		Premium:    "N/A",
		SumInsured: "N/A",
		Excess:     "Standard",
	}

	if !anyMatch(text, a.indicators) {
		return ov
	}
	ov.Included = true

	if p, ok := firstPremium(text, a.premium, 50, 15000); ok {
		ov.Premium = p
	}
	if s, ok := firstSum(text, a.sumInsured, 100000); ok {
		ov.SumInsured = s
	}

	if b, ok := firstSum(text, a.buildings, 100000); ok {
		ov.Attributes = append(ov.Attributes, Attribute{
			Description: "Building Structure Coverage",
			SumInsured:  b,
			Type:        "Building",
		})
		ov.SubSections = appendUnique(ov.SubSections, "Building structure")
	}
	if c, ok := firstSum(text, a.contents, 10000); ok {
		ov.Attributes = append(ov.Attributes, Attribute{
			Description: "Contents Coverage",
			SumInsured:  c,
			Type:        "Contents",
		})
		ov.SubSections = appendUnique(ov.SubSections, "Contents")
	}
	if s, ok := firstSum(text, a.stock, 10000); ok {
		ov.Attributes = append(ov.Attributes, Attribute{
			Description: "Stock in Trade",
			SumInsured:  s,
			Type:        "Stock",
		})
		ov.SubSections = appendUnique(ov.SubSections, "Stock")
	}

	if m := a.excessPct.FindStringSubmatch(text); m != nil {
		ov.Excess = m[1] + "% of claim"
	} else if e, ok := firstSum(text, a.excess, 1); ok {
		ov.Excess = e
	}

	for _, name := range a.subOrder {
		if anyMatch(text, a.subs[name]) {
			ov.SubSections = appendUnique(ov.SubSections, name)
		}
	}

	return ov
}
