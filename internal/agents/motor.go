package agents

import "regexp"

// MotorAgent extracts the Motor General section: premium, fleet size
// and cover type.
type MotorAgent struct {
	indicator *regexp.Regexp
	premium   []*regexp.Regexp
	vehicles  []*regexp.Regexp
	coverType []*regexp.Regexp
}

func NewMotorAgent() *MotorAgent {
	return &MotorAgent{
		indicator: regexp.MustCompile(`(?i)\bMotor\b`),
		premium: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Motor\s+General\s*.*?R\s?([\d,.\s]+)`),
			regexp.MustCompile(`(?i)Motor\s*.*?(?:Premium|Monthly)\s*.*?R\s?([\d,.\s]+)`),
			regexp.MustCompile(`(?i)Vehicle\s*.*?(?:Insurance|Cover)\s*.*?R\s?([\d,.\s]+)`),
		},
		vehicles: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(\d+)\s+vehicles?`),
			regexp.MustCompile(`(?i)Fleet\s+of\s+(\d+)`),
			regexp.MustCompile(`(?i)Motor\s*.*?(\d+)\s*vehicles?`),
		},
		coverType: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(Comprehensive|Third\s+party|Fire\s+&\s+theft)\b`),
		},
	}
}

func (a *MotorAgent) Category() string { return "Motor General" }

func (a *MotorAgent) Run(docs []string) []Override {
	out := make([]Override, len(docs))
	for i, doc := range docs {
		out[i] = a.extract(doc)
	}
	return out
}

func (a *MotorAgent) extract(text string) Override {
	ov := Override{
		Category:   "Motor General",
		Premium:    "N/A",
		SumInsured: "N/A",
		Excess:     "Standard",
	}

	if !a.indicator.MatchString(text) {
		return ov
	}
	ov.Included = true

	if p, ok := firstPremium(text, a.premium, 50, 20000); ok {
		ov.Premium = p
	}

	for _, re := range a.vehicles {
		if m := re.FindStringSubmatch(text); m != nil {
			ov.Attributes = append(ov.Attributes, Attribute{
				Description: "Fleet Coverage - " + m[1] + " Vehicles",
				SumInsured:  "As per schedule",
				Type:        "Vehicles",
			})
			ov.SubSections = appendUnique(ov.SubSections, m[1]+" vehicles")
			break
		}
	}

	for _, re := range a.coverType {
		if m := re.FindStringSubmatch(text); m != nil {
			ov.Attributes = append(ov.Attributes, Attribute{
				Description: "Cover Type: " + m[1],
				SumInsured:  "N/A",
				Type:        "Coverage Type",
			})
			break
		}
	}

	return ov
}
