package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the fixed set of policy categories tracked for every quote,
// plus per-category extraction tuning. It is built once at startup and
// never mutated afterwards, so it is safe to share across goroutines.
type Catalog struct {
	categories  []string
	subSections map[string][]string
	ranges      map[string]PremiumRange
	minSums     map[string]float64

	defaultRange  PremiumRange
	defaultMinSum float64
}

// PremiumRange bounds a plausible monthly premium for a category.
type PremiumRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Overrides is the optional YAML shape for tuning the catalog without a
// rebuild. Any field left empty keeps the built-in value.
type Overrides struct {
	Categories    []string                `yaml:"categories"`
	SubSections   map[string][]string     `yaml:"sub_sections"`
	PremiumRanges map[string]PremiumRange `yaml:"premium_ranges"`
	MinSumInsured map[string]float64      `yaml:"min_sum_insured"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return build(nil)
}

// Load builds the catalog, applying overrides from the YAML file at path
// if path is non-empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog overrides: %w", err)
	}
	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parse catalog overrides: %w", err)
	}
	return build(&ov), nil
}

func build(ov *Overrides) *Catalog {
	c := &Catalog{
		categories:    append([]string(nil), defaultCategories...),
		subSections:   make(map[string][]string, len(defaultSubSections)),
		ranges:        make(map[string]PremiumRange, len(defaultRanges)),
		minSums:       make(map[string]float64, len(defaultMinSums)),
		defaultRange:  PremiumRange{Min: 20, Max: 50000},
		defaultMinSum: 10000,
	}
	for k, v := range defaultSubSections {
		c.subSections[k] = append([]string(nil), v...)
	}
	for k, v := range defaultRanges {
		c.ranges[k] = v
	}
	for k, v := range defaultMinSums {
		c.minSums[k] = v
	}

	if ov != nil {
		if len(ov.Categories) > 0 {
			c.categories = append([]string(nil), ov.Categories...)
		}
		for k, v := range ov.SubSections {
			c.subSections[k] = append([]string(nil), v...)
		}
		for k, v := range ov.PremiumRanges {
			c.ranges[k] = v
		}
		for k, v := range ov.MinSumInsured {
			c.minSums[k] = v
		}
	}
	return c
}

// Categories returns the category names in catalog order. Callers must
// not modify the returned slice.
func (c *Catalog) Categories() []string {
	return c.categories
}

// Has reports whether name is a known category.
func (c *Catalog) Has(name string) bool {
	for _, cat := range c.categories {
		if cat == name {
			return true
		}
	}
	return false
}

// SubSections returns the recognized sub-section names for a category,
// in catalog order, or nil when the category has no sub-section list.
func (c *Catalog) SubSections(category string) []string {
	return c.subSections[category]
}

// PremiumRange returns the plausible premium band for a category.
// Categories outside the tuning table get a permissive default.
func (c *Catalog) PremiumRange(category string) PremiumRange {
	if r, ok := c.ranges[category]; ok {
		return r
	}
	return c.defaultRange
}

// MinSumInsured returns the smallest sum insured accepted as plausible
// for a category.
func (c *Catalog) MinSumInsured(category string) float64 {
	if m, ok := c.minSums[category]; ok {
		return m
	}
	return c.defaultMinSum
}
