// Package quote assembles the final per-document records: scalar fields
// plus one section record per catalog category, with specialized agent
// overrides merged in. Records are immutable once built.
package quote

import (
	"bytes"
	"encoding/json"

	"github.com/pvanrooyen/quotecomp/internal/agents"
	"github.com/pvanrooyen/quotecomp/internal/fields"
	"github.com/pvanrooyen/quotecomp/internal/sections"
)

// QuoteRecord is the structured result for one input document. Records
// in a batch are numbered 1..N in input order.
type QuoteRecord struct {
	QuoteNumber int           `json:"quote_number"`
	Filename    string        `json:"filename"`
	Fields      fields.Fields `json:"fields"`
	Sections    *SectionMap   `json:"policy_sections"`
	TextSource  string        `json:"text_source,omitempty"`
	Synthetic   bool          `json:"synthetic_text,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// SectionMap is a category → section record mapping that marshals in
// insertion order, so JSON output follows the catalog rather than
// lexicographic key order.
type SectionMap struct {
	order []string
	items map[string]sections.Record
}

func NewSectionMap(capacity int) *SectionMap {
	return &SectionMap{
		order: make([]string, 0, capacity),
		items: make(map[string]sections.Record, capacity),
	}
}

// Set stores a record under category, keeping first-insertion order.
func (m *SectionMap) Set(category string, rec sections.Record) {
	if _, ok := m.items[category]; !ok {
		m.order = append(m.order, category)
	}
	m.items[category] = rec
}

func (m *SectionMap) Get(category string) (sections.Record, bool) {
	rec, ok := m.items[category]
	return rec, ok
}

func (m *SectionMap) Len() int { return len(m.order) }

// Categories returns the insertion order. The returned slice must not
// be modified.
func (m *SectionMap) Categories() []string { return m.order }

func (m *SectionMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cat)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.items[cat])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Merge folds a specialized agent override into the generic section
// record for the same category. Non-sentinel override scalars replace
// the generic values; attributes become additional detailed items;
// generic sub-sections and extensions are kept, with override
// sub-sections appended after them. An override whose agent found no
// evidence (Included false) leaves the generic record untouched.
func Merge(generic sections.Record, ov *agents.Override) sections.Record {
	if ov == nil || !ov.Included {
		return generic
	}

	merged := generic
	merged.Included = true
	if ov.Premium != sections.NotAvailable {
		merged.Premium = ov.Premium
	}
	if ov.SumInsured != sections.NotAvailable {
		merged.SumInsured = ov.SumInsured
	}
	if ov.Excess != "" && ov.Excess != sections.StandardExcess {
		merged.Excess = ov.Excess
	}

	merged.SubSections = appendMissing(merged.SubSections, ov.SubSections)

	for _, attr := range ov.Attributes {
		if attr.SumInsured == "" || attr.SumInsured == sections.NotAvailable {
			continue
		}
		merged.DetailedItems = append(merged.DetailedItems, sections.DetailedItem{
			Description: attr.Description,
			SumInsured:  attr.SumInsured,
			Type:        attr.Type,
		})
	}

	return merged
}

func appendMissing(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}
	seen := make(map[string]struct{}, len(base))
	for _, s := range base {
		seen[s] = struct{}{}
	}
	out := base
	for _, s := range extra {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
