// Package agents holds the specialized, batch-oriented category
// extractors. A handful of categories appear in nearly every commercial
// quote and justify dedicated patterns with tighter numeric floors than
// the generic section engine can safely apply across the whole catalog.
package agents

import (
	"fmt"
	"log/slog"
	"sync"
)

// Attribute is one category-specific structured value (a cover
// sub-total, a fleet size, a liability limit) destined to become a
// detailed item on the merged record.
type Attribute struct {
	Description string
	SumInsured  string
	Type        string
}

// Override is a specialized extraction result for one category of one
// document. It carries the same scalar fields as a generic section
// record so the merge step can substitute them directly.
type Override struct {
	Category    string
	Included    bool
	Premium     string
	SumInsured  string
	SubSections []string
	Excess      string
	Attributes  []Attribute
}

// Agent extracts overrides for one category across a whole batch of
// documents. Results are aligned to the input order.
type Agent interface {
	Category() string
	Run(docs []string) []Override
}

// Registry maps category name to its specialized agent. Absence of an
// entry means the generic engine's output stands.
func Registry() map[string]Agent {
	agents := []Agent{
		NewFireAgent(),
		NewMotorAgent(),
		NewLiabilityAgent(),
		NewBuildingsAgent(),
		NewContentsAgent(),
		NewSasriaAgent(),
	}
	m := make(map[string]Agent, len(agents))
	for _, a := range agents {
		m[a.Category()] = a
	}
	return m
}

// RunAll executes every agent over the batch concurrently. One agent
// failing degrades to no overrides for its category; the others are
// unaffected.
func RunAll(docs []string, registry map[string]Agent, log *slog.Logger) map[string][]Override {
	results := make(map[string][]Override, len(registry))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for name, agent := range registry {
		wg.Add(1)
		go func(name string, agent Agent) {
			defer wg.Done()
			overrides, err := runAgent(agent, docs)
			if err != nil {
				log.Error("specialized agent failed", "category", name, "error", err)
				return
			}
			mu.Lock()
			results[name] = overrides
			mu.Unlock()
		}(name, agent)
	}
	wg.Wait()
	return results
}

// runAgent isolates one agent run so a panic degrades to an error
// instead of taking down the batch.
func runAgent(agent Agent, docs []string) (overrides []Override, err error) {
	defer func() {
		if r := recover(); r != nil {
			overrides = nil
			err = fmt.Errorf("agent panic: %v", r)
		}
	}()
	return agent.Run(docs), nil
}
