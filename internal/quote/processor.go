package quote

import (
	"context"
	"log/slog"

	"github.com/pvanrooyen/quotecomp/internal/agents"
	"github.com/pvanrooyen/quotecomp/internal/catalog"
	"github.com/pvanrooyen/quotecomp/internal/fields"
	"github.com/pvanrooyen/quotecomp/internal/sections"
	"github.com/pvanrooyen/quotecomp/internal/textract"
)

// Processor runs the full extraction pipeline over a batch of
// documents: text recovery per document, specialized agents over the
// whole batch, then field and section extraction merged into one
// QuoteRecord per document.
type Processor struct {
	pipeline *textract.Pipeline
	fields   *fields.Engine
	sections *sections.Engine
	cat      *catalog.Catalog
	registry map[string]agents.Agent
	workers  int
	log      *slog.Logger
}

func NewProcessor(pipeline *textract.Pipeline, cat *catalog.Catalog, workers int, log *slog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		pipeline: pipeline,
		fields:   fields.NewEngine(),
		sections: sections.NewEngine(cat),
		cat:      cat,
		registry: agents.Registry(),
		workers:  workers,
		log:      log,
	}
}

// ProcessBatch builds one QuoteRecord per document, in input order.
// Documents are processed concurrently; a document whose text cannot be
// recovered at all yields a record carrying the error, and the rest of
// the batch is unaffected.
func (p *Processor) ProcessBatch(ctx context.Context, docs []textract.Document) []QuoteRecord {
	records := make([]QuoteRecord, len(docs))
	texts := make([]string, len(docs))

	// Phase 1: recover text for every document.
	type textResult struct {
		idx int
		res textract.Result
		err error
	}
	results := make(chan textResult, len(docs))
	sem := make(chan struct{}, p.workers)
	for i, doc := range docs {
		sem <- struct{}{}
		go func(i int, doc textract.Document) {
			defer func() { <-sem }()
			res, err := p.pipeline.Extract(ctx, doc)
			results <- textResult{idx: i, res: res, err: err}
		}(i, doc)
	}
	for range docs {
		r := <-results
		records[r.idx] = QuoteRecord{
			QuoteNumber: r.idx + 1,
			Filename:    docs[r.idx].Filename,
		}
		if r.err != nil {
			p.log.Error("text recovery failed", "filename", docs[r.idx].Filename, "error", r.err)
			records[r.idx].Error = r.err.Error()
			continue
		}
		texts[r.idx] = r.res.Text
		records[r.idx].TextSource = r.res.Backend
		records[r.idx].Synthetic = r.res.Synthetic
	}

	// Phase 2: specialized agents see the whole batch at once.
	overrides := agents.RunAll(texts, p.registry, p.log)

	// Phase 3: field and section extraction per document.
	done := make(chan int, len(docs))
	for i := range docs {
		if records[i].Error != "" {
			done <- i
			continue
		}
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem }()
			p.assemble(&records[i], texts[i], overrides, i)
			done <- i
		}(i)
	}
	for range docs {
		<-done
	}

	return records
}

func (p *Processor) assemble(rec *QuoteRecord, text string, overrides map[string][]agents.Override, idx int) {
	rec.Fields = p.fields.Extract(text)

	cats := p.cat.Categories()
	secs := NewSectionMap(len(cats))
	for _, category := range cats {
		generic := p.sections.Extract(text, category)
		if ovs, ok := overrides[category]; ok && idx < len(ovs) {
			generic = Merge(generic, &ovs[idx])
		}
		secs.Set(category, generic)
	}
	rec.Sections = secs
}
