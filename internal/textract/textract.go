// Package textract recovers plain text from uploaded quote documents.
// Backends are tried in a fixed priority order; each one runs only when
// the previous tier failed or produced too little text to be usable.
package textract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode"
)

// Document is an uploaded file awaiting text recovery.
type Document struct {
	Filename string
	Data     []byte
}

// Result is recovered text tagged with its origin.
type Result struct {
	Text      string
	Backend   string // which extractor produced the text
	Mode      string // remote quality mode, when applicable
	Chars     int
	Synthetic bool // placeholder text, not real document content
}

// ErrInsufficient marks a backend that ran but produced too little text
// to trust. The pipeline advances to the next tier instead of failing.
var ErrInsufficient = errors.New("insufficient text extracted")

// ErrUnreadable is the only fatal pipeline error: the input cannot be
// opened at all.
var ErrUnreadable = errors.New("document is unreadable")

// Extractor is one tier of the recovery cascade.
type Extractor interface {
	Name() string
	Extract(ctx context.Context, doc Document) (Result, error)
}

// MinSufficientChars is the number of non-whitespace characters a tier
// must produce before the cascade stops.
const MinSufficientChars = 50

// Pipeline tries each extractor in order and returns the first
// sufficient result.
type Pipeline struct {
	tiers []Extractor
	log   *slog.Logger
}

// NewPipeline assembles the standard cascade: the remote layout service
// (when configured), the structured local extractor, the content-stream
// PDF extractor, and finally the synthetic placeholder generator.
func NewPipeline(remote *RemoteClient, log *slog.Logger) *Pipeline {
	var tiers []Extractor
	if remote != nil {
		tiers = append(tiers, remote)
	}
	tiers = append(tiers,
		&LocalExtractor{},
		&PDFStreamExtractor{},
		&SyntheticExtractor{},
	)
	return &Pipeline{tiers: tiers, log: log}
}

// NewPipelineWith builds a pipeline from an explicit tier list.
func NewPipelineWith(log *slog.Logger, tiers ...Extractor) *Pipeline {
	return &Pipeline{tiers: tiers, log: log}
}

// Extract runs the cascade. It returns a non-empty Result or
// ErrUnreadable; a single tier failing is never surfaced.
func (p *Pipeline) Extract(ctx context.Context, doc Document) (Result, error) {
	if len(doc.Data) == 0 {
		return Result{}, fmt.Errorf("%s: %w", doc.Filename, ErrUnreadable)
	}

	for _, tier := range p.tiers {
		res, err := tier.Extract(ctx, doc)
		if err != nil {
			p.log.Warn("extraction tier failed",
				"tier", tier.Name(), "file", doc.Filename, "error", err)
			continue
		}
		if nonWhitespaceCount(res.Text) < MinSufficientChars && !res.Synthetic {
			p.log.Warn("extraction tier insufficient",
				"tier", tier.Name(), "file", doc.Filename, "chars", len(res.Text))
			continue
		}
		res.Chars = len(res.Text)
		p.log.Info("text recovered",
			"tier", tier.Name(), "file", doc.Filename,
			"chars", res.Chars, "synthetic", res.Synthetic)
		return res, nil
	}

	return Result{}, fmt.Errorf("%s: all extraction tiers exhausted: %w", doc.Filename, ErrUnreadable)
}

func nonWhitespaceCount(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
