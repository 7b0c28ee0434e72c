package textract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
)

type fakeExtractor struct {
	name string
	res  Result
	err  error
}

func (f *fakeExtractor) Name() string { return f.name }

func (f *fakeExtractor) Extract(_ context.Context, _ Document) (Result, error) {
	return f.res, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var sufficientText = strings.Repeat("Commercial insurance quote schedule. ", 5)

func TestPipeline_FirstSufficientTierWins(t *testing.T) {
	p := NewPipelineWith(discardLogger(),
		&fakeExtractor{name: "first", res: Result{Text: sufficientText, Backend: "first"}},
		&fakeExtractor{name: "second", res: Result{Text: sufficientText, Backend: "second"}},
	)

	res, err := p.Extract(context.Background(), Document{Filename: "q.pdf", Data: []byte("x")})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Backend != "first" {
		t.Errorf("backend = %q, want first", res.Backend)
	}
	if res.Chars != len(res.Text) {
		t.Errorf("chars = %d, want %d", res.Chars, len(res.Text))
	}
}

func TestPipeline_FailingTierFallsThrough(t *testing.T) {
	p := NewPipelineWith(discardLogger(),
		&fakeExtractor{name: "broken", err: fmt.Errorf("boom")},
		&fakeExtractor{name: "ok", res: Result{Text: sufficientText, Backend: "ok"}},
	)

	res, err := p.Extract(context.Background(), Document{Filename: "q.pdf", Data: []byte("x")})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Backend != "ok" {
		t.Errorf("backend = %q, want ok", res.Backend)
	}
}

func TestPipeline_InsufficientTextFallsThrough(t *testing.T) {
	p := NewPipelineWith(discardLogger(),
		&fakeExtractor{name: "thin", res: Result{Text: "too short", Backend: "thin"}},
		&fakeExtractor{name: "full", res: Result{Text: sufficientText, Backend: "full"}},
	)

	res, err := p.Extract(context.Background(), Document{Filename: "q.pdf", Data: []byte("x")})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Backend != "full" {
		t.Errorf("backend = %q, want full", res.Backend)
	}
}

func TestPipeline_SyntheticBypassesSufficiencyCheck(t *testing.T) {
	p := NewPipelineWith(discardLogger(),
		&fakeExtractor{name: "synthetic", res: Result{Text: "tiny", Backend: "synthetic", Synthetic: true}},
	)

	res, err := p.Extract(context.Background(), Document{Filename: "q.pdf", Data: []byte("x")})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !res.Synthetic {
		t.Error("expected synthetic result")
	}
}

func TestPipeline_EmptyDataIsUnreadable(t *testing.T) {
	p := NewPipelineWith(discardLogger(),
		&fakeExtractor{name: "any", res: Result{Text: sufficientText}},
	)

	_, err := p.Extract(context.Background(), Document{Filename: "q.pdf"})
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("err = %v, want ErrUnreadable", err)
	}
}

func TestPipeline_AllTiersExhausted(t *testing.T) {
	p := NewPipelineWith(discardLogger(),
		&fakeExtractor{name: "a", err: fmt.Errorf("no")},
		&fakeExtractor{name: "b", err: fmt.Errorf("no")},
	)

	_, err := p.Extract(context.Background(), Document{Filename: "q.pdf", Data: []byte("x")})
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("err = %v, want ErrUnreadable", err)
	}
}

func TestPipeline_StandardCascadeEndsSynthetic(t *testing.T) {
	// Garbage bytes fail every real tier, but the synthetic tier always
	// produces a tagged placeholder.
	p := NewPipeline(nil, discardLogger())

	res, err := p.Extract(context.Background(), Document{
		Filename: "broken_policy.pdf",
		Data:     []byte{0x00, 0x01, 0x02},
	})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !res.Synthetic {
		t.Fatal("expected the synthetic tier to answer")
	}
	if !strings.Contains(res.Text, "broken_policy.pdf") {
		t.Error("synthetic text should carry the filename")
	}
}

func TestSyntheticExtractor_TemplateSelection(t *testing.T) {
	e := &SyntheticExtractor{}

	tests := []struct {
		filename string
		contains string
	}{
		{"my_policy.pdf", "POLICY SCHEDULE"},
		{"commercial_quote.docx", "QUOTATION"},
		{"whatever.txt", "INSURANCE QUOTE"},
	}
	for _, tt := range tests {
		res, err := e.Extract(context.Background(), Document{Filename: tt.filename})
		if err != nil {
			t.Fatalf("Extract(%q): %v", tt.filename, err)
		}
		if !res.Synthetic || res.Backend != "synthetic" {
			t.Errorf("%q: result not tagged synthetic", tt.filename)
		}
		if !strings.Contains(res.Text, tt.contains) {
			t.Errorf("%q: template missing %q", tt.filename, tt.contains)
		}
	}
}

func TestSyntheticExtractor_NoFilename(t *testing.T) {
	e := &SyntheticExtractor{}
	if _, err := e.Extract(context.Background(), Document{}); err == nil {
		t.Fatal("expected error without a filename")
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"collapse runs",
			"Fire   section    R450",
			"Fire section R450",
		},
		{
			"split concatenated words",
			"FireSection premiumDue",
			"Fire Section premium Due",
		},
		{
			"blank line runs shrink",
			"a\n\n\n\nb",
			"a\n\nb",
		},
		{
			"line structure preserved",
			"POLICY SECTIONS:\nFire: R450",
			"POLICY SECTIONS:\nFire: R450",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsSupportedExtension(t *testing.T) {
	for _, name := range []string{"a.pdf", "b.docx", "c.html", "d.md", "e.txt"} {
		if !IsSupportedExtension(name) {
			t.Errorf("%q should be supported", name)
		}
	}
	for _, name := range []string{"a.exe", "b.csv", "noext"} {
		if IsSupportedExtension(name) {
			t.Errorf("%q should not be supported", name)
		}
	}
}
