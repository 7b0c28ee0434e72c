package quote

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pvanrooyen/quotecomp/internal/catalog"
	"github.com/pvanrooyen/quotecomp/internal/textract"
)

func testProcessor() *Processor {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProcessor(textract.NewPipeline(nil, log), catalog.Default(), 2, log)
}

func quoteDoc(n int) textract.Document {
	text := fmt.Sprintf(`COMMERCIAL INSURANCE QUOTE %d

Client: Batch Customer %d (Pty) Ltd
Fire Cover Premium: R4%d0.00
Fire Building: R1,200,000
Total premium: R2,500.00
`, n, n, n)
	return textract.Document{
		Filename: fmt.Sprintf("quote_%d.txt", n),
		Data:     []byte(text),
	}
}

func TestProcessBatch_PreservesInputOrder(t *testing.T) {
	docs := []textract.Document{quoteDoc(1), quoteDoc(2), quoteDoc(3)}

	records := testProcessor().ProcessBatch(context.Background(), docs)

	if len(records) != 3 {
		t.Fatalf("records = %d", len(records))
	}
	for i, rec := range records {
		if rec.QuoteNumber != i+1 {
			t.Errorf("record %d numbered %d", i, rec.QuoteNumber)
		}
		if rec.Filename != docs[i].Filename {
			t.Errorf("record %d filename = %q, want %q", i, rec.Filename, docs[i].Filename)
		}
		if rec.Error != "" {
			t.Errorf("record %d unexpected error %q", i, rec.Error)
		}
	}
}

func TestProcessBatch_ExtractsFieldsAndSections(t *testing.T) {
	records := testProcessor().ProcessBatch(context.Background(), []textract.Document{quoteDoc(1)})
	rec := records[0]

	if rec.Fields.TotalPremium != "R2,500" {
		t.Errorf("TotalPremium = %q", rec.Fields.TotalPremium)
	}
	if !strings.Contains(rec.Fields.ClientDetails, "Batch Customer 1") {
		t.Errorf("ClientDetails = %q", rec.Fields.ClientDetails)
	}

	cats := catalog.Default().Categories()
	if rec.Sections.Len() != len(cats) {
		t.Fatalf("sections = %d, want one per category", rec.Sections.Len())
	}
	for i, cat := range rec.Sections.Categories() {
		if cat != cats[i] {
			t.Fatalf("section order diverges at %d: %q vs %q", i, cat, cats[i])
		}
	}

	fire, ok := rec.Sections.Get("Fire")
	if !ok {
		t.Fatal("Fire section missing")
	}
	if !fire.Included {
		t.Error("Fire should be included")
	}
	if fire.Premium == "N/A" {
		t.Error("Fire premium should be extracted")
	}
}

func TestProcessBatch_AgentOverrideMergedIn(t *testing.T) {
	records := testProcessor().ProcessBatch(context.Background(), []textract.Document{quoteDoc(1)})
	fire, _ := records[0].Sections.Get("Fire")

	// The specialized agent contributes the building attribute as a
	// detailed item.
	found := false
	for _, item := range fire.DetailedItems {
		if item.Description == "Building Structure Coverage" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected agent attribute among detailed items, got %+v", fire.DetailedItems)
	}
}

func TestProcessBatch_UnreadableDocDoesNotAbortSiblings(t *testing.T) {
	docs := []textract.Document{
		quoteDoc(1),
		{Filename: "empty.txt"},
		quoteDoc(3),
	}

	records := testProcessor().ProcessBatch(context.Background(), docs)

	if records[1].Error == "" {
		t.Error("empty document should carry an error")
	}
	if records[1].Sections != nil {
		t.Error("failed document should have no sections")
	}
	for _, i := range []int{0, 2} {
		if records[i].Error != "" {
			t.Errorf("sibling %d failed: %s", i, records[i].Error)
		}
		if records[i].Sections == nil {
			t.Errorf("sibling %d missing sections", i)
		}
	}
}

func TestProcessBatch_SyntheticFallbackTagged(t *testing.T) {
	docs := []textract.Document{{
		Filename: "garbled_policy.pdf",
		Data:     []byte{0xde, 0xad, 0xbe, 0xef},
	}}

	records := testProcessor().ProcessBatch(context.Background(), docs)
	rec := records[0]

	if rec.Error != "" {
		t.Fatalf("unexpected error: %s", rec.Error)
	}
	if !rec.Synthetic {
		t.Error("fabricated text must be tagged synthetic")
	}
	if rec.Sections == nil || rec.Sections.Len() == 0 {
		t.Error("synthetic text should still yield a full record")
	}
}
