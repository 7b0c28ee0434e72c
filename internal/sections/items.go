package sections

import (
	"regexp"
	"strings"

	"github.com/pvanrooyen/quotecomp/internal/money"
)

// itemPatterns are the complementary forms scheduled items take in
// quote schedules. capture groups: description, sum insured, optional
// premium.
var itemPatterns = []*regexp.Regexp{
	// "Item 1: Intercom Camera, Computer Screen - R 24,000 - R 60.00"
	regexp.MustCompile(`(?i)Item\s+\d+[:\s]*([^-\n]+?)\s*-\s*R\s?([\d,.\s]+)\s*-\s*R\s?([\d,.\s]+)`),
	// "Intercom Camera, Computer Screen - R 24,000"
	regexp.MustCompile(`(?i)([A-Z][^,\n]*(?:Camera|Computer|Screen|Phone|Equipment|Machine|Gate|Garden|Motor|Apple|Samsung)[^,\n]*),?\s*(?:[^\d]*)?R?\s?([\d,\s]+)`),
	// "Apple iPhone 14 Pro Max 256 GB - R 15,000"
	regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+\s+\d+\s+(?:Pro|Max|Plus)?\s*\d*\s*GB?)\s*[^\d]*R?\s?([\d,\s]+)`),
	// "IMEI: 123456789012345 - R 12,000"
	regexp.MustCompile(`(?i)(IMEI[:\s]*\d+[^\n]*?)\s*R?\s?([\d,\s]+)`),
	// General equipment.
	regexp.MustCompile(`(?i)([A-Z][a-z]+(?:\s+[a-z]+)*\s+(?:equipment|motors|receiver|beams|loop))\s*[^\d]*R?\s?([\d,\s]+)`),
	// Building components.
	regexp.MustCompile(`(?i)([A-Z][a-z]+\s+(?:building|structure|walls|roof|foundation|improvements))\s*[^\d]*R?\s?([\d,\s]+)`),
}

// itemKeywordPatterns pick up named sub-section keywords with an amount
// somewhere in a local context window.
var itemKeywordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Main\s+building|Outbuildings|Boundary\s+walls|Fixed\s+improvements|Furniture\s+&\s+fittings)`),
	regexp.MustCompile(`(?i)(Office\s+equipment|Computer\s+equipment|Personal\s+effects|Building\s+structure)`),
	regexp.MustCompile(`(?i)(Contents|Stock|Loss\s+of\s+rent|Debris\s+removal|Windscreen\s+cover)`),
}

var contextAmountRe = regexp.MustCompile(`R\s?([\d,.\s]+)`)

// parseDetailedItems scans a category-scoped text window for scheduled
// line items. Candidates without a plausible numeric amount are
// discarded.
func parseDetailedItems(window string) []DetailedItem {
	var items []DetailedItem
	reinstatement := "No"
	if strings.Contains(strings.ToLower(window), "reinstatement") {
		reinstatement = "Yes"
	}

	for _, re := range itemPatterns {
		for _, m := range re.FindAllStringSubmatch(window, -1) {
			desc := strings.TrimSpace(m[1])
			value := money.Digits(m[2])
			if len(value) <= 2 {
				continue
			}
			item := DetailedItem{
				Description:   desc,
				SumInsured:    "R" + value,
				Reinstatement: reinstatement,
			}
			if len(m) >= 4 {
				if premium := money.Digits(m[3]); premium != "" {
					item.Premium = "R" + premium
				}
			}
			items = append(items, item)
		}
	}

	// Sub-section keywords with a nearby amount.
	for _, re := range itemKeywordPatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(window, -1) {
			name := strings.TrimSpace(window[loc[2]:loc[3]])
			start := loc[0] - 100
			if start < 0 {
				start = 0
			}
			end := loc[1] + 100
			if end > len(window) {
				end = len(window)
			}
			vm := contextAmountRe.FindStringSubmatch(window[start:end])
			if vm == nil {
				continue
			}
			value := money.Digits(vm[1])
			if len(value) <= 3 {
				continue
			}
			items = append(items, DetailedItem{
				Description:   name,
				SumInsured:    "R" + value,
				Reinstatement: "As per policy",
			})
		}
	}

	return items
}

// extensionPatterns mark free-text coverage extensions. The captured
// snippet must stay on the marker's line, so the repetition never skips
// a line break.
var extensionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Includes?|Extensions?|Additional\s+cover|Also\s+covers?)[:\s]*((?:[^.\n]+\.?[ \t]*){1,3})`),
	regexp.MustCompile(`(?i)(?:Cover\s+for|Covering|Extended\s+to)[:\s]*((?:[^.\n]+\.?[ \t]*){1,3})`),
	regexp.MustCompile(`(?i)(?:Plus|Including)[:\s]*((?:[^.\n]+\.?[ \t]*){1,2})`),
}

// parseExtensions returns free-text snippets following extension marker
// phrases, filtered to a sane length.
func parseExtensions(window string) []string {
	var out []string
	for _, re := range extensionPatterns {
		for _, m := range re.FindAllStringSubmatch(window, -1) {
			ext := strings.TrimSpace(m[1])
			if len(ext) > 5 && len(ext) < 100 {
				out = append(out, ext)
			}
		}
	}
	return out
}
