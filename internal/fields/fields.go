// Package fields extracts quote-level scalar fields (vendor, totals,
// contact details, references) from recovered text. Extraction never
// fails: every field independently falls back to a documented sentinel.
package fields

import (
	"regexp"
	"strings"
	"time"

	"github.com/pvanrooyen/quotecomp/internal/money"
	"github.com/pvanrooyen/quotecomp/internal/scan"
)

// Sentinels returned when no plausible value is found.
const (
	UnknownVendor  = "Unknown Provider"
	NotAvailable   = "N/A"
	NoAddress      = "Address not specified"
	NoClient       = "Client details not specified"
	DefaultPayment = "Monthly"
)

// Fields holds the quote-level scalars for one document.
type Fields struct {
	Vendor         string `json:"vendor"`
	TotalPremium   string `json:"total_premium"`
	ContactPhone   string `json:"contact_phone"`
	ContactEmail   string `json:"contact_email"`
	RiskAddress    string `json:"risk_address"`
	ClientDetails  string `json:"client_details"`
	QuoteReference string `json:"quote_reference"`
	QuoteDate      string `json:"quote_date"`
	PaymentTerms   string `json:"payment_terms"`
}

// Engine extracts scalar fields from quote text.
type Engine struct {
	now func() time.Time
}

// NewEngine returns an engine with the default clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// Extract pulls every scalar field out of text. Absent fields resolve
// to sentinels, never errors.
func (e *Engine) Extract(text string) Fields {
	return Fields{
		Vendor:         extractVendor(text),
		TotalPremium:   extractTotalPremium(text),
		ContactPhone:   extractPhone(text),
		ContactEmail:   extractEmail(text),
		RiskAddress:    extractAddress(text),
		ClientDetails:  extractClient(text),
		QuoteReference: extractReference(text),
		QuoteDate:      e.extractDate(text),
		PaymentTerms:   extractPaymentTerms(text),
	}
}

// vendorStoplist rejects generic words masquerading as insurer names.
var vendorStoplist = []string{"policy", "quote", "premium", "section"}

var vendorCandidates = []scan.Candidate{
	{Re: regexp.MustCompile(`(?i)(Hollard|Bryte|Sanlam|OUTsurance|Discovery|Momentum|King Price|Santam|Mutual & Federal|Old Mutual|Auto & General|Budget Insurance|1st for Women|Miway|Dial Direct|Absa|Standard Bank|FNB|Nedbank)`)},
	{Re: regexp.MustCompile(`(?im)(?:Insurance\s+Company|Insurer)[:\s]*([A-Za-z\s&]+?)(?:\n|Limited|Ltd|\(Pty\))`)},
	{Re: regexp.MustCompile(`(?im)(?:Provider|Underwriter)[:\s]*([A-Za-z\s&]+?)(?:\n|Limited|Ltd|\(Pty\))`)},
}

func extractVendor(text string) string {
	vendor := UnknownVendor
	scan.Each(text, vendorCandidates, func(capture string) {
		if vendor != UnknownVendor {
			return
		}
		v := titleCase(normalizeSpace(capture))
		if len(v) < 4 {
			return
		}
		lower := strings.ToLower(v)
		for _, word := range vendorStoplist {
			if strings.Contains(lower, word) {
				return
			}
		}
		if len(strings.Fields(v)) > 4 {
			return
		}
		vendor = v
	})
	return vendor
}

var totalPremiumCandidates = []scan.Candidate{
	{Re: regexp.MustCompile(`(?i)(?:Total|Final|Monthly|Debit\s+Order)\s+(?:Premium|Amount|Cost|Total)\s*[:\-]?\s*R\s?([\d,.\s]+)`)},
	{Re: regexp.MustCompile(`(?i)TOTAL\s+(?:PREMIUM|MONTHLY|COST)\s*[:\-]?\s*R\s?([\d,.\s]+)`)},
	{Re: regexp.MustCompile(`(?i)(?:Monthly|Per\s+month)\s+(?:premium|payment|cost)\s*[:\-]?\s*R\s?([\d,.\s]+)`)},
}

// extractTotalPremium keeps the highest plausible amount found under a
// total-premium label. Documents typically carry several premium-like
// figures and the largest one in range is the true total.
func extractTotalPremium(text string) string {
	total := NotAvailable
	highest := 0.0
	scan.Each(text, totalPremiumCandidates, func(capture string) {
		if len(money.Digits(capture)) < 3 {
			return
		}
		amount, ok := money.Parse(capture)
		if !ok {
			return
		}
		if amount >= 200 && amount <= 100000 && amount > highest {
			highest = amount
			total = money.FormatPremium(amount)
		}
	})
	return total
}

var phoneCandidates = []scan.Candidate{
	{Re: regexp.MustCompile(`(?i)(?:Tel|Phone|Telephone|Call)[:\s]*(\+?27\s?[\d\s\-]{8,14})`)},
	{Re: regexp.MustCompile(`(?i)(?:Tel|Phone|Telephone|Call)[:\s]*(0[\d\s\-]{8,12})`)},
	{Re: regexp.MustCompile(`(0(?:11|21|31|60|82|83|86)\s?[\d\s\-]{6,9})`)},
}

func extractPhone(text string) string {
	num, ok := scan.First(text, withValidator(phoneCandidates, func(capture string) bool {
		return digitCount(capture) >= 9
	}))
	if !ok {
		return NotAvailable
	}
	return normalizeSpace(strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '+' || r == ' ' {
			return r
		}
		return ' '
	}, num))
}

var emailCandidates = []scan.Candidate{
	{Re: regexp.MustCompile(`(?i)(?:Email|E-mail)[:\s]*([a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,})`)},
	{Re: regexp.MustCompile(`([a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,})`)},
}

func extractEmail(text string) string {
	addr, ok := scan.First(text, withValidator(emailCandidates, func(capture string) bool {
		return strings.Contains(capture, "@") && strings.Contains(capture, ".") && len(capture) > 5
	}))
	if !ok {
		return NotAvailable
	}
	return strings.ToLower(strings.TrimSpace(addr))
}

var addressCandidates = []scan.Candidate{
	{Re: regexp.MustCompile(`(?i)(?:Risk|Property|Business|Premises)\s+Address[:\s]*([A-Z0-9][^\n]{15,100})`)},
	{Re: regexp.MustCompile(`(?i)(?:Situated|Located)\s+at[:\s]*([A-Z0-9][^\n]{15,100})`)},
	{Re: regexp.MustCompile(`(?i)Address[:\s]*([0-9]+[^\n]{15,100})`)},
}

func extractAddress(text string) string {
	addr, ok := scan.First(text, withValidator(addressCandidates, func(capture string) bool {
		a := strings.ToLower(capture)
		if len(strings.TrimSpace(capture)) <= 15 {
			return false
		}
		for _, word := range []string{"telephone", "email", "contact"} {
			if strings.Contains(a, word) {
				return false
			}
		}
		return true
	}))
	if !ok {
		return NoAddress
	}
	return normalizeSpace(addr)
}

var clientCandidates = []scan.Candidate{
	{Re: regexp.MustCompile(`(?m)(?:Client|Business Name|Company|Policyholder|Insured)[:\s]*([A-Z][^\n]{10,100})`)},
	{Re: regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:\(Pty\)\s*Ltd|CC|Ltd|Limited|Inc))`)},
}

func extractClient(text string) string {
	name, ok := scan.First(text, withValidator(clientCandidates, func(capture string) bool {
		c := strings.ToLower(capture)
		if len(strings.TrimSpace(capture)) <= 8 {
			return false
		}
		for _, word := range []string{"policy", "agrees", "renew", "telephone", "premium"} {
			if strings.Contains(c, word) {
				return false
			}
		}
		return true
	}))
	if !ok {
		return NoClient
	}
	return normalizeSpace(name)
}

var referenceCandidates = []scan.Candidate{
	{Re: regexp.MustCompile(`(?i)(?:Quote|Reference|Policy)\s+(?:No|Number|Ref)[:\s]*([A-Z0-9\-/]+)`)},
	{Re: regexp.MustCompile(`([A-Z]{2,}\d{4,})`)},
}

func extractReference(text string) string {
	ref, ok := scan.First(text, referenceCandidates)
	if !ok {
		return NotAvailable
	}
	return strings.TrimSpace(ref)
}

var dateCandidates = []scan.Candidate{
	{Re: regexp.MustCompile(`(?i)(?:Date|Quoted on)[:\s]*(\d{1,2}/\d{1,2}/\d{4})`)},
	{Re: regexp.MustCompile(`(\d{1,2}\s+[A-Za-z]+\s+\d{4})`)},
}

func (e *Engine) extractDate(text string) string {
	date, ok := scan.First(text, dateCandidates)
	if !ok {
		return e.now().Format("02/01/2006")
	}
	return strings.TrimSpace(date)
}

var paymentCandidates = []scan.Candidate{
	{Re: regexp.MustCompile(`(?i)(monthly|annually|annual|per month|per year|quarterly)`)},
	{Re: regexp.MustCompile(`(?i)payment[^\n]*?(monthly|annually|quarterly)`)},
}

func extractPaymentTerms(text string) string {
	terms, ok := scan.First(text, paymentCandidates)
	if !ok {
		return DefaultPayment
	}
	return titleCase(terms)
}

// titleCase uppercases the first letter of each lowercased word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if w == "&" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// withValidator applies the same validator to every candidate in a table.
func withValidator(cands []scan.Candidate, ok func(string) bool) []scan.Candidate {
	out := make([]scan.Candidate, len(cands))
	for i, c := range cands {
		out[i] = scan.Candidate{Re: c.Re, Validate: ok}
	}
	return out
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
