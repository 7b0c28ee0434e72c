package fields

import (
	"testing"
	"time"
)

const sampleQuote = `COMMERCIAL INSURANCE QUOTATION

Insurer: Santam Limited
Client: Sample Manufacturing (Pty) Ltd
Risk Address: 123 Industrial Road, Johannesburg, 2001
Quote Number: QT-2024/001
Date: 15/08/2024

TOTAL MONTHLY PREMIUM: R2,963.68

Payment terms: monthly debit order
Tel: 011 408 4911
Email: Commercial@Sample.co.za
`

func fixedEngine() *Engine {
	return &Engine{now: func() time.Time {
		return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	}}
}

func TestExtract_FullDocument(t *testing.T) {
	f := fixedEngine().Extract(sampleQuote)

	if f.Vendor != "Santam" {
		t.Errorf("Vendor = %q", f.Vendor)
	}
	if f.TotalPremium != "R2,963.68" {
		t.Errorf("TotalPremium = %q", f.TotalPremium)
	}
	if f.ContactPhone != "011 408 4911" {
		t.Errorf("ContactPhone = %q", f.ContactPhone)
	}
	if f.ContactEmail != "commercial@sample.co.za" {
		t.Errorf("ContactEmail = %q", f.ContactEmail)
	}
	if f.RiskAddress != "123 Industrial Road, Johannesburg, 2001" {
		t.Errorf("RiskAddress = %q", f.RiskAddress)
	}
	if f.ClientDetails != "Sample Manufacturing (Pty) Ltd" {
		t.Errorf("ClientDetails = %q", f.ClientDetails)
	}
	if f.QuoteReference != "QT-2024/001" {
		t.Errorf("QuoteReference = %q", f.QuoteReference)
	}
	if f.QuoteDate != "15/08/2024" {
		t.Errorf("QuoteDate = %q", f.QuoteDate)
	}
	if f.PaymentTerms != "Monthly" {
		t.Errorf("PaymentTerms = %q", f.PaymentTerms)
	}
}

func TestExtract_EmptyTextYieldsSentinels(t *testing.T) {
	f := fixedEngine().Extract("")

	if f.Vendor != UnknownVendor {
		t.Errorf("Vendor = %q", f.Vendor)
	}
	if f.TotalPremium != NotAvailable {
		t.Errorf("TotalPremium = %q", f.TotalPremium)
	}
	if f.ContactPhone != NotAvailable {
		t.Errorf("ContactPhone = %q", f.ContactPhone)
	}
	if f.ContactEmail != NotAvailable {
		t.Errorf("ContactEmail = %q", f.ContactEmail)
	}
	if f.RiskAddress != NoAddress {
		t.Errorf("RiskAddress = %q", f.RiskAddress)
	}
	if f.ClientDetails != NoClient {
		t.Errorf("ClientDetails = %q", f.ClientDetails)
	}
	if f.QuoteReference != NotAvailable {
		t.Errorf("QuoteReference = %q", f.QuoteReference)
	}
	if f.QuoteDate != "01/03/2024" {
		t.Errorf("QuoteDate = %q, want clock default", f.QuoteDate)
	}
	if f.PaymentTerms != DefaultPayment {
		t.Errorf("PaymentTerms = %q", f.PaymentTerms)
	}
}

func TestExtractVendor_StoplistRejected(t *testing.T) {
	text := "Insurer: Premium Policy Services\nSomething else\n"
	if got := extractVendor(text); got != UnknownVendor {
		t.Errorf("vendor = %q, want stoplist rejection", got)
	}
}

func TestExtractVendor_LabelledProvider(t *testing.T) {
	text := "Provider: Acme Underwriting Limited\n"
	if got := extractVendor(text); got != "Acme Underwriting" {
		t.Errorf("vendor = %q", got)
	}
}

func TestExtractTotalPremium_HighestPlausibleWins(t *testing.T) {
	text := "Monthly premium: R500.00\nTotal premium: R3,120.50\n"
	if got := extractTotalPremium(text); got != "R3,120.5" {
		t.Errorf("total = %q", got)
	}
}

func TestExtractTotalPremium_OutOfRangeRejected(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"too small", "Total premium: R150"},
		{"too large", "Total premium: R500,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractTotalPremium(tt.text); got != NotAvailable {
				t.Errorf("total = %q, want N/A", got)
			}
		})
	}
}

func TestExtractPhone_TooFewDigits(t *testing.T) {
	if got := extractPhone("Tel: 011 408\n"); got != NotAvailable {
		t.Errorf("phone = %q, want N/A", got)
	}
}

func TestExtractAddress_ContactLinesRejected(t *testing.T) {
	text := "Address: 12 telephone exchange building road\n"
	if got := extractAddress(text); got != NoAddress {
		t.Errorf("address = %q, want rejection", got)
	}
}

func TestExtractPaymentTerms(t *testing.T) {
	if got := extractPaymentTerms("premiums payable annually in advance"); got != "Annually" {
		t.Errorf("terms = %q", got)
	}
}
