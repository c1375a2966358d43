package billing

import (
	"time"

	"github.com/gensetworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Settings holds the company identity and invoicing defaults applied to
// every rendered document. A single row exists per installation.
type Settings struct {
	shared.BaseEntity
	CompanyName         string
	CompanyAddress      string
	CompanyPhone        string
	CompanyEmail        string
	CompanyWebsite      string
	TaxID               string
	CurrencyCode        string
	DefaultTaxRate      decimal.Decimal // percent
	DefaultPaymentTerms int             // days
	InvoicePrefix       string
	DefaultNotes        string
	DefaultTerms        string
	LogoBase64          string // base64-encoded PNG; empty means the built-in logo
}

// DefaultSettings returns the built-in settings record used whenever no
// settings row exists. Rendering never fails for lack of settings.
func DefaultSettings() *Settings {
	return &Settings{
		CompanyName:         "GensetWorks Power Solutions",
		CompanyAddress:      "4850 Industrial Parkway, Houston, TX 77041",
		CompanyPhone:        "+1 (713) 555-0144",
		CompanyEmail:        "billing@gensetworks.com",
		CompanyWebsite:      "www.gensetworks.com",
		CurrencyCode:        "USD",
		DefaultTaxRate:      decimal.NewFromFloat(8.25),
		DefaultPaymentTerms: 30,
		InvoicePrefix:       "INV-",
		DefaultTerms:        "Payment is due within the stated payment terms. Late payments are subject to a 1.5% monthly finance charge.",
	}
}

// CurrencySymbol returns the display symbol for the settings currency,
// falling back to the currency code itself.
func (s *Settings) CurrencySymbol() string {
	switch s.CurrencyCode {
	case "USD", "CAD", "AUD":
		return "$"
	case "EUR":
		return "EUR "
	case "GBP":
		return "GBP "
	default:
		if s.CurrencyCode == "" {
			return "$"
		}
		return s.CurrencyCode + " "
	}
}

// Update applies new values and bumps the update timestamp
func (s *Settings) Update(fn func(*Settings)) {
	fn(s)
	s.UpdatedAt = time.Now()
}
