package pdf

import (
	"fmt"

	"github.com/gensetworks/backend/internal/domain/billing"
)

// Format defines the output paper dimensions
type Format string

const (
	FormatA4     Format = "A4"
	FormatLetter Format = "Letter"
)

// Orientation defines portrait or landscape page layout
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// Template selects the visual layout used for the invoice body
type Template string

const (
	TemplateModern  Template = "modern"
	TemplateClassic Template = "classic"
	TemplateMinimal Template = "minimal"
	TemplateLuxury  Template = "luxury"
)

// Options controls how an invoice document is rendered. The zero value is
// valid: every field falls back to a sensible default.
type Options struct {
	// Filename for the download; derived from the invoice number when empty
	Filename string
	// Format of the output pages, A4 when empty
	Format Format
	// Orientation of the output pages, portrait when empty
	Orientation Orientation
	// Template selects the layout; unknown values render as modern
	Template Template
	// IncludeLogo embeds the company logo in the header; nil means true
	IncludeLogo *bool
	// Watermark stamps a diagonal PAID mark across every page
	Watermark bool
}

func (o Options) withDefaults(invoice *billing.Invoice) Options {
	if o.Filename == "" {
		o.Filename = fmt.Sprintf("Invoice-%s.pdf", invoice.InvoiceNumber)
	}
	if o.Format == "" {
		o.Format = FormatA4
	}
	if o.Orientation == "" {
		o.Orientation = OrientationPortrait
	}
	if o.Template == "" {
		o.Template = TemplateModern
	}
	return o
}

func (o Options) logoEnabled() bool {
	return o.IncludeLogo == nil || *o.IncludeLogo
}
