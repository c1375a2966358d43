package billing

// RenderInvoicePDFRequest carries the caller-tunable rendering options.
// Every field is optional; unset fields fall back to configured defaults.
type RenderInvoicePDFRequest struct {
	Template    string `form:"template" binding:"omitempty,oneof=modern classic minimal luxury"`
	Format      string `form:"format" binding:"omitempty,oneof=A4 Letter"`
	Orientation string `form:"orientation" binding:"omitempty,oneof=portrait landscape"`
	IncludeLogo *bool  `form:"include_logo"`
	Watermark   *bool  `form:"watermark"`
	Filename    string `form:"filename"`
}

// InvoiceDocumentResponse is the finished document ready for download
type InvoiceDocumentResponse struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DocumentDefaults holds the configured fallbacks applied when a render
// request leaves an option unset.
type DocumentDefaults struct {
	Template      string
	WatermarkPaid bool
	IncludeLogo   bool
}
