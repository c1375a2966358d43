// Package pdf provides infrastructure implementations for rendering invoice
// documents as PDF files using coordinate-based page composition.
//
// This package contains:
// - Renderer, the entry point that turns a billing.Invoice into PDF bytes
// - Options for controlling format, orientation, template and watermark
// - Template strategies (modern, classic, minimal, luxury) plus a plain
//   fallback layout used when a decorated template fails
// - Post-processing passes that stamp watermarks and page numbers across
//   every page of the finished document
//
// Example usage:
//
//	renderer := pdf.NewRenderer(logger)
//	data, err := renderer.RenderInvoice(invoice, settings, pdf.Options{
//	    Template:  pdf.TemplateModern,
//	    Watermark: invoice.Status == billing.StatusPaid,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Generated PDF: %d bytes\n", len(data))
package pdf
