package pdf

import (
	"go.uber.org/zap"

	"github.com/gensetworks/backend/internal/domain/billing"
	"github.com/gensetworks/backend/internal/domain/shared"
)

// Renderer turns invoices into PDF documents. It is stateless and safe for
// concurrent use; each render composes into its own page buffer.
type Renderer struct {
	logger *zap.Logger
}

// NewRenderer creates a new invoice PDF renderer
func NewRenderer(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{logger: logger}
}

// RenderInvoice renders the invoice with the given settings and options and
// returns the finished PDF bytes. Nil settings fall back to the built-in
// defaults. When the selected template fails mid-composition the document is
// rebuilt from scratch with the plain fallback layout, so a decorated
// template error never reaches the caller as a failed download.
//
// Output is deterministic: the same invoice, settings and options always
// produce identical bytes.
func (r *Renderer) RenderInvoice(invoice *billing.Invoice, settings *billing.Settings, opts Options) ([]byte, error) {
	if invoice == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invoice is required")
	}
	if err := invoice.Validate(); err != nil {
		return nil, err
	}
	if settings == nil {
		settings = billing.DefaultSettings()
	}
	opts = opts.withDefaults(invoice)

	doc := newDocument(opts.Format, opts.Orientation, invoice.IssueDate)
	var renderErr error
	switch opts.Template {
	case TemplateLuxury:
		renderErr = renderLuxury(doc, invoice, settings, opts)
	default:
		renderErr = renderStandard(doc, invoice, settings, opts)
	}

	if renderErr != nil {
		r.logger.Warn("invoice template failed, falling back to plain layout",
			zap.String("invoice_number", invoice.InvoiceNumber),
			zap.String("template", string(opts.Template)),
			zap.Error(renderErr))

		doc = newDocument(opts.Format, opts.Orientation, invoice.IssueDate)
		if err := renderSimple(doc, invoice, settings); err != nil {
			return nil, NewRenderError(ErrCodeRenderFailed, "fallback rendering failed", err)
		}
	}

	if opts.Watermark {
		applyWatermark(doc)
	}
	applyPageNumbers(doc)

	data, err := doc.output()
	if err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "failed to serialize document", err)
	}

	r.logger.Debug("invoice rendered",
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("template", string(opts.Template)),
		zap.Int("bytes", len(data)))
	return data, nil
}
