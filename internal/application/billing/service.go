package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gensetworks/backend/internal/domain/billing"
	"github.com/gensetworks/backend/internal/domain/shared"
	"github.com/gensetworks/backend/internal/infrastructure/pdf"
)

// DocumentRenderer renders an invoice into PDF bytes
type DocumentRenderer interface {
	RenderInvoice(invoice *billing.Invoice, settings *billing.Settings, opts pdf.Options) ([]byte, error)
}

// InvoiceDocumentService handles invoice document generation
type InvoiceDocumentService struct {
	invoiceRepo  billing.InvoiceRepository
	settingsRepo billing.SettingsRepository
	renderer     DocumentRenderer
	defaults     DocumentDefaults
	logger       *zap.Logger
}

// NewInvoiceDocumentService creates a new InvoiceDocumentService
func NewInvoiceDocumentService(
	invoiceRepo billing.InvoiceRepository,
	settingsRepo billing.SettingsRepository,
	renderer DocumentRenderer,
	defaults DocumentDefaults,
	logger *zap.Logger,
) *InvoiceDocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaults.Template == "" {
		defaults.Template = string(pdf.TemplateModern)
	}
	return &InvoiceDocumentService{
		invoiceRepo:  invoiceRepo,
		settingsRepo: settingsRepo,
		renderer:     renderer,
		defaults:     defaults,
		logger:       logger,
	}
}

// RenderInvoicePDF loads the invoice and billing settings and renders the
// invoice as a PDF document. Missing settings never block the download: the
// built-in company defaults are substituted.
func (s *InvoiceDocumentService) RenderInvoicePDF(ctx context.Context, invoiceID uuid.UUID, req RenderInvoicePDFRequest) (*InvoiceDocumentResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Invoice not found")
		}
		return nil, fmt.Errorf("failed to load invoice: %w", err)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Warn("failed to load billing settings, using defaults",
			zap.String("invoice_id", invoiceID.String()),
			zap.Error(err))
		settings = nil
	}

	opts := s.buildOptions(invoice, req)
	data, err := s.renderer.RenderInvoice(invoice, settings, opts)
	if err != nil {
		return nil, err
	}

	s.logger.Info("invoice document generated",
		zap.String("invoice_id", invoiceID.String()),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("template", string(opts.Template)),
		zap.Int("bytes", len(data)))

	return &InvoiceDocumentResponse{
		Filename:    opts.Filename,
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func (s *InvoiceDocumentService) buildOptions(invoice *billing.Invoice, req RenderInvoicePDFRequest) pdf.Options {
	filename := req.Filename
	if filename == "" {
		filename = fmt.Sprintf("Invoice-%s.pdf", invoice.InvoiceNumber)
	}
	opts := pdf.Options{
		Filename:    filename,
		Format:      pdf.Format(req.Format),
		Orientation: pdf.Orientation(req.Orientation),
		Template:    pdf.Template(req.Template),
		IncludeLogo: req.IncludeLogo,
	}
	if opts.Template == "" {
		opts.Template = pdf.Template(s.defaults.Template)
	}
	if opts.IncludeLogo == nil {
		include := s.defaults.IncludeLogo
		opts.IncludeLogo = &include
	}
	if req.Watermark != nil {
		opts.Watermark = *req.Watermark
	} else {
		opts.Watermark = s.defaults.WatermarkPaid && invoice.Status == billing.StatusPaid
	}
	return opts
}
