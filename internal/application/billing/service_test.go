package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gensetworks/backend/internal/domain/billing"
	"github.com/gensetworks/backend/internal/domain/shared"
	"github.com/gensetworks/backend/internal/infrastructure/pdf"
)

// MockInvoiceRepository is a mock implementation of billing.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByNumber(ctx context.Context, invoiceNumber string) (*billing.Invoice, error) {
	args := m.Called(ctx, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

// MockSettingsRepository is a mock implementation of billing.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*billing.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *billing.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockDocumentRenderer records the options it was invoked with
type MockDocumentRenderer struct {
	mock.Mock
	lastOpts pdf.Options
}

func (m *MockDocumentRenderer) RenderInvoice(invoice *billing.Invoice, settings *billing.Settings, opts pdf.Options) ([]byte, error) {
	m.lastOpts = opts
	args := m.Called(invoice, settings, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func testServiceInvoice(t *testing.T) *billing.Invoice {
	t.Helper()
	inv, err := billing.NewInvoice("INV-2025-0042", "Acme Drilling Co.",
		time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), 30)
	require.NoError(t, err)
	_, err = inv.AddLineItem("Load bank test", decimal.NewFromInt(1),
		decimal.NewFromInt(300), decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	return inv
}

func TestRenderInvoicePDF(t *testing.T) {
	defaults := DocumentDefaults{Template: "modern", WatermarkPaid: true, IncludeLogo: true}

	t.Run("renders invoice with stored settings", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		settingsRepo := new(MockSettingsRepository)
		renderer := new(MockDocumentRenderer)
		svc := NewInvoiceDocumentService(invoiceRepo, settingsRepo, renderer, defaults, nil)

		inv := testServiceInvoice(t)
		settings := billing.DefaultSettings()
		invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
		settingsRepo.On("Get", mock.Anything).Return(settings, nil)
		renderer.On("RenderInvoice", inv, settings, mock.Anything).Return([]byte("%PDF-stub"), nil)

		resp, err := svc.RenderInvoicePDF(context.Background(), inv.ID, RenderInvoicePDFRequest{})

		require.NoError(t, err)
		assert.Equal(t, "Invoice-INV-2025-0042.pdf", resp.Filename)
		assert.Equal(t, "application/pdf", resp.ContentType)
		assert.Equal(t, []byte("%PDF-stub"), resp.Data)
		assert.Equal(t, pdf.TemplateModern, renderer.lastOpts.Template)
		invoiceRepo.AssertExpectations(t)
		renderer.AssertExpectations(t)
	})

	t.Run("missing invoice maps to NOT_FOUND", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		settingsRepo := new(MockSettingsRepository)
		renderer := new(MockDocumentRenderer)
		svc := NewInvoiceDocumentService(invoiceRepo, settingsRepo, renderer, defaults, nil)

		id := uuid.New()
		invoiceRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		resp, err := svc.RenderInvoicePDF(context.Background(), id, RenderInvoicePDFRequest{})

		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})

	t.Run("settings fetch failure falls back to defaults", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		settingsRepo := new(MockSettingsRepository)
		renderer := new(MockDocumentRenderer)
		svc := NewInvoiceDocumentService(invoiceRepo, settingsRepo, renderer, defaults, nil)

		inv := testServiceInvoice(t)
		invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
		settingsRepo.On("Get", mock.Anything).Return(nil, errors.New("connection refused"))
		renderer.On("RenderInvoice", inv, (*billing.Settings)(nil), mock.Anything).Return([]byte("%PDF-stub"), nil)

		resp, err := svc.RenderInvoicePDF(context.Background(), inv.ID, RenderInvoicePDFRequest{})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Data)
		renderer.AssertExpectations(t)
	})

	t.Run("paid invoice gets watermark by default", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		settingsRepo := new(MockSettingsRepository)
		renderer := new(MockDocumentRenderer)
		svc := NewInvoiceDocumentService(invoiceRepo, settingsRepo, renderer, defaults, nil)

		inv := testServiceInvoice(t)
		inv.Status = billing.StatusPaid
		invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
		settingsRepo.On("Get", mock.Anything).Return(nil, nil)
		renderer.On("RenderInvoice", inv, (*billing.Settings)(nil), mock.Anything).Return([]byte("%PDF-stub"), nil)

		_, err := svc.RenderInvoicePDF(context.Background(), inv.ID, RenderInvoicePDFRequest{})

		require.NoError(t, err)
		assert.True(t, renderer.lastOpts.Watermark)
	})

	t.Run("explicit watermark override wins", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		settingsRepo := new(MockSettingsRepository)
		renderer := new(MockDocumentRenderer)
		svc := NewInvoiceDocumentService(invoiceRepo, settingsRepo, renderer, defaults, nil)

		inv := testServiceInvoice(t)
		inv.Status = billing.StatusPaid
		off := false
		invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
		settingsRepo.On("Get", mock.Anything).Return(nil, nil)
		renderer.On("RenderInvoice", inv, (*billing.Settings)(nil), mock.Anything).Return([]byte("%PDF-stub"), nil)

		_, err := svc.RenderInvoicePDF(context.Background(), inv.ID, RenderInvoicePDFRequest{Watermark: &off})

		require.NoError(t, err)
		assert.False(t, renderer.lastOpts.Watermark)
	})

	t.Run("request template overrides configured default", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		settingsRepo := new(MockSettingsRepository)
		renderer := new(MockDocumentRenderer)
		svc := NewInvoiceDocumentService(invoiceRepo, settingsRepo, renderer, defaults, nil)

		inv := testServiceInvoice(t)
		invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
		settingsRepo.On("Get", mock.Anything).Return(nil, nil)
		renderer.On("RenderInvoice", inv, (*billing.Settings)(nil), mock.Anything).Return([]byte("%PDF-stub"), nil)

		_, err := svc.RenderInvoicePDF(context.Background(), inv.ID, RenderInvoicePDFRequest{Template: "luxury"})

		require.NoError(t, err)
		assert.Equal(t, pdf.TemplateLuxury, renderer.lastOpts.Template)
	})

	t.Run("request filename overrides the derived name", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		settingsRepo := new(MockSettingsRepository)
		renderer := new(MockDocumentRenderer)
		svc := NewInvoiceDocumentService(invoiceRepo, settingsRepo, renderer, defaults, nil)

		inv := testServiceInvoice(t)
		invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
		settingsRepo.On("Get", mock.Anything).Return(nil, nil)
		renderer.On("RenderInvoice", inv, (*billing.Settings)(nil), mock.Anything).Return([]byte("%PDF-stub"), nil)

		resp, err := svc.RenderInvoicePDF(context.Background(), inv.ID, RenderInvoicePDFRequest{Filename: "march-statement.pdf"})

		require.NoError(t, err)
		assert.Equal(t, "march-statement.pdf", resp.Filename)
		assert.Equal(t, "march-statement.pdf", renderer.lastOpts.Filename)
	})
}
