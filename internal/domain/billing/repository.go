package billing

import (
	"context"

	"github.com/google/uuid"
)

// InvoiceRepository defines persistence operations for invoices
type InvoiceRepository interface {
	// FindByID loads an invoice with its line items.
	// Returns shared.ErrNotFound if no invoice exists with the ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	// FindByNumber loads an invoice by its display number.
	FindByNumber(ctx context.Context, invoiceNumber string) (*Invoice, error)
	// Save persists the invoice and its line items.
	Save(ctx context.Context, invoice *Invoice) error
}

// SettingsRepository defines persistence operations for billing settings
type SettingsRepository interface {
	// Get returns the settings row, or (nil, nil) when none exists yet.
	// A nil result is expected and means "use defaults".
	Get(ctx context.Context) (*Settings, error)
	// Save persists the settings row.
	Save(ctx context.Context, settings *Settings) error
}
