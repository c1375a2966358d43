package billing

import (
	"time"

	"github.com/gensetworks/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem represents a billable line on an invoice.
// TotalAmount is the authoritative line total as supplied by the caller;
// document rendering trusts it verbatim and never recomputes it from
// Quantity * UnitPrice.
type LineItem struct {
	ID             uuid.UUID
	InvoiceID      uuid.UUID
	Description    string
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewLineItem creates a new invoice line item
func NewLineItem(invoiceID uuid.UUID, description string, quantity, unitPrice, taxAmount, discountAmount decimal.Decimal) (*LineItem, error) {
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Line item description cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	total := quantity.Mul(unitPrice).Add(taxAmount).Sub(discountAmount)
	return &LineItem{
		ID:             uuid.New(),
		InvoiceID:      invoiceID,
		Description:    description,
		Quantity:       quantity,
		UnitPrice:      unitPrice,
		TaxAmount:      taxAmount,
		DiscountAmount: discountAmount,
		TotalAmount:    total,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Invoice is the aggregate root for a customer invoice.
// Line items are kept in the order they were supplied; rendering must not
// reorder or group them.
type Invoice struct {
	shared.BaseEntity
	InvoiceNumber   string
	IssueDate       time.Time
	DueDate         time.Time
	PaymentTerms    int // days
	Status          InvoiceStatus
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	Subtotal        decimal.Decimal
	TaxAmount       decimal.Decimal
	DiscountAmount  decimal.Decimal
	TotalAmount     decimal.Decimal
	AmountPaid      decimal.Decimal
	BalanceDue      decimal.Decimal
	Notes           string
	Terms           string
	LineItems       []LineItem
}

// NewInvoice creates a new invoice in draft status
func NewInvoice(invoiceNumber, customerName string, issueDate time.Time, paymentTerms int) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer name cannot be empty")
	}
	if paymentTerms < 0 {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TERMS", "Payment terms cannot be negative")
	}

	return &Invoice{
		BaseEntity:     shared.NewBaseEntity(),
		InvoiceNumber:  invoiceNumber,
		IssueDate:      issueDate,
		DueDate:        issueDate.AddDate(0, 0, paymentTerms),
		PaymentTerms:   paymentTerms,
		Status:         StatusDraft,
		CustomerName:   customerName,
		Subtotal:       decimal.Zero,
		TaxAmount:      decimal.Zero,
		DiscountAmount: decimal.Zero,
		TotalAmount:    decimal.Zero,
		AmountPaid:     decimal.Zero,
		BalanceDue:     decimal.Zero,
	}, nil
}

// AddLineItem appends a line item and recalculates invoice totals
func (inv *Invoice) AddLineItem(description string, quantity, unitPrice, taxAmount, discountAmount decimal.Decimal) (*LineItem, error) {
	item, err := NewLineItem(inv.ID, description, quantity, unitPrice, taxAmount, discountAmount)
	if err != nil {
		return nil, err
	}
	inv.LineItems = append(inv.LineItems, *item)
	inv.RecalculateTotals()
	inv.UpdatedAt = time.Now()
	return item, nil
}

// RecalculateTotals recomputes the invoice totals from its line items
func (inv *Invoice) RecalculateTotals() {
	subtotal := decimal.Zero
	tax := decimal.Zero
	discount := decimal.Zero
	for _, item := range inv.LineItems {
		subtotal = subtotal.Add(item.Quantity.Mul(item.UnitPrice))
		tax = tax.Add(item.TaxAmount)
		discount = discount.Add(item.DiscountAmount)
	}
	inv.Subtotal = subtotal
	inv.TaxAmount = tax
	inv.DiscountAmount = discount
	inv.TotalAmount = subtotal.Add(tax).Sub(discount)
	inv.BalanceDue = inv.TotalAmount.Sub(inv.AmountPaid)
}

// Validate checks that the invoice carries the minimum data a printed
// document needs. Rendering refuses to start without it.
func (inv *Invoice) Validate() error {
	if inv.InvoiceNumber == "" {
		return shared.NewDomainError("INVALID_INPUT", "Invoice number is required")
	}
	if inv.CustomerName == "" {
		return shared.NewDomainError("INVALID_INPUT", "Customer name is required")
	}
	if len(inv.LineItems) == 0 {
		return shared.NewDomainError("INVALID_INPUT", "Invoice must have at least one line item")
	}
	return nil
}

// TermsOrDefault returns the invoice terms, falling back to the settings
// default when the invoice carries none.
func (inv *Invoice) TermsOrDefault(settings *Settings) string {
	if inv.Terms != "" {
		return inv.Terms
	}
	if settings != nil {
		return settings.DefaultTerms
	}
	return ""
}
