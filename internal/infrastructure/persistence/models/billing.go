package models

import (
	"time"

	"github.com/gensetworks/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice aggregate root.
type InvoiceModel struct {
	BaseModel
	InvoiceNumber   string                 `gorm:"type:varchar(50);not null;uniqueIndex"`
	IssueDate       time.Time              `gorm:"not null"`
	DueDate         time.Time              `gorm:"not null"`
	PaymentTerms    int                    `gorm:"not null;default:30"`
	Status          billing.InvoiceStatus  `gorm:"type:varchar(20);not null;default:'draft';index"`
	CustomerName    string                 `gorm:"type:varchar(200);not null"`
	CustomerEmail   string                 `gorm:"type:varchar(200)"`
	CustomerAddress string                 `gorm:"type:varchar(500)"`
	Subtotal        decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	TaxAmount       decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountAmount  decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount     decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	AmountPaid      decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	BalanceDue      decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	Notes           string                 `gorm:"type:text"`
	Terms           string                 `gorm:"type:text"`
	LineItems       []InvoiceLineItemModel `gorm:"foreignKey:InvoiceID;references:ID"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
// Line items keep their stored position so the document renders them in the
// order they were entered.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	inv := &billing.Invoice{
		BaseEntity:      m.BaseModel.ToDomain(),
		InvoiceNumber:   m.InvoiceNumber,
		IssueDate:       m.IssueDate,
		DueDate:         m.DueDate,
		PaymentTerms:    m.PaymentTerms,
		Status:          m.Status,
		CustomerName:    m.CustomerName,
		CustomerEmail:   m.CustomerEmail,
		CustomerAddress: m.CustomerAddress,
		Subtotal:        m.Subtotal,
		TaxAmount:       m.TaxAmount,
		DiscountAmount:  m.DiscountAmount,
		TotalAmount:     m.TotalAmount,
		AmountPaid:      m.AmountPaid,
		BalanceDue:      m.BalanceDue,
		Notes:           m.Notes,
		Terms:           m.Terms,
		LineItems:       make([]billing.LineItem, len(m.LineItems)),
	}
	for i, item := range m.LineItems {
		inv.LineItems[i] = *item.ToDomain()
	}
	return inv
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(inv *billing.Invoice) {
	m.FromDomainBaseEntity(inv.BaseEntity)
	m.InvoiceNumber = inv.InvoiceNumber
	m.IssueDate = inv.IssueDate
	m.DueDate = inv.DueDate
	m.PaymentTerms = inv.PaymentTerms
	m.Status = inv.Status
	m.CustomerName = inv.CustomerName
	m.CustomerEmail = inv.CustomerEmail
	m.CustomerAddress = inv.CustomerAddress
	m.Subtotal = inv.Subtotal
	m.TaxAmount = inv.TaxAmount
	m.DiscountAmount = inv.DiscountAmount
	m.TotalAmount = inv.TotalAmount
	m.AmountPaid = inv.AmountPaid
	m.BalanceDue = inv.BalanceDue
	m.Notes = inv.Notes
	m.Terms = inv.Terms
	m.LineItems = make([]InvoiceLineItemModel, len(inv.LineItems))
	for i, item := range inv.LineItems {
		m.LineItems[i] = *InvoiceLineItemModelFromDomain(&item, i)
	}
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice entity.
func InvoiceModelFromDomain(inv *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}

// InvoiceLineItemModel is the persistence model for the LineItem entity.
// LineNo records entry order; queries sort on it.
type InvoiceLineItemModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	LineNo         int             `gorm:"not null"`
	Description    string          `gorm:"type:varchar(500);not null"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoiceLineItemModel) TableName() string {
	return "invoice_line_items"
}

// ToDomain converts the persistence model to a domain LineItem entity.
func (m *InvoiceLineItemModel) ToDomain() *billing.LineItem {
	return &billing.LineItem{
		ID:             m.ID,
		InvoiceID:      m.InvoiceID,
		Description:    m.Description,
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice,
		TaxAmount:      m.TaxAmount,
		DiscountAmount: m.DiscountAmount,
		TotalAmount:    m.TotalAmount,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// InvoiceLineItemModelFromDomain creates a new persistence model from a domain LineItem entity.
func InvoiceLineItemModelFromDomain(item *billing.LineItem, lineNo int) *InvoiceLineItemModel {
	return &InvoiceLineItemModel{
		ID:             item.ID,
		InvoiceID:      item.InvoiceID,
		LineNo:         lineNo,
		Description:    item.Description,
		Quantity:       item.Quantity,
		UnitPrice:      item.UnitPrice,
		TaxAmount:      item.TaxAmount,
		DiscountAmount: item.DiscountAmount,
		TotalAmount:    item.TotalAmount,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

// BillingSettingsModel is the persistence model for the billing Settings record.
type BillingSettingsModel struct {
	BaseModel
	CompanyName         string          `gorm:"type:varchar(200);not null"`
	CompanyAddress      string          `gorm:"type:varchar(500)"`
	CompanyPhone        string          `gorm:"type:varchar(50)"`
	CompanyEmail        string          `gorm:"type:varchar(200)"`
	CompanyWebsite      string          `gorm:"type:varchar(200)"`
	TaxID               string          `gorm:"type:varchar(50)"`
	CurrencyCode        string          `gorm:"type:varchar(10);not null;default:'USD'"`
	DefaultTaxRate      decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	DefaultPaymentTerms int             `gorm:"not null;default:30"`
	InvoicePrefix       string          `gorm:"type:varchar(20)"`
	DefaultNotes        string          `gorm:"type:text"`
	DefaultTerms        string          `gorm:"type:text"`
	LogoBase64          string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (BillingSettingsModel) TableName() string {
	return "billing_settings"
}

// ToDomain converts the persistence model to domain Settings.
func (m *BillingSettingsModel) ToDomain() *billing.Settings {
	return &billing.Settings{
		BaseEntity:          m.BaseModel.ToDomain(),
		CompanyName:         m.CompanyName,
		CompanyAddress:      m.CompanyAddress,
		CompanyPhone:        m.CompanyPhone,
		CompanyEmail:        m.CompanyEmail,
		CompanyWebsite:      m.CompanyWebsite,
		TaxID:               m.TaxID,
		CurrencyCode:        m.CurrencyCode,
		DefaultTaxRate:      m.DefaultTaxRate,
		DefaultPaymentTerms: m.DefaultPaymentTerms,
		InvoicePrefix:       m.InvoicePrefix,
		DefaultNotes:        m.DefaultNotes,
		DefaultTerms:        m.DefaultTerms,
		LogoBase64:          m.LogoBase64,
	}
}

// BillingSettingsModelFromDomain creates a new persistence model from domain Settings.
func BillingSettingsModelFromDomain(s *billing.Settings) *BillingSettingsModel {
	m := &BillingSettingsModel{}
	m.FromDomainBaseEntity(s.BaseEntity)
	m.CompanyName = s.CompanyName
	m.CompanyAddress = s.CompanyAddress
	m.CompanyPhone = s.CompanyPhone
	m.CompanyEmail = s.CompanyEmail
	m.CompanyWebsite = s.CompanyWebsite
	m.TaxID = s.TaxID
	m.CurrencyCode = s.CurrencyCode
	m.DefaultTaxRate = s.DefaultTaxRate
	m.DefaultPaymentTerms = s.DefaultPaymentTerms
	m.InvoicePrefix = s.InvoicePrefix
	m.DefaultNotes = s.DefaultNotes
	m.DefaultTerms = s.DefaultTerms
	m.LogoBase64 = s.LogoBase64
	return m
}
