package billing

import "strings"

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	StatusDraft         InvoiceStatus = "draft"
	StatusSent          InvoiceStatus = "sent"
	StatusPaid          InvoiceStatus = "paid"
	StatusPartiallyPaid InvoiceStatus = "partially_paid"
	StatusOverdue       InvoiceStatus = "overdue"
	StatusCancelled     InvoiceStatus = "cancelled"
)

// IsValid checks if the InvoiceStatus is a valid value
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusPartiallyPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// DisplayLabel returns the status formatted for printed documents:
// uppercased with underscores replaced by spaces ("partially_paid" -> "PARTIALLY PAID").
func (s InvoiceStatus) DisplayLabel() string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
}

// AllInvoiceStatuses returns all valid InvoiceStatus values
func AllInvoiceStatuses() []InvoiceStatus {
	return []InvoiceStatus{
		StatusDraft, StatusSent, StatusPaid, StatusPartiallyPaid, StatusOverdue, StatusCancelled,
	}
}

// RGB is an 8-bit-per-channel color used for status badges and dots
type RGB struct {
	R, G, B uint8
}

// Status badge colors. The mapping is total: every status resolves to a
// color, and unrecognized values fall back to gray.
var (
	colorGreen     = RGB{R: 34, G: 197, B: 94}
	colorRed       = RGB{R: 239, G: 68, B: 68}
	colorBlue      = RGB{R: 59, G: 130, B: 246}
	colorGray      = RGB{R: 107, G: 114, B: 128}
	colorMutedGray = RGB{R: 156, G: 163, B: 175}
	colorAmber     = RGB{R: 245, G: 158, B: 11}
)

// StatusColor returns the badge color for the status.
func (s InvoiceStatus) StatusColor() RGB {
	switch s {
	case StatusPaid:
		return colorGreen
	case StatusOverdue:
		return colorRed
	case StatusSent:
		return colorBlue
	case StatusDraft:
		return colorGray
	case StatusCancelled:
		return colorMutedGray
	case StatusPartiallyPaid:
		return colorAmber
	default:
		return colorGray
	}
}
