package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceStatus_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		status   InvoiceStatus
		expected bool
	}{
		{"valid draft", StatusDraft, true},
		{"valid sent", StatusSent, true},
		{"valid paid", StatusPaid, true},
		{"valid partially_paid", StatusPartiallyPaid, true},
		{"valid overdue", StatusOverdue, true},
		{"valid cancelled", StatusCancelled, true},
		{"invalid empty", InvoiceStatus(""), false},
		{"invalid unknown", InvoiceStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.IsValid())
		})
	}
}

func TestInvoiceStatus_DisplayLabel(t *testing.T) {
	tests := []struct {
		status   InvoiceStatus
		expected string
	}{
		{StatusDraft, "DRAFT"},
		{StatusSent, "SENT"},
		{StatusPartiallyPaid, "PARTIALLY PAID"},
		{StatusOverdue, "OVERDUE"},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.DisplayLabel())
		})
	}
}

func TestInvoiceStatus_StatusColor(t *testing.T) {
	tests := []struct {
		status   InvoiceStatus
		expected RGB
	}{
		{StatusPaid, colorGreen},
		{StatusOverdue, colorRed},
		{StatusSent, colorBlue},
		{StatusDraft, colorGray},
		{StatusCancelled, colorMutedGray},
		{StatusPartiallyPaid, colorAmber},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.StatusColor())
		})
	}
}

// The color lookup must be total: every enumerated status plus any
// unrecognized value resolves to a defined, non-zero color.
func TestInvoiceStatus_StatusColorTotality(t *testing.T) {
	statuses := append(AllInvoiceStatuses(), InvoiceStatus("void"), InvoiceStatus(""))
	for _, s := range statuses {
		c := s.StatusColor()
		assert.NotEqual(t, RGB{}, c, "status %q must map to a color", s)
	}
}

func TestAllInvoiceStatuses(t *testing.T) {
	statuses := AllInvoiceStatuses()
	assert.Len(t, statuses, 6)
	for _, s := range statuses {
		assert.True(t, s.IsValid())
	}
}
