package pdf

import (
	"github.com/gensetworks/backend/internal/domain/billing"
)

// renderSimple is the fallback layout used when a decorated template fails.
// It draws plain text only: no images, no fills, no pagination handling, so
// it cannot itself latch a buffer error on well-formed invoice data.
func renderSimple(d *document, inv *billing.Invoice, s *billing.Settings) error {
	y := pageMargin + 6
	d.placeText(s.CompanyName, pageMargin, y, textStyle{size: 14, bold: true, color: colorDark})
	y += 6
	contact := []string{s.CompanyAddress, s.CompanyPhone, s.CompanyEmail}
	y = d.placeLines(nonEmpty(contact), pageMargin, y, textStyle{size: 9, color: colorBody})

	y += 6
	d.placeText("INVOICE "+inv.InvoiceNumber, pageMargin, y, textStyle{size: 12, bold: true, color: colorDark})
	y += 6
	d.placeText("Issue Date: "+formatDate(inv.IssueDate), pageMargin, y, textStyle{size: 9, color: colorBody})
	y += lineHeight
	d.placeText("Due Date: "+formatDate(inv.DueDate), pageMargin, y, textStyle{size: 9, color: colorBody})
	y += lineHeight
	d.placeText("Status: "+inv.Status.DisplayLabel(), pageMargin, y, textStyle{size: 9, color: colorBody})

	y += 9
	d.placeText("Bill To: "+inv.CustomerName, pageMargin, y, textStyle{size: 10, bold: true, color: colorDark})
	y += lineHeight
	if inv.CustomerAddress != "" {
		d.placeText(inv.CustomerAddress, pageMargin, y, textStyle{size: 9, color: colorBody})
		y += lineHeight
	}
	if inv.CustomerEmail != "" {
		d.placeText(inv.CustomerEmail, pageMargin, y, textStyle{size: 9, color: colorBody})
		y += lineHeight
	}

	symbol := s.CurrencySymbol()
	qtyX := pageMargin + d.contentW*0.62
	priceX := pageMargin + d.contentW*0.80
	totalX := pageMargin + d.contentW

	y += 6
	header := textStyle{size: 9, bold: true, color: colorDark}
	d.placeText("Description", pageMargin, y, header)
	d.placeText("Qty", qtyX, y, withAlign(header, alignRight))
	d.placeText("Price", priceX, y, withAlign(header, alignRight))
	d.placeText("Total", totalX, y, withAlign(header, alignRight))
	y += lineHeight + 1

	body := textStyle{size: 9, color: colorBody}
	for _, item := range inv.LineItems {
		d.placeText(item.Description, pageMargin, y, body)
		d.placeText(item.Quantity.String(), qtyX, y, withAlign(body, alignRight))
		d.placeText(formatAmount(symbol, item.UnitPrice), priceX, y, withAlign(body, alignRight))
		d.placeText(formatAmount(symbol, item.TotalAmount), totalX, y, withAlign(body, alignRight))
		y += lineHeight
	}

	y += 4
	d.placeText("Subtotal: "+formatAmount(symbol, inv.Subtotal), totalX, y, withAlign(body, alignRight))
	y += lineHeight
	d.placeText("Tax: "+formatAmount(symbol, inv.TaxAmount), totalX, y, withAlign(body, alignRight))
	y += lineHeight
	d.placeText("Total: "+formatAmount(symbol, inv.TotalAmount), totalX, y,
		textStyle{size: 10, bold: true, color: colorDark, align: alignRight})

	if err := d.err(); err != nil {
		return NewRenderError(ErrCodeTemplateFailed, "simple template failed", err)
	}
	return nil
}
