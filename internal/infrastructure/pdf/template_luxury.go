package pdf

import (
	"github.com/gensetworks/backend/internal/domain/billing"
)

// renderLuxury draws the premium layout: oversized title, bordered grid
// table with a dark header band, and a closing thank-you line instead of the
// notes and terms footer.
func renderLuxury(d *document, inv *billing.Invoice, s *billing.Settings, opts Options) error {
	if opts.logoEnabled() {
		d.placeLogo(s.LogoBase64, pageMargin, pageMargin, 40)
	}

	right := pageMargin + d.contentW
	d.placeText("INVOICE", right, pageMargin+12, textStyle{size: 28, bold: true, color: colorDark, align: alignRight})

	metaY := pageMargin + 20
	meta := [][2]string{
		{"Invoice No.", inv.InvoiceNumber},
		{"Issue Date", formatDate(inv.IssueDate)},
		{"Due Date", formatDate(inv.DueDate)},
	}
	for _, row := range meta {
		d.placeText(row[0], right-44, metaY, textStyle{size: 9, bold: true, color: colorMuted})
		d.placeText(row[1], right, metaY, textStyle{size: 9, color: colorDark, align: alignRight})
		metaY += 5.5
	}

	companyY := pageMargin + 18
	d.placeText(s.CompanyName, pageMargin, companyY, textStyle{size: 12, bold: true, color: colorDark})
	contact := []string{s.CompanyAddress, s.CompanyPhone, s.CompanyEmail, s.CompanyWebsite}
	d.placeLines(nonEmpty(contact), pageMargin, companyY+6, textStyle{size: 8.5, color: colorMuted})

	billY := pageMargin + 52
	d.placeText("BILL TO", pageMargin, billY, textStyle{size: 9, bold: true, color: colorAccent})
	y := billY + 6
	d.placeText(inv.CustomerName, pageMargin, y, textStyle{size: 11, bold: true, color: colorDark})
	y += lineHeight + 1
	custStyle := textStyle{size: 9, color: colorBody}
	if inv.CustomerAddress != "" {
		y = d.placeLines(d.wrapText(inv.CustomerAddress, d.contentW*0.55, custStyle), pageMargin, y, custStyle)
	}
	if inv.CustomerEmail != "" {
		y = d.placeLines([]string{inv.CustomerEmail}, pageMargin, y, custStyle)
	}

	cols := []tableColumn{
		{title: "Item", width: d.contentW * 0.50, align: alignLeft},
		{title: "Qty", width: d.contentW * 0.12, align: alignCenter},
		{title: "Unit Price", width: d.contentW * 0.18, align: alignRight},
		{title: "Amount", width: d.contentW * 0.20, align: alignRight},
	}
	symbol := s.CurrencySymbol()
	rows := make([][]string, 0, len(inv.LineItems))
	for _, item := range inv.LineItems {
		rows = append(rows, []string{
			item.Description,
			item.Quantity.String(),
			formatAmount(symbol, item.UnitPrice),
			formatAmount(symbol, item.TotalAmount),
		})
	}

	endY := d.placeTable(cols, rows, y+8, tableStyle{
		headerFill: colorDark,
		headerText: colorWhite,
		bodyText:   colorBody,
		stripeFill: &colorStripe,
		bordered:   true,
	})

	drawLuxuryTotals(d, inv, symbol, endY+8)

	d.placeText("Thank you for your business!", d.pageW/2, d.pageH-24,
		textStyle{size: 10, italic: true, color: colorMuted, align: alignCenter})

	if err := d.err(); err != nil {
		return NewRenderError(ErrCodeTemplateFailed, "luxury template failed", err)
	}
	return nil
}

func drawLuxuryTotals(d *document, inv *billing.Invoice, symbol string, y float64) {
	const rowH = 6.5
	if y+rowH*4+4 > d.bottomLimit() {
		d.newPage()
		y = pageMargin
	}

	right := pageMargin + d.contentW
	labelX := right - 58
	plain := textStyle{size: 9.5, color: colorBody}
	lines := [][2]string{
		{"Subtotal", formatAmount(symbol, inv.Subtotal)},
		{"Discount", formatAmount(symbol, inv.DiscountAmount.Neg())},
		{"Tax", formatAmount(symbol, inv.TaxAmount)},
	}
	for _, line := range lines {
		d.placeText(line[0], labelX, y, plain)
		d.placeText(line[1], right, y, withAlign(plain, alignRight))
		y += rowH
	}

	d.placeLine(labelX, y-3, right, y-3, colorDark, 0.4)
	total := textStyle{size: 12, bold: true, color: colorDark}
	d.placeText("Total", labelX, y+2, total)
	d.placeText(formatAmount(symbol, inv.TotalAmount), right, y+2, withAlign(total, alignRight))
}
