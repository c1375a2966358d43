package pdf

import (
	"github.com/gensetworks/backend/internal/domain/billing"
)

// renderStandard draws the modern, classic and minimal layouts. The three
// variants share the same zone structure and differ in accent treatment:
// modern uses the brand amber with a divider under the header, classic keeps
// everything in dark ink, minimal drops the decoration to muted gray.
// Unrecognized names get the modern palette without the divider.
func renderStandard(d *document, inv *billing.Invoice, s *billing.Settings, opts Options) error {
	accent := colorAccent
	divider := opts.Template == TemplateModern
	switch opts.Template {
	case TemplateClassic:
		accent = colorDark
	case TemplateMinimal:
		accent = colorMuted
	}

	drawStandardHeader(d, inv, s, opts, accent, divider)
	y := drawStandardParties(d, inv, s)

	cols := standardColumns(d)
	rows := standardRows(inv, s.CurrencySymbol())
	endY := d.placeTable(cols, rows, y, tableStyle{
		headerFill: rgb{243, 244, 246},
		headerText: colorDark,
		bodyText:   colorBody,
		stripeFill: &colorStripe,
	})

	drawStandardTotals(d, inv, s, endY+8)
	drawStandardFooter(d, inv, s)

	if err := d.err(); err != nil {
		return NewRenderError(ErrCodeTemplateFailed, "standard template failed", err)
	}
	return nil
}

func drawStandardHeader(d *document, inv *billing.Invoice, s *billing.Settings, opts Options, accent rgb, divider bool) {
	left := pageMargin
	if opts.logoEnabled() {
		d.placeLogo(s.LogoBase64, pageMargin, pageMargin, 30)
		left += 34
	}

	d.placeText(s.CompanyName, left, pageMargin+7, textStyle{size: 15, bold: true, color: colorDark})
	contact := []string{s.CompanyAddress, s.CompanyPhone, s.CompanyEmail}
	d.placeLines(nonEmpty(contact), left, pageMargin+13, textStyle{size: 8.5, color: colorMuted})

	right := pageMargin + d.contentW
	d.placeText("INVOICE", right, pageMargin+10, textStyle{size: 24, bold: true, color: accent, align: alignRight})
	d.placeText(inv.InvoiceNumber, right, pageMargin+17, textStyle{color: colorMuted, align: alignRight})

	if divider {
		d.placeLine(pageMargin, pageMargin+30, right, pageMargin+30, accent, 0.6)
	}
}

// drawStandardParties lays out the customer block on the left against the
// invoice metadata column on the right and returns the Y below both.
func drawStandardParties(d *document, inv *billing.Invoice, s *billing.Settings) float64 {
	top := pageMargin + 40

	d.placeText("BILL TO", pageMargin, top, textStyle{size: 9, bold: true, color: colorMuted})
	y := top + 6
	d.placeText(inv.CustomerName, pageMargin, y, textStyle{bold: true, color: colorDark})
	y += lineHeight
	if inv.CustomerEmail != "" {
		d.placeText(inv.CustomerEmail, pageMargin, y, textStyle{size: 9, color: colorMuted})
		y += lineHeight
	}
	if inv.CustomerAddress != "" {
		addrStyle := textStyle{size: 9, color: colorBody}
		y = d.placeLines(d.wrapText(inv.CustomerAddress, d.contentW*0.45, addrStyle), pageMargin, y, addrStyle)
	}

	metaX := pageMargin + d.contentW*0.58
	metaRight := pageMargin + d.contentW
	metaY := top + 2
	meta := [][2]string{
		{"Invoice No.", inv.InvoiceNumber},
		{"Issue Date", formatDate(inv.IssueDate)},
		{"Due Date", formatDate(inv.DueDate)},
		{"Payment Terms", formatPaymentTerms(inv.PaymentTerms)},
		{"Status", inv.Status.DisplayLabel()},
	}
	for _, row := range meta {
		d.placeText(row[0], metaX, metaY, textStyle{size: 9, bold: true, color: colorMuted})
		d.placeText(row[1], metaRight, metaY, textStyle{size: 9, color: colorDark, align: alignRight})
		metaY += 6
	}

	if metaY > y {
		y = metaY
	}
	return y + 8
}

func standardColumns(d *document) []tableColumn {
	return []tableColumn{
		{title: "Description", width: d.contentW * 0.40, align: alignLeft},
		{title: "Qty", width: d.contentW * 0.10, align: alignRight},
		{title: "Rate", width: d.contentW * 0.14, align: alignRight},
		{title: "Tax", width: d.contentW * 0.12, align: alignRight},
		{title: "Discount", width: d.contentW * 0.12, align: alignRight},
		{title: "Total", width: d.contentW * 0.12, align: alignRight},
	}
}

func standardRows(inv *billing.Invoice, symbol string) [][]string {
	rows := make([][]string, 0, len(inv.LineItems))
	for _, item := range inv.LineItems {
		rows = append(rows, []string{
			item.Description,
			item.Quantity.String(),
			formatAmount(symbol, item.UnitPrice),
			formatAmount(symbol, item.TaxAmount),
			formatAmount(symbol, item.DiscountAmount),
			formatAmount(symbol, item.TotalAmount),
		})
	}
	return rows
}

func drawStandardTotals(d *document, inv *billing.Invoice, s *billing.Settings, y float64) {
	const boxW = 72.0
	const rowH = 6.0
	boxH := rowH*6 + 6

	if y+boxH > d.bottomLimit() {
		d.newPage()
		y = pageMargin
	}

	boxX := pageMargin + d.contentW - boxW
	d.placeRect(boxX, y, boxW, boxH, &colorStripe, &colorRule)

	symbol := s.CurrencySymbol()
	labelX := boxX + 4
	valueX := boxX + boxW - 4
	rowY := y + 7

	plain := textStyle{size: 9, color: colorBody}
	strong := textStyle{size: 10, bold: true, color: colorDark}
	lines := []struct {
		label string
		value string
		style textStyle
	}{
		{"Subtotal", formatAmount(symbol, inv.Subtotal), plain},
		{"Tax", formatAmount(symbol, inv.TaxAmount), plain},
		{"Discount", formatAmount(symbol, inv.DiscountAmount.Neg()), plain},
		{"Total", formatAmount(symbol, inv.TotalAmount), strong},
		{"Amount Paid", formatAmount(symbol, inv.AmountPaid), plain},
		{"Balance Due", formatAmount(symbol, inv.BalanceDue), strong},
	}
	for _, line := range lines {
		d.placeText(line.label, labelX, rowY, withAlign(line.style, alignLeft))
		d.placeText(line.value, valueX, rowY, withAlign(line.style, alignRight))
		rowY += rowH
	}

	badge := inv.Status.StatusColor()
	badgeColor := rgb{int(badge.R), int(badge.G), int(badge.B)}
	d.placeDot(pageMargin+3, y+5, 1.8, badgeColor)
	d.placeText(inv.Status.DisplayLabel(), pageMargin+8, y+6.5, textStyle{size: 9, bold: true, color: badgeColor})
}

// drawStandardFooter writes notes and terms near the bottom of the final
// page, above a divider that separates them from the page number band.
func drawStandardFooter(d *document, inv *billing.Invoice, s *billing.Settings) {
	notes := inv.Notes
	if notes == "" {
		notes = s.DefaultNotes
	}
	terms := inv.TermsOrDefault(s)
	if notes == "" && terms == "" {
		return
	}

	y := d.pageH - pageMargin - footerReserve + 3
	body := textStyle{size: 8, color: colorMuted}
	if notes != "" {
		d.placeText("Notes", pageMargin, y, textStyle{size: 8.5, bold: true, color: colorDark})
		y = d.placeLines(d.wrapText(notes, d.contentW, body), pageMargin, y+4.5, body)
	}
	if terms != "" {
		d.placeText("Terms", pageMargin, y+1, textStyle{size: 8.5, bold: true, color: colorDark})
		d.placeLines(d.wrapText(terms, d.contentW, body), pageMargin, y+5.5, body)
	}

	d.placeLine(pageMargin, d.pageH-15, pageMargin+d.contentW, d.pageH-15, colorRule, 0.3)
}

func nonEmpty(lines []string) []string {
	out := lines[:0]
	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
