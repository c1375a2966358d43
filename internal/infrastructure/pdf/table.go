package pdf

const (
	tableCellPad    = 2.0
	tableHeaderH    = 8.0
	tableRowMinH    = 7.0
	tableFontSize   = 9.0
	tableHeaderFont = 9.0
)

// tableColumn describes one column of an item table. Width is in
// millimeters; Align applies to both the header label and the body cells.
type tableColumn struct {
	title string
	width float64
	align string
}

// tableStyle bundles the visual treatment of a table. The standard layouts
// use a tinted header band with striped rows; the luxury layout adds cell
// borders and a dark filled header.
type tableStyle struct {
	headerFill rgb
	headerText rgb
	bodyText   rgb
	stripeFill *rgb
	bordered   bool
}

// placeTable draws rows under a header band starting at startY and returns
// the Y just below the last row. When the next row would cross the bottom
// threshold the table continues on a fresh page with the header band redrawn
// at the top, so rows never collide with the footer area.
func (d *document) placeTable(cols []tableColumn, rows [][]string, startY float64, st tableStyle) float64 {
	bodyStyle := textStyle{size: tableFontSize, color: st.bodyText}

	y := d.drawTableHeader(cols, startY, st)
	for i, row := range rows {
		wrapped, rowH := d.layoutRow(cols, row, bodyStyle)
		if y+rowH > d.bottomLimit() {
			d.newPage()
			y = d.drawTableHeader(cols, pageMargin, st)
		}
		d.drawTableRow(cols, wrapped, y, rowH, i%2 == 1, st, bodyStyle)
		y += rowH
	}
	return y
}

func (d *document) drawTableHeader(cols []tableColumn, y float64, st tableStyle) float64 {
	totalW := 0.0
	for _, c := range cols {
		totalW += c.width
	}
	d.placeRect(pageMargin, y, totalW, tableHeaderH, &st.headerFill, nil)

	labelStyle := textStyle{size: tableHeaderFont, bold: true, color: st.headerText}
	x := pageMargin
	baseline := y + tableHeaderH/2 + 1.5
	for _, c := range cols {
		d.placeText(c.title, cellAnchor(x, c), baseline, withAlign(labelStyle, c.align))
		if st.bordered {
			d.placeRect(x, y, c.width, tableHeaderH, nil, &colorRule)
		}
		x += c.width
	}
	return y + tableHeaderH
}

// layoutRow wraps each cell to its column width and reports the row height
// needed to fit the tallest cell.
func (d *document) layoutRow(cols []tableColumn, row []string, st textStyle) ([][]string, float64) {
	wrapped := make([][]string, len(cols))
	maxLines := 1
	for i := range cols {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		lines := d.wrapText(cell, cols[i].width-2*tableCellPad, st)
		if len(lines) == 0 {
			lines = []string{""}
		}
		wrapped[i] = lines
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}
	h := float64(maxLines)*lineHeight + 2*tableCellPad
	if h < tableRowMinH {
		h = tableRowMinH
	}
	return wrapped, h
}

func (d *document) drawTableRow(cols []tableColumn, wrapped [][]string, y, rowH float64, stripe bool, st tableStyle, bodyStyle textStyle) {
	totalW := 0.0
	for _, c := range cols {
		totalW += c.width
	}
	if stripe && st.stripeFill != nil {
		d.placeRect(pageMargin, y, totalW, rowH, st.stripeFill, nil)
	}

	x := pageMargin
	for i, c := range cols {
		baseline := y + tableCellPad + lineHeight - 1.2
		for _, line := range wrapped[i] {
			d.placeText(line, cellAnchor(x, c), baseline, withAlign(bodyStyle, c.align))
			baseline += lineHeight
		}
		if st.bordered {
			d.placeRect(x, y, c.width, rowH, nil, &colorRule)
		}
		x += c.width
	}
}

// cellAnchor converts a column's left edge to the text anchor its alignment
// expects, respecting the cell padding.
func cellAnchor(x float64, c tableColumn) float64 {
	switch c.align {
	case alignCenter:
		return x + c.width/2
	case alignRight:
		return x + c.width - tableCellPad
	default:
		return x + tableCellPad
	}
}

func withAlign(st textStyle, align string) textStyle {
	st.align = align
	return st
}
