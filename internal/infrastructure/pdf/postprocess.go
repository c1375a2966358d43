package pdf

import "fmt"

// applyWatermark stamps a diagonal PAID mark across the center of every
// page. It runs after the template so the mark sits above the page content.
func applyWatermark(d *document) {
	n := d.pdf.PageCount()
	for i := 1; i <= n; i++ {
		d.pdf.SetPage(i)
		d.placeText("PAID", d.pageW/2, d.pageH/2, textStyle{
			size:   96,
			bold:   true,
			color:  colorWatermark,
			align:  alignCenter,
			rotate: 45,
		})
	}
	d.pdf.SetPage(n)
}

// applyPageNumbers writes "Page X of N" centered in the bottom band of each
// page. It must run last: the total is only known once layout is complete.
func applyPageNumbers(d *document) {
	n := d.pdf.PageCount()
	for i := 1; i <= n; i++ {
		d.pdf.SetPage(i)
		d.placeText(fmt.Sprintf("Page %d of %d", i, n), d.pageW/2, d.pageH-10,
			textStyle{size: 8, color: colorFaint, align: alignCenter})
	}
	d.pdf.SetPage(n)
}
