package pdf

import (
	"bytes"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	fontFamily      = "Helvetica"
	defaultFontSize = 10.0
	pageMargin      = 20.0
	lineHeight      = 5.0
	footerReserve   = 32.0
)

type rgb struct {
	r, g, b int
}

var (
	colorDark      = rgb{31, 41, 55}
	colorBody      = rgb{55, 65, 81}
	colorMuted     = rgb{107, 114, 128}
	colorFaint     = rgb{156, 163, 175}
	colorAccent    = rgb{245, 158, 11}
	colorStripe    = rgb{245, 246, 248}
	colorRule      = rgb{229, 231, 235}
	colorWatermark = rgb{214, 214, 214}
	colorWhite     = rgb{255, 255, 255}
)

const (
	alignLeft   = "L"
	alignCenter = "C"
	alignRight  = "R"
)

// textStyle describes how a single run of text is drawn. The zero value
// means 10pt regular body text, left-aligned and unrotated.
type textStyle struct {
	size   float64
	bold   bool
	italic bool
	color  rgb
	align  string
	rotate float64
}

// document wraps a gofpdf page buffer with the coordinate helpers the
// template strategies draw with. All positions are in millimeters from the
// top-left page corner. Automatic page breaks are disabled; pagination is
// handled explicitly by placeTable and the strategies.
type document struct {
	pdf      *gofpdf.Fpdf
	pageW    float64
	pageH    float64
	contentW float64
}

// newDocument opens a fresh single-page buffer. Both document dates are
// pinned to the invoice issue date and catalog sorting is on so identical
// inputs serialize to identical bytes.
func newDocument(format Format, orientation Orientation, created time.Time) *document {
	orient := "P"
	if orientation == OrientationLandscape {
		orient = "L"
	}
	f := gofpdf.New(orient, "mm", string(format), "")
	f.SetCreationDate(created.UTC())
	f.SetModificationDate(created.UTC())
	f.SetCatalogSort(true)
	f.SetCompression(false)
	f.SetAutoPageBreak(false, 0)
	f.SetMargins(pageMargin, pageMargin, pageMargin)
	f.AddPage()

	w, h := f.GetPageSize()
	return &document{
		pdf:      f,
		pageW:    w,
		pageH:    h,
		contentW: w - 2*pageMargin,
	}
}

func (d *document) err() error {
	if d.pdf.Err() {
		return d.pdf.Error()
	}
	return nil
}

func (d *document) newPage() {
	d.pdf.AddPage()
}

// bottomLimit is the lowest Y a table row may occupy before pagination,
// leaving room for the footer band and page number.
func (d *document) bottomLimit() float64 {
	return d.pageH - pageMargin - footerReserve
}

func (d *document) setFont(st textStyle) {
	style := ""
	if st.bold {
		style += "B"
	}
	if st.italic {
		style += "I"
	}
	size := st.size
	if size == 0 {
		size = defaultFontSize
	}
	d.pdf.SetFont(fontFamily, style, size)
}

// placeText draws a single line of text anchored at (x, y). The anchor is
// the baseline start for left alignment, the midpoint for center, and the
// end for right alignment. A non-zero rotation pivots the text around the
// anchor point.
func (d *document) placeText(txt string, x, y float64, st textStyle) {
	d.setFont(st)
	d.pdf.SetTextColor(st.color.r, st.color.g, st.color.b)

	tx := x
	switch st.align {
	case alignCenter:
		tx = x - d.pdf.GetStringWidth(txt)/2
	case alignRight:
		tx = x - d.pdf.GetStringWidth(txt)
	}

	if st.rotate != 0 {
		d.pdf.TransformBegin()
		d.pdf.TransformRotate(st.rotate, x, y)
		d.pdf.Text(tx, y, txt)
		d.pdf.TransformEnd()
		return
	}
	d.pdf.Text(tx, y, txt)
}

// placeLines draws consecutive lines spaced by lineHeight and returns the Y
// just below the last one.
func (d *document) placeLines(lines []string, x, y float64, st textStyle) float64 {
	for _, line := range lines {
		d.placeText(line, x, y, st)
		y += lineHeight
	}
	return y
}

func (d *document) measureTextWidth(txt string, st textStyle) float64 {
	d.setFont(st)
	return d.pdf.GetStringWidth(txt)
}

// wrapText splits text into lines that fit within maxWidth using greedy
// word wrapping. Words are never split mid-word: a single word wider than
// maxWidth occupies a line by itself and overflows visually.
func (d *document) wrapText(txt string, maxWidth float64, st textStyle) []string {
	words := strings.Fields(txt)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, 4)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if d.measureTextWidth(candidate, st) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// placeRect fills and/or outlines a rectangle. A nil color skips that part.
func (d *document) placeRect(x, y, w, h float64, fill, stroke *rgb) {
	style := ""
	if fill != nil {
		d.pdf.SetFillColor(fill.r, fill.g, fill.b)
		style += "F"
	}
	if stroke != nil {
		d.pdf.SetDrawColor(stroke.r, stroke.g, stroke.b)
		style += "D"
	}
	if style == "" {
		return
	}
	d.pdf.Rect(x, y, w, h, style)
}

func (d *document) placeLine(x1, y1, x2, y2 float64, color rgb, width float64) {
	d.pdf.SetDrawColor(color.r, color.g, color.b)
	d.pdf.SetLineWidth(width)
	d.pdf.Line(x1, y1, x2, y2)
}

func (d *document) placeDot(x, y, radius float64, color rgb) {
	d.pdf.SetFillColor(color.r, color.g, color.b)
	d.pdf.Circle(x, y, radius, "F")
}

// output serializes the buffer. Any drawing error latched by gofpdf during
// composition surfaces here.
func (d *document) output() ([]byte, error) {
	if err := d.err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
