package render

import (
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfLineHeight = 6.0
	pdfCellPad    = 2.0
)

// PDF writes a printable handout: the title and speaker, then each
// comparison as a bordered two-column table.
type PDF struct {
	// PageSize is a gofpdf size name; empty means A4.
	PageSize string
}

func (PDF) Extension() string { return ".pdf" }

func (p PDF) Render(w io.Writer, doc Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	size := strings.TrimSpace(p.PageSize)
	if size == "" {
		size = "A4"
	}
	pdf := gofpdf.New("P", "mm", size, "")
	// Core fonts are cp1252; translate from UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	title := doc.Title()
	if title != "" {
		pdf.SetTitle(title, true)
	}
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if doc.Header != nil {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 9, tr(doc.Header.Title), "", "L", false)
		if s := speakerLine(doc.Header); s != "" {
			pdf.SetFont("Helvetica", "I", 12)
			pdf.MultiCell(0, 7, tr(s), "", "L", false)
		}
		pdf.Ln(4)
	}

	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	colW := (pageW - left - right) / 2

	for _, c := range doc.Comparisons {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(230, 230, 230)
		pdfRow(pdf, colW, tr(c.LeftHeading), tr(c.RightHeading), true)
		pdf.SetFont("Helvetica", "", 11)
		for i, l := range c.LeftContent {
			pdfRow(pdf, colW, tr(l), tr(c.RightContent[i]), false)
		}
		pdf.Ln(6)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// pdfRow draws two equal-height bordered cells, wrapping long text.
func pdfRow(pdf *gofpdf.Fpdf, colW float64, l, r string, fill bool) {
	ln := len(pdf.SplitLines([]byte(l), colW-2*pdfCellPad))
	if rn := len(pdf.SplitLines([]byte(r), colW-2*pdfCellPad)); rn > ln {
		ln = rn
	}
	if ln == 0 {
		ln = 1
	}
	h := float64(ln) * pdfLineHeight

	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	if pdf.GetY()+h > pageH-bottom {
		pdf.AddPage()
	}
	x, y := pdf.GetXY()
	style := "D"
	if fill {
		style = "FD"
	}
	for i, s := range []string{l, r} {
		cx := x + float64(i)*colW
		pdf.Rect(cx, y, colW, h, style)
		pdf.SetXY(cx+pdfCellPad, y)
		pdf.MultiCell(colW-2*pdfCellPad, pdfLineHeight, s, "", "L", false)
	}
	pdf.SetXY(x, y+h)
}
