package main

import (
	"github.com/jung-kurt/gofpdf"
	"github.com/rigelrozanski/nibsheet/guide"
)

type Pdf interface {
	guide.Renderer
	SetLineCapStyle(styleStr string)
}

var (
	_ Pdf        = (*gofpdf.Fpdf)(nil)
	_ captionPdf = (*gofpdf.Fpdf)(nil)
)

// newPdf opens a one page document the size of the model's sheet.
func newPdf(m *guide.PageModel) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: string(m.Page.Orientation),
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: m.Page.Width, Ht: m.Page.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

// drawSheet renders the model onto pdf. Dashes need butt caps to keep
// their length.
func drawSheet(pdf Pdf, m *guide.PageModel) (strokes []guide.Stroke, err error) {
	strokes, err = guide.Render(m)
	if err != nil {
		return nil, err
	}
	pdf.SetLineCapStyle("butt")
	guide.Draw(pdf, strokes)
	return strokes, nil
}

// countingPdf fulfills the interface Pdf, it only counts what it is asked to draw
type countingPdf struct {
	lines        int
	colorChanges int
	widthChanges int
}

var _ Pdf = &countingPdf{}

func (c *countingPdf) SetDrawColor(r, g, b int)        { c.colorChanges++ }
func (c *countingPdf) SetLineWidth(width float64)      { c.widthChanges++ }
func (c *countingPdf) Line(x1, y1, x2, y2 float64)     { c.lines++ }
func (c *countingPdf) SetLineCapStyle(styleStr string) {}
