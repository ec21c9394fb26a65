package main

import (
	"fmt"
	"strings"

	"github.com/rigelrozanski/nibsheet/guide"
	"github.com/rigelrozanski/nibsheet/view"
)

const (
	ptToMM        = 25.4 / 72
	widthToHeight = 0.6 // courier advance per point

	captionMaxPt = 11.0
	captionMinPt = 5.0
)

// captionPdf is the part of the pdf the caption needs on top of Pdf.
type captionPdf interface {
	SetFont(familyStr, styleStr string, size float64)
	SetTextColor(r, g, b int)
	Text(x, y float64, txtStr string)
}

func fontHeight(pt float64) (heightMM float64) {
	return pt * ptToMM
}

func courierWidthFromHeight(height float64) float64 {
	return widthToHeight * height
}

// sheetCaption sums up the nib, slant and nib-angle settings a sheet was
// made for, so a printed page can be matched to its pen later.
func sheetCaption(v view.View) string {
	parts := []string{
		strings.ToUpper(v.PaperSize.Name),
		fmt.Sprintf("nib %g mm", v.NibWidth),
	}
	if v.Slant.Enabled {
		parts = append(parts, fmt.Sprintf("slant %g deg", v.Slant.Angle))
	}
	if v.NibAngle.Enabled {
		parts = append(parts, fmt.Sprintf("nib angle %g deg", v.NibAngle.Angle))
	}
	return strings.Join(parts, " / ")
}

// printCaption writes text into the top margin above the first column,
// shrinking the font until it fits. Reports false when the margin is too
// small even for the smallest font.
func printCaption(pdf captionPdf, m *guide.PageModel, text string) bool {
	if text == "" || len(m.Columns) == 0 {
		return false
	}
	col := m.Columns[0]
	availableWidth := m.Columns[len(m.Columns)-1].Right - col.Left
	availableHeight := col.Top * 0.8

	pt := captionMaxPt
	var h float64
	for ; pt >= captionMinPt; pt-- {
		h = fontHeight(pt)
		usedWidth := float64(len(text)) * courierWidthFromHeight(h)
		if usedWidth <= availableWidth && h <= availableHeight {
			break
		}
	}
	if pt < captionMinPt {
		tracer().Infof("no room for caption %q", text)
		return false
	}
	pdf.SetFont("courier", "", pt)
	pdf.SetTextColor(0x80, 0x80, 0x80)
	// baseline centred in the margin
	pdf.Text(col.Left, (col.Top+h)/2, text)
	return true
}
