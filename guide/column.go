package guide

import "math"

// gaps up to this multiple of the top line's width count as touching
const skipFirstFactor = 1.1

// Repetition is how a family is stacked down one column.
type Repetition struct {
	Count     int     // number of family repetitions that fit
	Gap       float64 // space between two repetitions
	SkipFirst bool    // repetitions after the first omit their top line
}

// SolveColumn fits as many repetitions of the family into the column as
// possible and spreads the remaining height between them. The family
// height must be positive.
func SolveColumn(col Column, fam Family, ext Extent) Repetition {
	rep := Repetition{}
	rep.Count = int(math.Floor(col.Height() / ext.Height))
	if rep.Count < 0 {
		rep.Count = 0
	}
	if rep.Count > 1 {
		rep.Gap = (col.Height() - ext.Height*float64(rep.Count)) / float64(rep.Count-1)
	}
	firstLineWidth := 0.0
	for _, line := range fam {
		if line.Position == ext.MaxHeight {
			firstLineWidth = line.LineWidth
		}
	}
	rep.SkipFirst = rep.Gap <= firstLineWidth*skipFirstFactor
	return rep
}

// Baseline returns the y coordinate of the baseline of repetition i.
func (rep Repetition) Baseline(col Column, ext Extent, i int) float64 {
	return col.Top + float64(i)*(ext.Height+rep.Gap) + ext.MaxHeight
}

// LayoutColumn produces the strokes of one column: for every repetition
// the nib-angle lines, then the guide lines, then the slant lines.
func LayoutColumn(col Column, m *PageModel, ext Extent) []Stroke {
	rep := SolveColumn(col, m.Lines, ext)
	tracer().Debugf("column %v: %d repetitions, gap %.3f, skip first %v",
		col, rep.Count, rep.Gap, rep.SkipFirst)
	var strokes []Stroke
	for i := 0; i < rep.Count; i++ {
		dy := rep.Baseline(col, ext, i)
		if m.NibAngle != nil {
			strokes = append(strokes, angleStrokes(col.Left, dy, col.Width(), ext, *m.NibAngle)...)
		}
		strokes = append(strokes, HorizontalLines(col.Left, dy, col.Width(), m.Lines, ext,
			rep.SkipFirst && i != 0)...)
		if m.Slant != nil {
			strokes = append(strokes, angleStrokes(col.Left, dy, col.Width(), ext, *m.Slant)...)
		}
	}
	return strokes
}
