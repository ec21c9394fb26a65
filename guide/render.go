package guide

import (
	"fmt"
	"math"
)

// Renderer receives the drawing instructions of a sheet. *gofpdf.Fpdf
// satisfies it.
type Renderer interface {
	SetDrawColor(r, g, b int)
	SetLineWidth(width float64)
	Line(x1, y1, x2, y2 float64)
}

// upper bounds on the work a single page may ask for
const (
	maxRows    = 10000   // repetitions per column
	maxStrokes = 1 << 20 // per page
)

// Validate checks the model before any layout is done. Fields are named
// by their configuration keys.
func (m *PageModel) Validate() error {
	if m == nil {
		return NewInvalidLayoutConfig("", "no page model")
	}
	if len(m.Columns) < 1 {
		return NewInvalidLayoutConfig("page.columns", "at least one column is required")
	}
	for i, col := range m.Columns {
		if !(col.Bottom > col.Top) || !(col.Right > col.Left) ||
			math.IsInf(col.Height(), 0) || math.IsInf(col.Width(), 0) {
			return NewInvalidLayoutConfig(fmt.Sprintf("page.columns[%d]", i),
				"empty rectangle %v", col)
		}
	}
	if len(m.Lines) == 0 {
		return NewInvalidLayoutConfig("guide-lines", "at least one guide line is required")
	}
	for i, line := range m.Lines {
		if !positive(line.LineWidth) {
			return NewInvalidLayoutConfig(fmt.Sprintf("guide-lines[%d].line-width", i),
				"must be positive and finite, is %g", line.LineWidth)
		}
		if math.IsNaN(line.Position) || math.IsInf(line.Position, 0) {
			return NewInvalidLayoutConfig(fmt.Sprintf("guide-lines[%d].position", i),
				"not a number")
		}
	}
	ext := LineSetExtent(m.Lines)
	if ext.Height <= 0 {
		return NewInvalidLayoutConfig("guide-lines", "family height is zero")
	}
	if m.Slant != nil {
		if err := m.Slant.validate("slant-guide"); err != nil {
			return err
		}
	}
	if m.NibAngle != nil {
		if err := m.NibAngle.validate("nib-angle-guide"); err != nil {
			return err
		}
	}
	return m.checkWork(ext)
}

// checkWork rejects models that would produce more strokes than a page
// can reasonably hold.
func (m *PageModel) checkWork(ext Extent) error {
	families := []struct {
		al    *AngleLine
		field string
	}{
		{m.NibAngle, "nib-angle-guide"},
		{m.Slant, "slant-guide"},
	}
	total := 0.0
	for i, col := range m.Columns {
		rows := math.Floor(col.Height() / ext.Height)
		if rows > maxRows {
			return NewInvalidLayoutConfig("guide-lines",
				"family height %g mm gives %g rows in column %d, at most %d are allowed",
				ext.Height, rows, i, maxRows)
		}
		perRow := 0.0
		for _, line := range m.Lines {
			perRow += line.segments(col.Width())
		}
		for _, f := range families {
			if f.al == nil {
				continue
			}
			n := f.al.linesPerRow(col.Width(), ext.Height)
			if !(n <= maxAngleLines) {
				return NewInvalidLayoutConfig(f.field+".distance",
					"%g lines per row, at most %d are allowed", n, maxAngleLines)
			}
			perRow += n
		}
		total += rows * perRow
	}
	if !(total <= maxStrokes) {
		return NewInvalidLayoutConfig("guide-lines",
			"the page would need %g strokes, at most %d are allowed", total, maxStrokes)
	}
	return nil
}

// Render lays out every column of the model. Either the complete list of
// strokes is returned or an error and no strokes.
func Render(m *PageModel) ([]Stroke, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	ext := LineSetExtent(m.Lines)
	var strokes []Stroke
	for _, col := range m.Columns {
		strokes = append(strokes, LayoutColumn(col, m, ext)...)
	}
	tracer().Infof("rendered %d columns into %d strokes", len(m.Columns), len(strokes))
	return strokes, nil
}

// pen remembers what the renderer currently strokes with.
type pen struct {
	color    RGB
	width    float64
	hasColor bool
	hasWidth bool
}

// Draw hands the strokes to r in order. Color and width are only sent
// when they change.
func Draw(r Renderer, strokes []Stroke) {
	var p pen
	for _, s := range strokes {
		if !p.hasColor || p.color != s.Color {
			r.SetDrawColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
			p.color, p.hasColor = s.Color, true
		}
		if !p.hasWidth || p.width != s.Width {
			r.SetLineWidth(s.Width)
			p.width, p.hasWidth = s.Width, true
		}
		r.Line(s.X0, s.Y0, s.X1, s.Y1)
	}
}
