package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/rigelrozanski/nibsheet/guide"
)

// ToModel converts a view into the page model the layout works on. The
// model is validated once here; any problem is reported as a
// *guide.InvalidLayoutConfig.
func ToModel(v View) (*guide.PageModel, error) {
	m := &guide.PageModel{}

	// page
	name, width, height, err := v.paperSize()
	if err != nil {
		return nil, guide.NewInvalidLayoutConfig("paper-size.name", "%v", err)
	}
	if !finitePositive(width) || !finitePositive(height) {
		return nil, guide.NewInvalidLayoutConfig("paper-size",
			"dimensions must be positive, are %gx%g", width, height)
	}
	m.Page = guide.PageFormat{Name: name, Width: width, Height: height}
	switch strings.ToUpper(strings.TrimSpace(v.Orientation)) {
	case "", "P":
		m.Page.Orientation = guide.Portrait
	case "L":
		m.Page.Orientation = guide.Landscape
	default:
		return nil, guide.NewInvalidLayoutConfig("orientation", "want P or L, have %q", v.Orientation)
	}

	// horizontal guide lines
	if !finitePositive(v.NibWidth) {
		return nil, guide.NewInvalidLayoutConfig("nib-width", "must be positive and finite, is %g", v.NibWidth)
	}
	for i, line := range v.GuideLines {
		field := fmt.Sprintf("guide-lines[%d]", i)
		style, err := guide.ParseLineStyle(line.Style)
		if err != nil {
			return nil, guide.NewInvalidLayoutConfig(field+".style", "%v", err)
		}
		color, err := ParseHexColor(line.Color)
		if err != nil {
			return nil, guide.NewInvalidLayoutConfig(field+".color", "%v", err)
		}
		m.Lines = append(m.Lines, guide.GuideLine{
			Position:  line.Position * v.NibWidth,
			LineWidth: line.LineWidth,
			Style:     style,
			Color:     color,
		})
	}

	// angle guides
	if m.Slant, err = angleLine(v.Slant, true, v.NibWidth, "slant-guide"); err != nil {
		return nil, err
	}
	if m.NibAngle, err = angleLine(v.NibAngle, false, v.NibWidth, "nib-angle-guide"); err != nil {
		return nil, err
	}

	// columns
	if m.Columns, err = columns(v.Page, m.Page); err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("view to model: %s %s, %d lines, %d columns",
		m.Page.Name, m.Page.Orientation, len(m.Lines), len(m.Columns))
	return m, nil
}

// angleLine copies an enabled angle guide; a disabled one yields nil.
func angleLine(g AngleGuideView, toVertical bool, nibWidth float64, field string) (*guide.AngleLine, error) {
	if !g.Enabled {
		return nil, nil
	}
	color, err := ParseHexColor(g.Color)
	if err != nil {
		return nil, guide.NewInvalidLayoutConfig(field+".color", "%v", err)
	}
	dt, err := guide.ParseDistanceType(g.DistanceType)
	if err != nil {
		return nil, guide.NewInvalidLayoutConfig(field+".distance-type", "%v", err)
	}
	return &guide.AngleLine{
		Angle:        g.Angle,
		ToVertical:   toVertical,
		LineWidth:    g.LineWidth,
		Color:        color,
		Distance:     g.Distance * nibWidth,
		DistanceType: dt,
	}, nil
}

// columns splits the area inside the margins into equally wide columns.
func columns(pv PageView, page guide.PageFormat) ([]guide.Column, error) {
	if pv.Columns < 1 {
		return nil, guide.NewInvalidLayoutConfig("page.columns", "at least one column is required, have %d", pv.Columns)
	}
	margins := []struct {
		field string
		value float64
	}{
		{"page.top-margin", pv.TopMargin},
		{"page.bottom-margin", pv.BottomMargin},
		{"page.left-margin", pv.LeftMargin},
		{"page.right-margin", pv.RightMargin},
		{"page.inter-column", pv.InterColumn},
	}
	for _, margin := range margins {
		if !(margin.value >= 0) || math.IsInf(margin.value, 1) {
			return nil, guide.NewInvalidLayoutConfig(margin.field, "must be finite and not negative, is %g", margin.value)
		}
	}
	pageWidth, pageHeight := page.Size()
	columnHeight := pageHeight - pv.TopMargin - pv.BottomMargin
	columnWidth := (pageWidth - pv.LeftMargin - pv.RightMargin -
		float64(pv.Columns-1)*pv.InterColumn) / float64(pv.Columns)
	if columnHeight <= 0 {
		return nil, guide.NewInvalidLayoutConfig("page", "margins leave no height for columns")
	}
	if columnWidth <= 0 {
		return nil, guide.NewInvalidLayoutConfig("page", "margins and gaps leave no width for columns")
	}
	cols := make([]guide.Column, pv.Columns)
	for i := range cols {
		left := pv.LeftMargin + float64(i)*(columnWidth+pv.InterColumn)
		cols[i] = guide.Column{
			Top:    pv.TopMargin,
			Left:   left,
			Bottom: pv.TopMargin + columnHeight,
			Right:  left + columnWidth,
		}
	}
	return cols, nil
}

func finitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
