package guide

import (
	"fmt"
	"math"
	"strings"
)

// RGB is a stroke color.
type RGB struct {
	R, G, B uint8
}

// Black is the color used when none is given.
var Black = RGB{0, 0, 0}

// LineStyle is the dash pattern of a horizontal guide line.
type LineStyle int

const (
	Plain LineStyle = iota
	Dashed
	Dotted
)

func (s LineStyle) String() string {
	switch s {
	case Plain:
		return "plain"
	case Dashed:
		return "dashed"
	case Dotted:
		return "dotted"
	}
	return fmt.Sprintf("LineStyle(%d)", int(s))
}

// ParseLineStyle reads a style name. The empty string is plain.
func ParseLineStyle(name string) (LineStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plain":
		return Plain, nil
	case "dashed":
		return Dashed, nil
	case "dotted":
		return Dotted, nil
	}
	return Plain, fmt.Errorf("unknown line style %q", name)
}

// GuideLine is one horizontal line of a family. Position is measured in mm
// above (positive) or below (negative) the baseline.
type GuideLine struct {
	Position  float64
	LineWidth float64
	Style     LineStyle
	Color     RGB
}

// Family is the set of guide lines repeated down a column.
type Family []GuideLine

// Extent describes the vertical span of a family.
type Extent struct {
	MaxHeight float64
	MinHeight float64
	Height    float64
}

// DistanceType tells how the spacing of angled lines is measured.
type DistanceType int

const (
	Parallel   DistanceType = iota // perpendicular to the lines
	Horizontal                     // along the baseline
)

func (d DistanceType) String() string {
	switch d {
	case Parallel:
		return "parallel"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("DistanceType(%d)", int(d))
}

// ParseDistanceType reads a distance type name. The empty string is parallel.
func ParseDistanceType(name string) (DistanceType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "parallel":
		return Parallel, nil
	case "horizontal":
		return Horizontal, nil
	}
	return Parallel, fmt.Errorf("unknown distance type %q", name)
}

// AngleLine specifies a repeating family of angled lines. With ToVertical
// set it is a slant guide, with the angle measured from the vertical;
// otherwise it is a nib-angle guide measured from the horizontal.
type AngleLine struct {
	Angle        float64 // degrees
	ToVertical   bool
	LineWidth    float64
	Color        RGB
	Distance     float64
	DistanceType DistanceType
}

// Column is one writing area of the page.
type Column struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

func (c Column) Width() float64 {
	return c.Right - c.Left
}

func (c Column) Height() float64 {
	return c.Bottom - c.Top
}

// Orientation of the sheet.
type Orientation string

const (
	Portrait  Orientation = "P"
	Landscape Orientation = "L"
)

// PageFormat is a paper size given in portrait millimeters plus the
// orientation it is printed in.
type PageFormat struct {
	Name        string
	Width       float64
	Height      float64
	Orientation Orientation
}

// Size returns width and height of the sheet as it lies on the table.
func (p PageFormat) Size() (width, height float64) {
	if p.Orientation == Landscape {
		return p.Height, p.Width
	}
	return p.Width, p.Height
}

// PageModel is everything needed to lay out one sheet. A nil Slant or
// NibAngle means the family is not drawn.
type PageModel struct {
	Page     PageFormat
	Lines    Family
	Slant    *AngleLine
	NibAngle *AngleLine
	Columns  []Column
}

// Segment is a straight line in page coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.X1-s.X0, s.Y1-s.Y0)
}

// LineKind tells which family a stroke belongs to.
type LineKind int

const (
	GuideKind LineKind = iota
	SlantKind
	NibAngleKind
)

func (k LineKind) String() string {
	switch k {
	case GuideKind:
		return "guide"
	case SlantKind:
		return "slant"
	case NibAngleKind:
		return "nib-angle"
	}
	return fmt.Sprintf("LineKind(%d)", int(k))
}

// Stroke is a segment together with the pen it is drawn with.
type Stroke struct {
	Segment
	Width float64
	Color RGB
	Kind  LineKind
}
