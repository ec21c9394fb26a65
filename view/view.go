/*
Package view holds the user facing configuration of a practice sheet and
turns it into a guide.PageModel.

Guide-line positions and angle-line distances are entered in nib widths;
everything else is in millimeters.
*/
package view

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nibsheet.view'.
func tracer() tracing.Trace {
	return tracing.Select("nibsheet.view")
}

// View is the configuration of one sheet.
type View struct {
	PaperSize   PaperSize       `yaml:"paper-size"`
	Orientation string          `yaml:"orientation"` // "P" or "L"
	NibWidth    float64         `yaml:"nib-width"`
	GuideLines  []GuideLineView `yaml:"guide-lines"`
	Page        PageView        `yaml:"page"`
	Slant       AngleGuideView  `yaml:"slant-guide"`
	NibAngle    AngleGuideView  `yaml:"nib-angle-guide"`
}

// PaperSize names a preset or, with name "other", gives explicit
// portrait dimensions in mm.
type PaperSize struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// GuideLineView is a horizontal guide line, positioned in nib widths.
type GuideLineView struct {
	Position  float64 `yaml:"position"`
	Style     string  `yaml:"style"`
	LineWidth float64 `yaml:"line-width"`
	Color     string  `yaml:"color,omitempty"`
}

// PageView holds margins and the column grid.
type PageView struct {
	TopMargin    float64 `yaml:"top-margin"`
	BottomMargin float64 `yaml:"bottom-margin"`
	LeftMargin   float64 `yaml:"left-margin"`
	RightMargin  float64 `yaml:"right-margin"`
	Columns      int     `yaml:"columns"`
	InterColumn  float64 `yaml:"inter-column"`
}

// AngleGuideView configures the slant or the nib-angle guide.
type AngleGuideView struct {
	Enabled      bool    `yaml:"enabled"`
	Angle        float64 `yaml:"angle"`
	LineWidth    float64 `yaml:"line-width"`
	Color        string  `yaml:"color,omitempty"`
	Distance     float64 `yaml:"distance"`
	DistanceType string  `yaml:"distance-type"`
}

const defaultMargin = 12.7

// Default returns the sheet a new user starts with: A4 portrait, one
// column and both angle guides switched on.
func Default() View {
	return View{
		PaperSize:   PaperSize{Name: "a4"},
		Orientation: "P",
		NibWidth:    1.1,
		GuideLines: []GuideLineView{
			{Position: 9, Style: "plain", LineWidth: 0.3},
			{Position: 7.5, Style: "dashed", LineWidth: 0.2},
			{Position: 5, Style: "plain", LineWidth: 0.3},
			{Position: 2.5, Style: "dashed", LineWidth: 0.2},
			{Position: 0, Style: "plain", LineWidth: 0.5},
			{Position: -2.5, Style: "dashed", LineWidth: 0.2},
			{Position: -4, Style: "plain", LineWidth: 0.3},
		},
		Page: PageView{
			TopMargin:    defaultMargin,
			BottomMargin: defaultMargin,
			LeftMargin:   defaultMargin,
			RightMargin:  defaultMargin,
			Columns:      1,
			InterColumn:  0,
		},
		Slant: AngleGuideView{
			Enabled:      true,
			Angle:        3,
			LineWidth:    0.2,
			Color:        "#000000",
			Distance:     2.5,
			DistanceType: "parallel",
		},
		NibAngle: AngleGuideView{
			Enabled:      true,
			Angle:        45,
			LineWidth:    0.2,
			Color:        "#FF0000",
			Distance:     10,
			DistanceType: "parallel",
		},
	}
}
