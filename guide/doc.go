/*
Package guide computes the line geometry of a calligraphy practice sheet.

A page is split into columns. Every column is filled with as many
repetitions of a guide-line family (baseline, waistline, ascender and
descender lines) as fit, and each repetition may be overlaid with a family
of slant lines and a family of nib-angle lines. All coordinates are in
millimeters, with y growing downwards from the top of the page.

The package only produces strokes; turning them into paint is left to a
Renderer.
*/
package guide

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nibsheet.guide'.
func tracer() tracing.Trace {
	return tracing.Select("nibsheet.guide")
}
