package guide

import "math"

// dash pattern lengths, as multiples of the line width
const (
	dashLength = 4.0
	dashSpace  = 8.0
	dotLength  = 1.0
	dotSpace   = 3.0
)

// HorizontalLines draws one line per guide line of the family across a
// column of width w, with the baseline at (dx,dy). With skipFirst set the
// topmost line(s) of the family are left out, as they coincide with the
// bottom line of the repetition above.
func HorizontalLines(dx, dy, w float64, fam Family, ext Extent, skipFirst bool) []Stroke {
	var strokes []Stroke
	for _, line := range fam {
		if skipFirst && line.Position == ext.MaxHeight {
			continue
		}
		y := dy - line.Position
		var segs []Segment
		switch line.Style {
		case Dashed:
			segs = dashedLine(dx, y, w, dashLength*line.LineWidth, dashSpace*line.LineWidth)
		case Dotted:
			segs = dashedLine(dx, y, w, dotLength*line.LineWidth, dotSpace*line.LineWidth)
		default:
			segs = []Segment{{dx, y, dx + w, y}}
		}
		for _, seg := range segs {
			strokes = append(strokes, Stroke{
				Segment: seg,
				Width:   line.LineWidth,
				Color:   line.Color,
				Kind:    GuideKind,
			})
		}
	}
	return strokes
}

// segments is the number of strokes the line needs across width.
func (l GuideLine) segments(width float64) float64 {
	switch l.Style {
	case Dashed:
		return math.Ceil(width / ((dashLength + dashSpace) * l.LineWidth))
	case Dotted:
		return math.Ceil(width / ((dotLength + dotSpace) * l.LineWidth))
	}
	return 1
}

// dashedLine tiles [dx, dx+length] with dashes, starting with a dash at dx.
// The last dash is cut at the end of the line.
func dashedLine(dx, y, length, dash, space float64) []Segment {
	if dash <= 0 {
		return []Segment{{dx, y, dx + length, y}}
	}
	var segs []Segment
	end := dx + length
	for i := 0; ; i++ {
		x := dx + float64(i)*(dash+space)
		if x >= end {
			break
		}
		segs = append(segs, Segment{x, y, math.Min(x+dash, end), y})
	}
	return segs
}
