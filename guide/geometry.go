package guide

import "math"

// LineSetExtent returns the highest and lowest position of a family and
// their difference. An empty family yields infinities; validate first.
func LineSetExtent(lines Family) Extent {
	ext := Extent{MaxHeight: math.Inf(-1), MinHeight: math.Inf(1)}
	for _, line := range lines {
		ext.MaxHeight = math.Max(line.Position, ext.MaxHeight)
		ext.MinHeight = math.Min(line.Position, ext.MinHeight)
	}
	ext.Height = ext.MaxHeight - ext.MinHeight
	return ext
}

// ClipToStrip clips the segment (x0,y0)-(x1,y1) to the vertical strip
// minX <= x <= maxX. The returned segment always runs left to right.
// ok is false when nothing of the segment lies inside the strip.
func ClipToStrip(x0, y0, x1, y1, minX, maxX float64) (seg Segment, ok bool) {
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	if x1 < minX || x0 > maxX {
		return Segment{}, false
	}

	// vertical, and inside the strip
	width := x1 - x0
	if width == 0 {
		return Segment{x0, y0, x1, y1}, true
	}

	height := y1 - y0
	seg = Segment{x0, y0, x1, y1}
	if x0 < minX {
		seg.X0 = minX
		seg.Y0 = y0 + height*((minX-x0)/width)
	}
	if x1 > maxX {
		seg.X1 = maxX
		seg.Y1 = y1 - height*((x1-maxX)/width)
	}
	return seg, true
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
