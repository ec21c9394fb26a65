package guide

import "math"

const degenerateEpsilon = 1e-9

// maxAngleLines bounds the lines of one family crossing a single row.
const maxAngleLines = 10000

// positive reports whether x is a finite number above zero.
func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// run is the horizontal distance an angled line covers while climbing
// the given height.
func (al AngleLine) run(height float64) float64 {
	rad := radians(al.Angle)
	if al.ToVertical {
		return height * math.Tan(rad)
	}
	return height / math.Tan(rad)
}

// spacing is the horizontal distance between two neighbouring lines.
func (al AngleLine) spacing() float64 {
	if al.DistanceType == Horizontal {
		return al.Distance
	}
	rad := radians(al.Angle)
	if al.ToVertical {
		return math.Abs(al.Distance / math.Cos(rad))
	}
	return math.Abs(al.Distance / math.Sin(rad))
}

func (al AngleLine) kind() LineKind {
	if al.ToVertical {
		return SlantKind
	}
	return NibAngleKind
}

// linesPerRow estimates how many lines of the family cross a row of the
// given width and height.
func (al AngleLine) linesPerRow(width, height float64) float64 {
	return (width+math.Abs(al.run(height)))/al.spacing() + 2
}

// validate reports settings for which the family cannot be tiled. field
// is the configuration key of the family, e.g. "slant-guide".
func (al AngleLine) validate(field string) error {
	if al.Angle <= 0 || al.Angle >= 180 || math.IsNaN(al.Angle) {
		return NewInvalidLayoutConfig(field+".angle", "%g is outside (0,180)", al.Angle)
	}
	if math.Abs(math.Cos(radians(al.Angle))) < degenerateEpsilon {
		if al.ToVertical {
			return NewInvalidLayoutConfig(field+".angle",
				"a slant of 90 degrees lies on the baseline")
		}
		return NewInvalidLayoutConfig(field+".angle",
			"a nib angle of 90 degrees gives vertical lines")
	}
	if !positive(al.LineWidth) {
		return NewInvalidLayoutConfig(field+".line-width", "must be positive and finite, is %g", al.LineWidth)
	}
	if !positive(al.Distance) {
		return NewInvalidLayoutConfig(field+".distance", "must be positive and finite, is %g", al.Distance)
	}
	if al.DistanceType != Parallel && al.DistanceType != Horizontal {
		return NewInvalidLayoutConfig(field+".distance-type", "unknown value %d", int(al.DistanceType))
	}
	return nil
}

// angleLineRange returns the first and last multiple of the spacing that
// can produce a line crossing a column of the given width.
func angleLineRange(width, slope, xOffset float64) (first, last int) {
	first = -int(math.Floor(math.Abs(slope / xOffset)))
	if slope < 0 {
		first--
	}
	last = int(math.Floor((width + math.Max(-slope, 0)) / xOffset))
	return first, last
}

// AngleLines tiles a column of width w, whose repetition has its baseline
// at (dx,dy), with the angled lines of al. Every line spans the full
// height of the family and is clipped to the column.
func AngleLines(dx, dy, w float64, ext Extent, al AngleLine) []Segment {
	slope := al.run(ext.Height)
	xOffset := al.spacing()
	if !positive(xOffset) || math.IsInf(slope, 0) || math.IsNaN(slope) {
		tracer().Errorf("angle lines: cannot tile with spacing %g and run %g", xOffset, slope)
		return nil
	}
	if n := al.linesPerRow(w, ext.Height); !(n <= maxAngleLines) {
		tracer().Errorf("angle lines: %g lines per row, at most %d", n, maxAngleLines)
		return nil
	}
	first, last := angleLineRange(w, slope, xOffset)
	segs := make([]Segment, 0, last-first+1)
	for i := first; i <= last; i++ {
		x := dx + float64(i)*xOffset
		seg, ok := ClipToStrip(x, dy-ext.MinHeight, x+slope, dy-ext.MaxHeight, dx, dx+w)
		if !ok || seg.Length() < degenerateEpsilon {
			continue
		}
		segs = append(segs, seg)
	}
	return segs
}

func angleStrokes(dx, dy, w float64, ext Extent, al AngleLine) []Stroke {
	segs := AngleLines(dx, dy, w, ext, al)
	strokes := make([]Stroke, len(segs))
	for i, seg := range segs {
		strokes[i] = Stroke{Segment: seg, Width: al.LineWidth, Color: al.Color, Kind: al.kind()}
	}
	return strokes
}
