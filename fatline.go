package curvepath

import "math"

// FatLine is a thick line (a band of constant perpendicular width) that
// tightly bounds a cubic Bezier curve, used by the Bezier-clipping
// algorithm to discard parameter ranges of a second curve that cannot
// possibly intersect the first.
type FatLine struct {
	// Line is the baseline through the curve's start and end points.
	Line lineCoeffs
	// DMin and DMax bound the signed perpendicular distance from Line
	// that every point of the curve lies within.
	DMin, DMax float64
}

// fatLineFromCurve builds the fat line bounding c: the baseline through
// c.P0 and c.P3, widened to contain both interior control points. For a
// cubic, the interior control points can lie at most 3/4 of the
// baseline-to-control distance from the true curve, so the bound is
// tight without needing to solve for extrema.
func fatLineFromCurve(c CubicBez) FatLine {
	if c.P0.IsNearTo(c.P3, smallDistance) {
		// Degenerate baseline: fall back to the chord through P0 and P1.
		if !c.P0.IsNearTo(c.P1, smallDistance) {
			line := lineThrough(c.P0, c.P1)
			return widenFatLine(line, c)
		}
		return FatLine{Line: lineCoeffs{}, DMin: 0, DMax: 0}
	}
	line := lineThrough(c.P0, c.P3)
	return widenFatLine(line, c)
}

func widenFatLine(line lineCoeffs, c CubicBez) FatLine {
	d1 := line.signedDistance(c.P1)
	d2 := line.signedDistance(c.P2)

	// The true curve's maximum deviation from the baseline is bounded by
	// a fraction of the control polygon's deviation, 3/4 for a cubic
	// (Sederberg & Nishita).
	min := math.Min(0, math.Min(d1, d2)*(3.0/4.0))
	max := math.Max(0, math.Max(d1, d2)*(3.0/4.0))
	return FatLine{Line: line, DMin: min, DMax: max}
}

// distanceCurve projects every control point of c onto the fat line's
// perpendicular axis, returning the four signed distances in curve
// order. Used to build the convex-hull distance function that clipT
// intersects against [DMin, DMax].
func (f FatLine) distanceCurve(c CubicBez) [4]float64 {
	return [4]float64{
		f.Line.signedDistance(c.P0),
		f.Line.signedDistance(c.P1),
		f.Line.signedDistance(c.P2),
		f.Line.signedDistance(c.P3),
	}
}

// clipT narrows curve's local parameter range [0, 1] to the sub-range
// where the convex hull of the four (t_i, distance_i) control points,
// with t_i = 0, 1/3, 2/3, 1, lies within [f.DMin, f.DMax]; every segment
// between two of the four points is tested, which covers the hull's
// edges. Returns ok=false when the hull never enters
// the band, meaning curve cannot intersect the fat line's source curve
// at all.
func (f FatLine) clipT(curve CubicBez) (lo, hi float64, ok bool) {
	d := f.distanceCurve(curve)
	ts := [4]float64{0, 1.0 / 3.0, 2.0 / 3.0, 1}

	lo, hi = 1, 0
	found := false

	clipSegment := func(t0, d0, t1, d1 float64) {
		if d0 == d1 {
			if d0 >= f.DMin && d0 <= f.DMax {
				lo = math.Min(lo, math.Min(t0, t1))
				hi = math.Max(hi, math.Max(t0, t1))
				found = true
			}
			return
		}
		// Parametrize the segment and solve for where it crosses DMin/DMax.
		tAt := func(dTarget float64) (float64, bool) {
			u := (dTarget - d0) / (d1 - d0)
			if u < 0 || u > 1 {
				return 0, false
			}
			return t0 + u*(t1-t0), true
		}

		lowD, highD := f.DMin, f.DMax
		inLow := d0 >= lowD && d0 <= highD
		inHigh := d1 >= lowD && d1 <= highD

		if inLow {
			lo = math.Min(lo, t0)
			hi = math.Max(hi, t0)
			found = true
		}
		if inHigh {
			lo = math.Min(lo, t1)
			hi = math.Max(hi, t1)
			found = true
		}
		if tMin, ok := tAt(lowD); ok {
			lo = math.Min(lo, tMin)
			hi = math.Max(hi, tMin)
			found = true
		}
		if tMax, ok := tAt(highD); ok {
			lo = math.Min(lo, tMax)
			hi = math.Max(hi, tMax)
			found = true
		}
	}

	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			clipSegment(ts[i], d[i], ts[j], d[j])
		}
	}

	if !found {
		return 0, 0, false
	}
	return lo, hi, true
}
