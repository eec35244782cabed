package curvepath

import "math"

// CurveIntersection is one intersection found between two curves: the
// parameter on each curve and the shared point (the average of both
// curves' evaluation at their respective parameter, which coincide
// within accuracy).
type CurveIntersection struct {
	T1, T2 float64
	Point  Point
}

// curveIntersectsCurveClip finds every intersection between curve1 and
// curve2 to the given accuracy using Bezier clipping (Sederberg &
// Nishita): each curve's fat line is used to discard the parameter
// range of the other curve that cannot intersect it, alternating which
// curve supplies the fat line, and subdividing when a clip step fails
// to shrink the range enough to guarantee convergence.
func curveIntersectsCurveClip(curve1, curve2 CubicBez, accuracy float64) []CurveIntersection {
	if !boxesOverlap(curve1.FastBoundingBox(), curve2.FastBoundingBox(), accuracy) {
		return nil
	}

	var results []CurveIntersection
	clipRecursive(NewCurveSection(curve1), NewCurveSection(curve2), accuracy, 0, &results)
	return dedupeIntersections(results, accuracy)
}

func boxesOverlap(a, b Rect, slack float64) bool {
	return a.Min.X-slack <= b.Max.X && b.Min.X-slack <= a.Max.X &&
		a.Min.Y-slack <= b.Max.Y && b.Min.Y-slack <= a.Max.Y
}

const clipMaxDepth = 64

func clipRecursive(s1, s2 CurveSection, accuracy float64, depth int, out *[]CurveIntersection) {
	if depth > clipMaxDepth {
		return
	}

	c1 := s1.AsCubic()
	c2 := s2.AsCubic()

	if !boxesOverlap(c1.FastBoundingBox(), c2.FastBoundingBox(), accuracy) {
		return
	}

	width1 := s1.TMax - s1.TMin
	width2 := s2.TMax - s2.TMin

	if c1.IsDegenerate(smallDistance) || c2.IsDegenerate(smallDistance) {
		// One or both ranges have collapsed to (nearly) a point: accept if
		// the points coincide.
		p1, p2 := c1.Eval(0.5), c2.Eval(0.5)
		if p1.IsNearTo(p2, accuracy) {
			*out = append(*out, CurveIntersection{
				T1:    (s1.TMin + s1.TMax) / 2,
				T2:    (s2.TMin + s2.TMax) / 2,
				Point: p1.Lerp(p2, 0.5),
			})
		}
		return
	}

	chord1 := c1.P0.Distance(c1.P3)
	chord2 := c2.P0.Distance(c2.P3)
	if chord1 <= accuracy && chord2 <= accuracy {
		p1, p2 := c1.Eval(0.5), c2.Eval(0.5)
		*out = append(*out, CurveIntersection{
			T1:    (s1.TMin + s1.TMax) / 2,
			T2:    (s2.TMin + s2.TMax) / 2,
			Point: p1.Lerp(p2, 0.5),
		})
		return
	}

	// Clip s2 against the fat line of c1.
	fl1 := fatLineFromCurve(c1)
	lo, hi, ok := fl1.clipT(c2)
	if !ok {
		return
	}
	newS2 := s2.Restrict(lo, hi)
	shrink2 := (newS2.TMax - newS2.TMin) / math.Max(width2, 1e-12)

	// Clip s1 against the fat line of (the newly clipped) c2.
	fl2 := fatLineFromCurve(newS2.AsCubic())
	lo1, hi1, ok := fl2.clipT(c1)
	if !ok {
		return
	}
	newS1 := s1.Restrict(lo1, hi1)
	shrink1 := (newS1.TMax - newS1.TMin) / math.Max(width1, 1e-12)

	if shrink1 > fatLineShrinkThreshold || shrink2 > fatLineShrinkThreshold {
		// Clipping made insufficient progress: subdivide the wider of the
		// two ranges and recurse on both halves against the other.
		if (newS1.TMax - newS1.TMin) >= (newS2.TMax - newS2.TMin) {
			mid := (newS1.TMin + newS1.TMax) / 2
			left := CurveSection{Curve: newS1.Curve, TMin: newS1.TMin, TMax: mid}
			right := CurveSection{Curve: newS1.Curve, TMin: mid, TMax: newS1.TMax}
			clipRecursive(left, newS2, accuracy, depth+1, out)
			clipRecursive(right, newS2, accuracy, depth+1, out)
			return
		}
		mid := (newS2.TMin + newS2.TMax) / 2
		left := CurveSection{Curve: newS2.Curve, TMin: newS2.TMin, TMax: mid}
		right := CurveSection{Curve: newS2.Curve, TMin: mid, TMax: newS2.TMax}
		clipRecursive(newS1, left, accuracy, depth+1, out)
		clipRecursive(newS1, right, accuracy, depth+1, out)
		return
	}

	clipRecursive(newS1, newS2, accuracy, depth+1, out)
}

// dedupeIntersections merges intersections whose points lie within
// √2 times accuracy of one another, which Bezier clipping can otherwise report
// more than once near a tangency.
func dedupeIntersections(in []CurveIntersection, accuracy float64) []CurveIntersection {
	var out []CurveIntersection
	for _, c := range in {
		merged := false
		for i := range out {
			if out[i].Point.IsNearTo(c.Point, math.Sqrt2*accuracy) {
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, c)
		}
	}
	return out
}
