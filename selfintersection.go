package curvepath

import "math"

// selfIntersectionMaxDepth bounds the bisection search in
// findIntersectionPointInLoop so a pathological curve cannot recurse
// forever.
const selfIntersectionMaxDepth = 32

// findSelfIntersectionPoint locates the self-intersection of a cubic
// classified as CategoryLoop: the two parameter values t1 < t2 at which
// the curve crosses itself. Returns ok=false if curve is not in fact a
// loop (callers are expected to check CharacterizeCurve first, but this
// guards against misuse).
func findSelfIntersectionPoint(curve CubicBez, accuracy float64) (t1, t2 float64, ok bool) {
	category := CharacterizeCurve(curve.P0, curve.P1, curve.P2, curve.P3)
	if category != CategoryLoop {
		return 0, 0, false
	}
	return findIntersectionPointInLoop(curve, 0, 1, accuracy, 0)
}

// findIntersectionPointInLoop recursively bisects [lo, hi] looking for
// the pair of sub-curves that straddle the self-intersection: split at
// the midpoint, and if exactly one half is itself classified as a loop,
// recurse into it (the intersection must be inside that half); if
// neither half loops, the intersection straddles the midpoint itself
// and can be read off directly; if both halves loop (possible for
// pathological control polygons containing more structure than a single
// crossing), there is no principled way to choose a side, so resolution
// falls back to returning the midpoint itself rather than panicking --
// logged at Debug so callers can notice if this path is ever taken.
func findIntersectionPointInLoop(curve CubicBez, lo, hi, accuracy float64, depth int) (float64, float64, bool) {
	if hi-lo <= accuracy || depth >= selfIntersectionMaxDepth {
		return lo, hi, true
	}

	mid := (lo + hi) / 2
	left, right := curve.Subdivide(mid)

	leftIsLoop := CharacterizeCurve(left.P0, left.P1, left.P2, left.P3) == CategoryLoop
	rightIsLoop := CharacterizeCurve(right.P0, right.P1, right.P2, right.P3) == CategoryLoop

	switch {
	case leftIsLoop && !rightIsLoop:
		return findIntersectionPointInLoop(curve, lo, mid, accuracy, depth+1)
	case rightIsLoop && !leftIsLoop:
		return findIntersectionPointInLoop(curve, mid, hi, accuracy, depth+1)
	case !leftIsLoop && !rightIsLoop:
		// The split point separates the crossing's two branches: locate
		// it precisely by testing whether the curve near mid intersects
		// itself on either side.
		return bisectAroundMidpoint(curve, lo, mid, hi, accuracy, depth)
	default:
		Logger().Debug("self-intersection bisection: both halves classified as loops, returning midpoint",
			"depth", depth, "lo", lo, "hi", hi)
		return mid, mid, true
	}
}

// bisectAroundMidpoint narrows in on a self-intersection known to
// straddle mid by shrinking a symmetric window around it until the
// curve points at lo and hi (now close to mid) coincide within
// accuracy, or until depth is exhausted.
func bisectAroundMidpoint(curve CubicBez, lo, mid, hi, accuracy float64, depth int) (float64, float64, bool) {
	window := math.Min(mid-lo, hi-mid)
	t1, t2 := mid-window, mid+window

	for i := 0; i < selfIntersectionMaxDepth-depth; i++ {
		p1 := curve.Eval(t1)
		p2 := curve.Eval(t2)
		if p1.IsNearTo(p2, accuracy) {
			return t1, t2, true
		}
		window /= 2
		if window <= accuracy {
			return t1, t2, true
		}
		t1 = mid - window
		t2 = mid + window
	}
	return t1, t2, true
}
