package curvepath

import "math"

// SolveCurveForT recovers the parameter t at which curve passes through
// point, for a point already believed to lie on (or very near) the
// curve — for example, a point read back off a rendered outline, or an
// intersection point produced by a different pass of the pipeline.
//
// It tries both axes via SolveCurveForTAlongAxis and keeps whichever
// produces a result closest to point, since a curve that is briefly
// vertical or horizontal makes one axis degenerate while the other
// stays well-conditioned.
func SolveCurveForT(curve CubicBez, point Point, accuracy float64) (float64, bool) {
	tx, okX := SolveCurveForTAlongAxis(curve, point, false, accuracy)
	ty, okY := SolveCurveForTAlongAxis(curve, point, true, accuracy)

	switch {
	case okX && okY:
		if curve.Eval(tx).Distance(point) <= curve.Eval(ty).Distance(point) {
			return tx, true
		}
		return ty, true
	case okX:
		return tx, true
	case okY:
		return ty, true
	default:
		return 0, false
	}
}

// SolveCurveForTAlongAxis recovers t by solving only for the component
// of point along one axis (Y when useY is true, X otherwise), then
// verifies that the curve at that t lies within closeEnough of point --
// rejecting roots that satisfy one axis by coincidence but are not
// actually on the curve. The accuracy argument is not used.
func SolveCurveForTAlongAxis(curve CubicBez, point Point, useY bool, accuracy float64) (float64, bool) {
	component := func(p Point) float64 {
		if useY {
			return p.Y
		}
		return p.X
	}

	v0 := component(curve.P0) - component(point)
	v1 := component(curve.P1) - component(point)
	v2 := component(curve.P2) - component(point)
	v3 := component(curve.P3) - component(point)

	a := -v0 + 3*v1 - 3*v2 + v3
	b := 3*v0 - 6*v1 + 3*v2
	c := -3*v0 + 3*v1
	d := v0

	var roots []float64
	switch {
	case math.Abs(a) > clipDegeneracyThreshold:
		roots = SolveCubic(a, b, c, d)
	case math.Abs(b) > clipDegeneracyThreshold:
		roots = SolveQuadratic(b, c, d)
	case math.Abs(c) > clipDegeneracyThreshold:
		roots = []float64{-d / c}
	default:
		return 0, false
	}

	best, bestDist := 0.0, math.Inf(1)
	found := false
	for _, t := range roots {
		if t < -1e-9 || t > 1+1e-9 {
			continue
		}
		clamped := math.Max(0, math.Min(1, t))
		dist := curve.Eval(clamped).Distance(point)
		if dist <= closeEnough && dist < bestDist {
			best, bestDist, found = clamped, dist, true
		}
	}
	if !found {
		return 0, false
	}
	return best, true
}
