package curvepath

import "math"

// curveIntersectsLine returns the curve parameter values at which curve
// crosses the infinite line through line.P0 and line.P1. It works by
// rotating and translating the curve into the line's own coordinate
// frame (so the line becomes the X axis) and solving for the roots of
// the curve's Y component, which is a cubic in t.
func curveIntersectsLine(curve CubicBez, line Line) []float64 {
	dx := line.P1.X - line.P0.X
	dy := line.P1.Y - line.P0.Y
	length := math.Hypot(dx, dy)
	if length < smallDistance {
		return nil
	}
	cos := dx / length
	sin := dy / length

	toLocalY := func(p Point) float64 {
		rx := p.X - line.P0.X
		ry := p.Y - line.P0.Y
		return ry*cos - rx*sin
	}

	y0 := toLocalY(curve.P0)
	y1 := toLocalY(curve.P1)
	y2 := toLocalY(curve.P2)
	y3 := toLocalY(curve.P3)

	// Bernstein-to-power-basis coefficients for the cubic in Y.
	a := -y0 + 3*y1 - 3*y2 + y3
	b := 3*y0 - 6*y1 + 3*y2
	c := -3*y0 + 3*y1
	d := y0

	var roots []float64
	if math.Abs(a) > clipDegeneracyThreshold {
		roots = SolveCubic(a, b, c, d)
	} else if math.Abs(b) > clipDegeneracyThreshold {
		roots = SolveQuadratic(b, c, d)
	} else if math.Abs(c) > clipDegeneracyThreshold {
		roots = []float64{-d / c}
	} else {
		return nil
	}

	var result []float64
	for _, t := range roots {
		if t >= -1e-9 && t <= 1+1e-9 {
			result = append(result, math.Max(0, math.Min(1, t)))
		}
	}
	return result
}

// curveIntersectsRay returns the curve parameter values at which curve
// crosses the ray starting at ray.P0 and passing through ray.P1,
// restricted to the forward half of the ray (parameter along the ray
// must be non-negative).
func curveIntersectsRay(curve CubicBez, ray Line) []float64 {
	ts := curveIntersectsLine(curve, ray)
	dx := ray.P1.X - ray.P0.X
	dy := ray.P1.Y - ray.P0.Y

	var result []float64
	for _, t := range ts {
		p := curve.Eval(t)
		along := (p.X-ray.P0.X)*dx + (p.Y-ray.P0.Y)*dy
		if along >= -smallDistance {
			result = append(result, t)
		}
	}
	return result
}
