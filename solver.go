package curvepath

import "math"

// Root finders for the quadratic and cubic equations that curve extrema,
// curve/line intersection, and self-intersection detection all reduce to.
//
// The cubic solver follows the closed-form method described at
// https://momentsingraphics.de/CubicRoots.html (itself derived from Jim
// Blinn's "How to Solve a Cubic Equation"), chosen over an iterative solver
// because every root is wanted, not just the nearest one to a guess.

// pairFromOneRoot completes a quadratic's root pair given one root and the
// scaled constant term, via root1*root2 = sc0. Shared by the normal and
// discriminant-overflow paths below, which differ only in how root1 was
// obtained.
func pairFromOneRoot(root1, sc0 float64) []float64 {
	root2 := sc0 / root1
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// SolveQuadratic finds the real roots of ax^2 + bx + c = 0, ascending.
// Degenerates to a linear (or, failing that, trivial) solve when a is zero
// or too small relative to b and c for the scaled form to hold.
func SolveQuadratic(a, b, c float64) []float64 {
	sc1, sc0 := b/a, c/a
	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c)
	}

	// Numerically stable form: https://math.stackexchange.com/questions/866331
	arg := sc1*sc1 - 4.0*sc0
	if !isFinite(arg) {
		// arg overflowed; sc1*x dominates the constant term, so treat the
		// equation as x^2 + sc1*x ~= 0 to get a first root.
		return pairFromOneRoot(-sc1, sc0)
	}
	switch {
	case arg < 0.0:
		return nil // complex conjugate pair, no real roots
	case arg == 0.0:
		return []float64{-0.5 * sc1}
	default:
		root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
		return pairFromOneRoot(root1, sc0)
	}
}

func solveLinear(b, c float64) []float64 {
	if root := -c / b; isFinite(root) {
		return []float64{root}
	}
	if b == 0.0 && c == 0.0 {
		return []float64{0.0}
	}
	return nil
}

// SolveCubic finds the real roots of ax^3 + bx^2 + cx + d = 0, in no
// particular order.
func SolveCubic(a, b, c, d float64) []float64 {
	const third = 1.0 / 3.0
	c2 := b * (third / a)
	c1 := c * (third / a)
	c0 := d / a
	if !isFinite(c2) || !isFinite(c1) || !isFinite(c0) {
		return SolveQuadratic(b, c, d) // a is zero or negligible next to b,c,d
	}

	// d0, d1, d2 are the resolvent cubic's "Delta"; disc its discriminant.
	d0 := c1 - c2*c2
	d1 := c0 - c1*c2
	d2 := c2*c0 - c1*c1
	disc := 4.0*d0*d2 - d1*d1
	depressed := d1 - 2.0*c2*d0

	switch {
	case disc < 0.0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * depressed
		t := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return []float64{t - c2}
	case disc == 0.0:
		t := math.Copysign(math.Sqrt(-d0), depressed)
		return []float64{t - c2, -2.0*t - c2}
	default:
		theta := math.Atan2(math.Sqrt(disc), -depressed) * third
		sinT, cosT := math.Sincos(theta)
		scale := 2.0 * math.Sqrt(-d0)
		sqrt3sin := sinT * math.Sqrt(3.0)
		return []float64{
			scale*cosT - c2,
			scale*(0.5*(-cosT+sqrt3sin)) - c2,
			scale*(0.5*(-cosT-sqrt3sin)) - c2,
		}
	}
}

// SolveQuadraticInUnitInterval is SolveQuadratic filtered to roots in [0, 1],
// the domain of a curve parameter.
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	return clampToUnitInterval(SolveQuadratic(a, b, c))
}

// SolveCubicInUnitInterval is SolveCubic filtered to roots in [0, 1].
func SolveCubicInUnitInterval(a, b, c, d float64) []float64 {
	return clampToUnitInterval(SolveCubic(a, b, c, d))
}

// clampToUnitInterval keeps roots within an epsilon of [0,1], snapping the
// near-miss ones onto the exact boundary so downstream curve evaluation
// never sees a parameter value a shade outside its domain.
func clampToUnitInterval(roots []float64) []float64 {
	const eps = 1e-12
	var kept []float64
	for _, r := range roots {
		switch {
		case r < -eps || r > 1.0+eps:
			continue
		case r < 0.0:
			r = 0.0
		case r > 1.0:
			r = 1.0
		}
		kept = append(kept, r)
	}
	return kept
}

// isFinite reports whether x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
