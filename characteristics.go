package curvepath

import "math"

// CurveCategory classifies a cubic Bezier by the qualitative shape of its
// curvature: whether it has an inflection, a cusp, a self-intersection, or
// none of those.
type CurveCategory int

const (
	// CategoryPoint: all four control points coincide.
	CategoryPoint CurveCategory = iota
	// CategoryLinear: the control points are collinear.
	CategoryLinear
	// CategoryArch: no inflection points, cusps, or loops.
	CategoryArch
	// CategorySingleInflection: curvature changes sign exactly once.
	CategorySingleInflection
	// CategoryDoubleInflection: curvature changes sign twice.
	CategoryDoubleInflection
	// CategoryParabolic: degenerates to a parabola in canonical form.
	CategoryParabolic
	// CategoryCusp: the tangent direction is discontinuous at one point.
	CategoryCusp
	// CategoryLoop: the curve self-intersects.
	CategoryLoop
)

func (c CurveCategory) String() string {
	switch c {
	case CategoryPoint:
		return "Point"
	case CategoryLinear:
		return "Linear"
	case CategoryArch:
		return "Arch"
	case CategorySingleInflection:
		return "SingleInflection"
	case CategoryDoubleInflection:
		return "DoubleInflection"
	case CategoryParabolic:
		return "Parabolic"
	case CategoryCusp:
		return "Cusp"
	case CategoryLoop:
		return "Loop"
	default:
		return "Unknown"
	}
}

// CharacterizeCurve classifies the cubic with control points w1..w4. It
// works by finding the affine map that sends (w1,w2,w3) to the canonical
// triangle ((0,0),(0,1),(1,1)) and examining where that map sends w4.
func CharacterizeCurve(w1, w2, w3, w4 Point) CurveCategory {
	x, y, ok := canonicalCurveCoords(w1, w2, w3, w4)
	if !ok {
		return characterizeDegenerate(w1, w2, w3, w4)
	}
	return classifyCanonical(x, y)
}

// classifyCanonical runs the delta-based decision tree against a point
// already mapped into the canonical-triangle frame. Shared by
// CharacterizeCurve's ordinary case and characterizeDegenerate's retry
// on the curve reversed.
func classifyCanonical(x, y float64) CurveCategory {
	const eps = 1e-9
	delta := x*x - 2*x + 4*y - 3

	if math.Abs(delta) <= eps {
		if x <= 1 {
			return CategoryCusp
		}
		return CategoryArch
	}

	if delta < 0 {
		if x > 1 {
			if y > 1 {
				return CategorySingleInflection
			}
			return CategoryArch
		}
		if x*x-3*x+3*y >= 0 && x*x+y*y+x*y-3*x >= 0 {
			return CategoryLoop
		}
		return CategoryArch
	}

	// delta > 0
	if y >= 1-eps {
		return CategorySingleInflection
	}
	if x <= 0 {
		return CategoryDoubleInflection
	}
	if math.Abs(x-3) <= eps && math.Abs(y) <= eps {
		return CategoryParabolic
	}
	return CategoryArch
}

// canonicalCurveCoords finds the affine map taking (w1,w2,w3) to the
// canonical triangle and applies it to w4, returning (x,y,ok). ok is false
// when (w1,w2,w3) are too close to collinear for the map to exist (signed
// triangle area at or below 1e-7 in magnitude).
func canonicalCurveCoords(w1, w2, w3, w4 Point) (float64, float64, bool) {
	// Triangle (w1, w2, w3): signed area * 2 = cross(w2-w1, w3-w1).
	e1 := w2.Sub(w1)
	e2 := w3.Sub(w1)
	area2 := e1.Cross(e2)
	if math.Abs(area2)/2 <= 1e-7 {
		return 0, 0, false
	}

	// Solve for the affine map M, t such that M*w1+t=(0,0), M*w2+t=(0,1),
	// M*w3+t=(1,1). Equivalently express w4-w1 in the (e1,e2) basis: if
	// w4-w1 = a*e1 + b*e2, then the canonical image is (b, a+b), since
	// e1 maps to (0,1)-(0,0)=(0,1) and e2 maps to (1,1)-(0,0)=(1,1).
	d := w4.Sub(w1)
	// Solve [e1 e2] [a;b] = d using Cramer's rule (area2 = det).
	a := (d.X*e2.Y - d.Y*e2.X) / area2
	b := (e1.X*d.Y - e1.Y*d.X) / area2

	x := b
	y := a + b
	return x, y, true
}

// characterizeDegenerate handles the case where (w1,w2,w3) are collinear:
// first test for outright coincidence, then retry with the curve reversed
// (so that the degenerate point could be at the other end), finally
// falling back to a collinearity test on the remaining points.
func characterizeDegenerate(w1, w2, w3, w4 Point) CurveCategory {
	if w1.IsNearTo(w2, closeDistance) && w2.IsNearTo(w3, closeDistance) && w3.IsNearTo(w4, closeDistance) {
		return CategoryPoint
	}

	if x, y, ok := canonicalCurveCoords(w4, w3, w2, w1); ok {
		return classifyCanonical(x, y)
	}

	// Both (w1,w2,w3) and (w4,w3,w2) are degenerate triangles: test
	// collinearity of the remaining distinguishing points directly.
	line := lineThrough(w1, w4)
	if line.distanceTo(w2) <= closeDistance && line.distanceTo(w3) <= closeDistance {
		return CategoryLinear
	}
	return CategoryDoubleInflection
}

// lineCoeffs holds the normalised implicit line coefficients a*x+b*y+c=0
// with a^2+b^2=1, used to classify points as on/left/right of a line and
// to compute signed perpendicular distance.
type lineCoeffs struct {
	A, B, C float64
}

func lineThrough(p0, p1 Point) lineCoeffs {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return lineCoeffs{}
	}
	a := dy / length
	b := -dx / length
	c := -(a*p0.X + b*p0.Y)
	return lineCoeffs{A: a, B: b, C: c}
}

func (l lineCoeffs) signedDistance(p Point) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

func (l lineCoeffs) distanceTo(p Point) float64 {
	return math.Abs(l.signedDistance(p))
}
