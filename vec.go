package curvepath

import "math"

// Vec2 is a displacement: a direction and a magnitude, as opposed to Point's
// position. Curve tangents, normals, and the ray-labeller's cast direction
// are all Vec2 rather than Point for that reason, even though the underlying
// two floats are identical in layout and most arithmetic below round-trips
// through Point to reuse its richer method set.
type Vec2 struct {
	X, Y float64
}

// V2 builds a Vec2 from components.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(w Vec2) Vec2 { return Vec2{X: v.X + w.X, Y: v.Y + w.Y} }
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{X: v.X - w.X, Y: v.Y - w.Y} }
func (v Vec2) Mul(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }
func (v Vec2) Div(s float64) Vec2 { return Vec2{X: v.X / s, Y: v.Y / s} }

// Neg is the same as Mul(-1), spelled out because it's common enough
// (reversing a tangent, flipping a winding) to read awkwardly otherwise.
func (v Vec2) Neg() Vec2 { return v.Mul(-1) }

// Dot is the usual inner product.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross is the scalar z-component of the 3D cross product with z=0: positive
// when w is counter-clockwise from v, negative when clockwise, zero when
// parallel or anti-parallel.
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// LengthSq avoids the sqrt in Length when only relative magnitude matters.
func (v Vec2) LengthSq() float64 { return v.Dot(v) }

func (v Vec2) Length() float64 { return math.Sqrt(v.LengthSq()) }

// Normalize returns the zero vector for a zero-length input rather than
// NaN-ing out the division.
func (v Vec2) Normalize() Vec2 {
	if l := v.Length(); l != 0 {
		return v.Div(l)
	}
	return Vec2{}
}

// Lerp interpolates linearly; t=0 gives v, t=1 gives w.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Rotate turns v by angle radians, counter-clockwise for positive angle.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perp rotates v a quarter turn counter-clockwise. Used in curve normal
// computation, where Tangent().Perp() avoids a trig call entirely.
func (v Vec2) Perp() Vec2 { return Vec2{X: -v.Y, Y: v.X} }

// Atan2 is the vector's angle from the positive X axis.
func (v Vec2) Atan2() float64 { return math.Atan2(v.Y, v.X) }

// Angle is the signed angle from v to w, in (-pi, pi].
func (v Vec2) Angle(w Vec2) float64 { return math.Atan2(v.Cross(w), v.Dot(w)) }

func (v Vec2) IsZero() bool { return v == Vec2{} }

// Approx reports whether v and w agree componentwise within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

// ToPoint reinterprets a displacement as a position; PointToVec2 is its
// inverse. Both are plain field copies, not geometric transforms.
func (v Vec2) ToPoint() Point { return Point{X: v.X, Y: v.Y} }

func PointToVec2(p Point) Vec2 { return Vec2{X: p.X, Y: p.Y} }
