// path_builder.go

package curvepath

import "math"

// PathBuilder provides a fluent interface for constructing a closed Path.
// All methods return the builder for chaining.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder at the given start point.
func BuildPath(start Point) *PathBuilder {
	return &PathBuilder{path: NewPath(start)}
}

// LineTo draws a straight segment to (x, y).
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(Pt(x, y))
	return b
}

// CubicTo draws a cubic Bezier segment to (x, y).
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.path.CubicTo(Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
	return b
}

// Close appends a straight segment back to the path's start point, if
// not already there.
func (b *PathBuilder) Close() *PathBuilder {
	if !b.path.IsClosed(smallDistance) {
		b.path.LineTo(b.path.Start)
	}
	return b
}

// RectPath builds a closed rectangular path.
func RectPath(x, y, w, h float64) *Path {
	return BuildPath(Pt(x, y)).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close().
		Build()
}

// RoundRect builds a closed rectangular path with rounded corners of
// radius r (clamped to half the shorter side).
func RoundRect(x, y, w, h, r float64) *Path {
	r = math.Min(r, math.Min(w, h)/2)
	k := 0.5522847498 * r

	return BuildPath(Pt(x+r, y)).
		LineTo(x+w-r, y).
		CubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r).
		LineTo(x+w, y+h-r).
		CubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h).
		LineTo(x+r, y+h).
		CubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r).
		LineTo(x, y+r).
		CubicTo(x, y+r-k, x+r-k, y, x+r, y).
		Close().
		Build()
}

// Circle builds a closed circular path approximated by four cubic
// Bezier segments.
func Circle(cx, cy, r float64) *Path {
	return Ellipse(cx, cy, r, r)
}

// Ellipse builds a closed elliptical path approximated by four cubic
// Bezier segments.
func Ellipse(cx, cy, rx, ry float64) *Path {
	kx := 0.5522847498 * rx
	ky := 0.5522847498 * ry

	return BuildPath(Pt(cx+rx, cy)).
		CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry).
		CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy).
		CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry).
		CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy).
		Close().
		Build()
}

// Polygon builds a closed regular polygon path with the given number of
// sides, each edge a straight (degenerate cubic) segment.
func Polygon(cx, cy, radius float64, sides int) *Path {
	if sides < 3 {
		return NewPath(Pt(cx, cy))
	}

	angleStep := 2 * math.Pi / float64(sides)
	startAngle := -math.Pi / 2

	start := Pt(cx+radius*math.Cos(startAngle), cy+radius*math.Sin(startAngle))
	b := BuildPath(start)
	for i := 1; i < sides; i++ {
		angle := startAngle + float64(i)*angleStep
		b.LineTo(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
	}
	return b.Close().Build()
}

// Star builds a closed star path alternating between outerRadius and
// innerRadius vertices.
func Star(cx, cy, outerRadius, innerRadius float64, points int) *Path {
	if points < 3 {
		return NewPath(Pt(cx, cy))
	}

	angleStep := math.Pi / float64(points)
	startAngle := -math.Pi / 2

	start := Pt(cx+outerRadius*math.Cos(startAngle), cy+outerRadius*math.Sin(startAngle))
	b := BuildPath(start)
	for i := 1; i < points*2; i++ {
		angle := startAngle + float64(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		b.LineTo(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return b.Close().Build()
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}
