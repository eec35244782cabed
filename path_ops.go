package curvepath

// Area returns the signed area enclosed by the path, computed with
// Green's theorem applied to each cubic segment plus an implicit
// closing edge from the final segment's end back to the start. Positive
// for anticlockwise paths, negative for clockwise; Direction reads its
// answer from the sign of this value.
func (p *Path) Area() float64 {
	var area float64
	for i := range p.Segments {
		c := p.Curve(i)
		area += cubicArea(c.P0, c.P1, c.P2, c.P3)
	}
	if len(p.Segments) > 0 {
		area += lineArea(p.Segments[len(p.Segments)-1].End, p.Start)
	}
	return area
}

// lineArea computes the shoelace contribution of a straight edge.
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// cubicArea computes the exact contribution of a cubic Bezier segment to
// the area enclosed by a path: the integral of (x*dy - y*dx)/2 over the
// segment, via Green's theorem.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}
