package curvepath

import "math"

// PathSegment is one cubic Bezier segment of a Path: the two control
// points and the end point. The segment's start point is implicit, taken
// from the previous segment's end (or the Path's Start for segment 0).
type PathSegment struct {
	CP1 Point
	CP2 Point
	End Point
}

// Path is a single closed region boundary: a start point followed by zero
// or more cubic Bezier segments. The last segment's End is expected to
// coincide with Start (within tolerance) for the path to bound a region;
// operations that require closure document so explicitly.
type Path struct {
	Start    Point
	Segments []PathSegment
}

// NewPath creates a path beginning at start with no segments.
func NewPath(start Point) *Path {
	return &Path{Start: start}
}

// CubicTo appends a cubic Bezier segment and returns the path for chaining.
func (p *Path) CubicTo(cp1, cp2, end Point) *Path {
	p.Segments = append(p.Segments, PathSegment{CP1: cp1, CP2: cp2, End: end})
	return p
}

// LineTo appends a degenerate cubic segment (both control points on the
// chord) that traces a straight line to end.
func (p *Path) LineTo(end Point) *Path {
	start := p.pointBefore(len(p.Segments))
	cp1 := start.Lerp(end, 1.0/3.0)
	cp2 := start.Lerp(end, 2.0/3.0)
	return p.CubicTo(cp1, cp2, end)
}

// NumSegments returns the number of cubic segments in the path.
func (p *Path) NumSegments() int {
	return len(p.Segments)
}

// pointBefore returns the point the segment at index i starts from.
func (p *Path) pointBefore(i int) Point {
	if i == 0 {
		return p.Start
	}
	return p.Segments[i-1].End
}

// Curve returns segment i as a standalone CubicBez.
func (p *Path) Curve(i int) CubicBez {
	seg := p.Segments[i]
	return CubicBez{P0: p.pointBefore(i), P1: seg.CP1, P2: seg.CP2, P3: seg.End}
}

// Curves returns every segment of the path as CubicBez values, in order.
func (p *Path) Curves() []CubicBez {
	curves := make([]CubicBez, len(p.Segments))
	for i := range p.Segments {
		curves[i] = p.Curve(i)
	}
	return curves
}

// IsClosed reports whether the final segment's end point lies within
// tolerance of the path's start point.
func (p *Path) IsClosed(tolerance float64) bool {
	if len(p.Segments) == 0 {
		return true
	}
	return p.Segments[len(p.Segments)-1].End.IsNearTo(p.Start, tolerance)
}

// Reversed returns a new path tracing the same boundary in the opposite
// direction: segments are reversed in order, each with its control points
// swapped, and the whole path starts where the original ended.
func (p *Path) Reversed() *Path {
	if len(p.Segments) == 0 {
		return &Path{Start: p.Start}
	}
	out := &Path{Start: p.Segments[len(p.Segments)-1].End}
	for i := len(p.Segments) - 1; i >= 0; i-- {
		seg := p.Segments[i]
		out.Segments = append(out.Segments, PathSegment{
			CP1: seg.CP2,
			CP2: seg.CP1,
			End: p.pointBefore(i),
		})
	}
	return out
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{Start: p.Start}
	out.Segments = make([]PathSegment, len(p.Segments))
	copy(out.Segments, p.Segments)
	return out
}

// PathDirection is the winding sense of a closed path.
type PathDirection int

const (
	DirectionClockwise PathDirection = iota
	DirectionAnticlockwise
)

func (d PathDirection) String() string {
	if d == DirectionClockwise {
		return "Clockwise"
	}
	return "Anticlockwise"
}

// Direction returns the winding sense of the path, derived from the sign
// of the exact enclosed Area.
func (p *Path) Direction() PathDirection {
	if p.Area() < 0 {
		return DirectionClockwise
	}
	return DirectionAnticlockwise
}

// BoundingBox returns the tight axis-aligned bounding box of the whole
// path: the union of every segment's BoundingBox.
func (p *Path) BoundingBox() Rect {
	if len(p.Segments) == 0 {
		return Rect{Min: p.Start, Max: p.Start}
	}
	box := p.Curve(0).BoundingBox()
	for i := 1; i < len(p.Segments); i++ {
		box = box.Union(p.Curve(i).BoundingBox())
	}
	return box
}

// FastBoundingBox returns the looser, cheaper bounding box formed by the
// union of every segment's control-point box, without solving for
// extrema.
func (p *Path) FastBoundingBox() Rect {
	if len(p.Segments) == 0 {
		return Rect{Min: p.Start, Max: p.Start}
	}
	box := p.Curve(0).FastBoundingBox()
	for i := 1; i < len(p.Segments); i++ {
		box = box.Union(p.Curve(i).FastBoundingBox())
	}
	return box
}

// Length returns the path's arc length, approximated by recursive
// flattening of each segment to the given accuracy.
func (p *Path) Length(accuracy float64) float64 {
	total := 0.0
	for i := range p.Segments {
		total += cubicLength(p.Curve(i), accuracy, 0)
	}
	return total
}

func cubicLength(c CubicBez, accuracy float64, depth int) float64 {
	chord := c.P0.Distance(c.P3)
	polygon := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
	if depth >= 24 || polygon-chord <= accuracy {
		return (chord + polygon) / 2
	}
	left, right := c.Subdivide(0.5)
	return cubicLength(left, accuracy/2, depth+1) + cubicLength(right, accuracy/2, depth+1)
}

// ContainsPoint reports whether pt lies inside the region bounded by the
// path, using the even-odd ray-casting rule: a horizontal ray from pt
// toward +X infinity is cast and the number of segment crossings ahead
// of pt is counted.
func (p *Path) ContainsPoint(pt Point) bool {
	crossings := 0
	for i := range p.Segments {
		crossings += rayCrossingsForCurve(p.Curve(i), pt)
	}
	return crossings%2 == 1
}

// rayCrossingsForCurve counts how many times a rightward horizontal ray
// from origin crosses curve strictly ahead of origin.
func rayCrossingsForCurve(curve CubicBez, origin Point) int {
	ray := Line{P0: origin, P1: origin.Add(Pt(1, 0))}
	ts := curveIntersectsLine(curve, ray)
	count := 0
	for _, t := range ts {
		if t < 0 || t > 1 {
			continue
		}
		pt := curve.Eval(t)
		if pt.X > origin.X+smallDistance {
			count++
		}
	}
	return count
}

// ClosestPoint searches the path for the point nearest to target,
// returning the segment index, the local parameter t within that
// segment, the point itself, and the distance.
func (p *Path) ClosestPoint(target Point, accuracy float64) (segIndex int, t float64, point Point, distance float64) {
	distance = math.Inf(1)
	for i := range p.Segments {
		curve := p.Curve(i)
		ct, cp, cd := closestPointOnCurve(curve, target, accuracy)
		if cd < distance {
			distance = cd
			segIndex = i
			t = ct
			point = cp
		}
	}
	return
}

// closestPointOnCurve performs a coarse uniform scan followed by a
// ternary-search refinement around the best sample, sufficient for the
// unimodal-per-interval distance profiles typical of path boundaries.
func closestPointOnCurve(curve CubicBez, target Point, accuracy float64) (float64, Point, float64) {
	const samples = 32
	bestT := 0.0
	bestD := math.Inf(1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / samples
		d := curve.Eval(t).Distance(target)
		if d < bestD {
			bestD = d
			bestT = t
		}
	}

	lo := math.Max(0, bestT-1.0/samples)
	hi := math.Min(1, bestT+1.0/samples)
	for hi-lo > accuracy {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if curve.Eval(m1).Distance(target) < curve.Eval(m2).Distance(target) {
			hi = m2
		} else {
			lo = m1
		}
	}
	t := (lo + hi) / 2
	pt := curve.Eval(t)
	return t, pt, pt.Distance(target)
}
