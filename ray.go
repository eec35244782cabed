package curvepath

import (
	"math"
	"sort"
)

// GraphRayCollision is one place a test ray crosses a GraphPath edge, as
// found by rayCollisions. Exposed so a caller debugging a Boolean
// operation's edge labelling can inspect exactly what the ray caster
// saw, rather than only the final edge kinds.
type GraphRayCollision struct {
	Edge  GraphEdgeRef
	T     float64
	Point Point
	Label int
	// Intersection is true when this collision sits at the start of Edge
	// (t≈0) and Edge's start vertex has more than one outgoing edge: the
	// ray passed through a branch point introduced by Collide, rather
	// than through an ordinary interior point of a single contour.
	Intersection bool
}

// rayDirection is the fixed direction every containment-test ray is cast
// along. The slight tilt away from the X axis makes it very unlikely
// for the ray to run exactly parallel to an axis-aligned edge, which
// would otherwise turn an ordinary crossing into a degenerate glancing
// hit far more often than chance would suggest.
var rayDirection = Vec2{X: 1, Y: 0.0001953125}

// sign returns -1, 0, or 1 according to whether d is negative, within
// closeDistance of zero, or positive. Used to classify which side of the
// ray's line a control point sits on.
func sign(d float64) float64 {
	switch {
	case d > closeDistance:
		return 1
	case d < -closeDistance:
		return -1
	default:
		return 0
	}
}

// lineParam returns the (unnormalised but direction-consistent) distance
// of p along ray, projected onto ray's own direction vector. Used only
// to order collisions along a single ray, so the missing normalisation
// doesn't matter: every point is projected onto the same vector.
func lineParam(ray Line, p Point) float64 {
	dir := ray.P1.Sub(ray.P0)
	return p.Sub(ray.P0).Dot(dir)
}

// curveIsCollinearWith reports whether every control point of curve lies
// within closeDistance of the line described by coeffs.
func curveIsCollinearWith(curve CubicBez, coeffs lineCoeffs) bool {
	return coeffs.distanceTo(curve.P0) <= closeDistance &&
		coeffs.distanceTo(curve.P1) <= closeDistance &&
		coeffs.distanceTo(curve.P2) <= closeDistance &&
		coeffs.distanceTo(curve.P3) <= closeDistance
}

// rayIntersectKind classifies curve against the ray's line, before any
// root solving: collinear (every control point lies on the line, so it
// must be handled as part of a collinear section rather than by solving
// for crossings directly) or wrongSide (every control point lies
// strictly on the same side, so the curve cannot possibly cross the
// line and solving for roots would be wasted work).
func rayIntersectKind(curve CubicBez, coeffs lineCoeffs) (collinear, wrongSide bool) {
	if curveIsCollinearWith(curve, coeffs) {
		return true, false
	}
	sum := sign(coeffs.signedDistance(curve.P0)) +
		sign(coeffs.signedDistance(curve.P1)) +
		sign(coeffs.signedDistance(curve.P2)) +
		sign(coeffs.signedDistance(curve.P3))
	return false, math.Abs(sum) >= 3.99
}

// followingRef returns the edge that continues ref's source contour past
// its end vertex, as recorded by ref's edge's Following index.
func (g *GraphPath) followingRef(ref GraphEdgeRef) (GraphEdgeRef, bool) {
	e := g.Edge(ref)
	if e.Following < 0 || e.Following >= len(g.Points[e.EndIdx].Forward) {
		return GraphEdgeRef{}, false
	}
	return GraphEdgeRef{StartVertex: e.EndIdx, EdgeIndex: e.Following}, true
}

// precedingRefs builds the inverse of followingRef across every edge of
// g: for each edge that some other edge names as its Following
// continuation, records that other edge.
func (g *GraphPath) precedingRefs(refs []GraphEdgeRef) map[GraphEdgeRef]GraphEdgeRef {
	preceding := make(map[GraphEdgeRef]GraphEdgeRef, len(refs))
	for _, ref := range refs {
		if next, ok := g.followingRef(ref); ok {
			preceding[next] = ref
		}
	}
	return preceding
}

// crossingEdgesForSection decides whether a maximal run of edges
// collinear with the ray's line (section, listed in contour order) is
// actually crossed by the ray or merely touched and left on the same
// side. It compares the side of the line the path approaches the
// section from (the preceding edge's last control point) against the
// side it leaves on (the following edge's first control point): if
// they differ, the path truly passes through the section and the
// section contributes exactly one collision, associated with the
// leaving edge at t=0; if they agree, the path glances the line and
// doubles back, contributing nothing.
func crossingEdgesForSection(g *GraphPath, coeffs lineCoeffs, preceding map[GraphEdgeRef]GraphEdgeRef, section []GraphEdgeRef) []GraphRayCollision {
	if len(section) == 0 {
		return nil
	}
	pre, ok := preceding[section[0]]
	if !ok {
		return nil
	}
	post, ok := g.followingRef(section[len(section)-1])
	if !ok {
		return nil
	}

	inCurve := g.Curve(pre)
	outCurve := g.Curve(post)
	inSide := sign(coeffs.signedDistance(inCurve.P2))
	outSide := sign(coeffs.signedDistance(outCurve.P1))
	if inSide == 0 || outSide == 0 || inSide == outSide {
		return nil
	}

	return []GraphRayCollision{{
		Edge:  post,
		T:     0,
		Point: g.Points[post.StartVertex].Position,
		Label: g.Edge(post).Label,
	}}
}

// crossingAndCollinearCollisions gathers every raw collision between g
// and ray before deduplication: one collision per curve-parameter root
// for edges that can cross the ray, plus one per collinear section that
// the path actually threads through, minus the raw hits right at a
// collinear section's own boundary (already accounted for by the
// section's single collision).
func crossingAndCollinearCollisions(g *GraphPath, ray Line) []GraphRayCollision {
	coeffs := lineThrough(ray.P0, ray.P1)
	refs := g.AllEdgeRefs()
	preceding := g.precedingRefs(refs)

	collinear := make(map[GraphEdgeRef]bool, len(refs))
	wrongSide := make(map[GraphEdgeRef]bool, len(refs))
	for _, ref := range refs {
		c, w := rayIntersectKind(g.Curve(ref), coeffs)
		collinear[ref] = c
		wrongSide[ref] = w
	}

	var hits []GraphRayCollision
	for _, ref := range refs {
		if collinear[ref] || wrongSide[ref] {
			continue
		}
		curve := g.Curve(ref)
		for _, t := range curveIntersectsRay(curve, ray) {
			// A root right at a boundary shared with a collinear
			// section is handled by that section instead.
			if t >= 1-smallDistance {
				if next, ok := g.followingRef(ref); ok && collinear[next] {
					continue
				}
			}
			if t <= smallDistance {
				if prev, ok := preceding[ref]; ok && collinear[prev] {
					continue
				}
			}
			hits = append(hits, GraphRayCollision{
				Edge: ref, T: t, Point: curve.Eval(t), Label: g.Edge(ref).Label,
			})
		}
	}

	visited := make(map[GraphEdgeRef]bool, len(refs))
	for _, ref := range refs {
		if !collinear[ref] || visited[ref] {
			continue
		}
		if prev, ok := preceding[ref]; ok && collinear[prev] {
			continue // not the start of its section
		}
		var section []GraphEdgeRef
		cur := ref
		for {
			section = append(section, cur)
			visited[cur] = true
			next, ok := g.followingRef(cur)
			if !ok || !collinear[next] || visited[next] {
				break
			}
			cur = next
		}
		hits = append(hits, crossingEdgesForSection(g, coeffs, preceding, section)...)
	}

	return hits
}

// edgesAreGlancing reports whether the path glances the ray's line at
// the shared vertex between inRef (ending there) and outRef (starting
// there): true when the path's last control point before the vertex and
// first control point after it sit on the same side of the line (the
// path touches the line and returns), false when they sit on opposite
// sides (the path genuinely crosses through the vertex).
func edgesAreGlancing(g *GraphPath, coeffs lineCoeffs, inRef, outRef GraphEdgeRef) bool {
	inCurve := g.Curve(inRef)
	outCurve := g.Curve(outRef)
	sIn := sign(coeffs.signedDistance(inCurve.P2))
	sOut := sign(coeffs.signedDistance(outCurve.P1))
	if sIn == 0 || sOut == 0 {
		return true
	}
	return sIn == sOut
}

// filterNearVertexCollisions collapses the pair of raw hits a ray cast
// produces whenever it passes exactly through a shared vertex: one hit
// at t≈1 on the incoming edge and one at t≈0 on the edge that continues
// the same contour past that vertex. A glancing pair (the path touches
// the ray and bounces back) cancels to zero hits; a crossing pair
// collapses to exactly one, kept on the outgoing edge at t=0.
func filterNearVertexCollisions(g *GraphPath, coeffs lineCoeffs, hits []GraphRayCollision) []GraphRayCollision {
	startIndex := make(map[GraphEdgeRef]int, len(hits))
	for i, h := range hits {
		if h.T <= smallDistance {
			startIndex[h.Edge] = i
		}
	}

	drop := make(map[int]bool, len(hits))
	for i, h := range hits {
		if h.T < 1-smallDistance {
			continue
		}
		next, ok := g.followingRef(h.Edge)
		if !ok {
			continue
		}
		j, ok := startIndex[next]
		if !ok || drop[i] || drop[j] {
			continue
		}
		drop[i] = true
		if edgesAreGlancing(g, coeffs, h.Edge, next) {
			drop[j] = true
		}
	}

	kept := hits[:0]
	for i, h := range hits {
		if !drop[i] {
			kept = append(kept, h)
		}
	}
	return kept
}

// removeTangentCollisions drops collisions where the curve runs (within
// 1e-8) parallel to the ray at the point of contact: a true tangency
// grazes the line rather than crossing it, and counting it would flip
// the parity on one side of a perfectly smooth curve.
func removeTangentCollisions(g *GraphPath, ray Line, hits []GraphRayCollision) []GraphRayCollision {
	dir := ray.P1.Sub(ray.P0).Normalize()
	kept := hits[:0]
	for _, h := range hits {
		tangent := g.Curve(h.Edge).Tangent(h.T)
		tn := Point{X: tangent.X, Y: tangent.Y}.Normalize()
		if math.Abs(tn.Cross(dir)) < 1e-8 {
			continue
		}
		kept = append(kept, h)
	}
	return kept
}

// flagIntersections annotates each collision with whether it lands on a
// branch point introduced by Collide (more than one edge leaving the
// start vertex of a t≈0 hit) rather than an ordinary point along a
// single contour.
func flagIntersections(g *GraphPath, hits []GraphRayCollision) {
	for i, h := range hits {
		hits[i].Intersection = h.T <= smallDistance && len(g.Points[h.Edge.StartVertex].Forward) > 1
	}
}

// sortRayCollisions orders hits by their position along the ray, with a
// deterministic tie-break (start vertex, edge index, curve parameter)
// for collisions that land at the same point -- for example, several
// overlapping edges from a remove-overlapped-points input.
func sortRayCollisions(ray Line, hits []GraphRayCollision) {
	sort.SliceStable(hits, func(i, j int) bool {
		pi, pj := lineParam(ray, hits[i].Point), lineParam(ray, hits[j].Point)
		if math.Abs(pi-pj) > smallDistance {
			return pi < pj
		}
		if hits[i].Edge.StartVertex != hits[j].Edge.StartVertex {
			return hits[i].Edge.StartVertex < hits[j].Edge.StartVertex
		}
		if hits[i].Edge.EdgeIndex != hits[j].Edge.EdgeIndex {
			return hits[i].Edge.EdgeIndex < hits[j].Edge.EdgeIndex
		}
		return hits[i].T < hits[j].T
	})
}

// rayCollisions casts a ray from origin along rayDirection and reports
// every genuine crossing of g, resolved via the ray/graph enumeration
// sub-routine: edges collinear with the ray are grouped into sections
// and tested as a whole rather than per-edge, and collisions that
// cluster at a shared vertex are collapsed to zero (glancing) or one
// (crossing) instead of being double-counted.
func rayCollisions(g *GraphPath, origin Point) []GraphRayCollision {
	ray := Line{P0: origin, P1: origin.Add(Point{X: rayDirection.X, Y: rayDirection.Y})}
	coeffs := lineThrough(ray.P0, ray.P1)

	hits := crossingAndCollinearCollisions(g, ray)
	hits = filterNearVertexCollisions(g, coeffs, hits)
	hits = removeTangentCollisions(g, ray, hits)
	flagIntersections(g, hits)
	sortRayCollisions(ray, hits)
	return hits
}

// RayCollisions casts a ray from origin along rayDirection and reports
// every edge it meets, exposed so a caller can inspect ray casting
// directly -- for example, to verify a ray passing exactly through a
// shared vertex is resolved as zero collisions (glancing) or one
// (crossing) rather than two independent hits.
func (g *GraphPath) RayCollisions(origin Point) []GraphRayCollision {
	return rayCollisions(g, origin)
}

// containmentByLabel casts a ray from origin and reports, for each of
// numLabels source labels, whether origin lies inside that label's
// region, using the even-odd (parity) rule: an odd number of genuine
// crossings means origin is inside. Every hit rayCollisions returns is
// already a single genuine crossing -- vertex-clustering and tangency
// have been resolved away -- so no further discounting is needed here.
func containmentByLabel(g *GraphPath, origin Point, numLabels int) []bool {
	counts := make([]int, numLabels)
	for _, hit := range rayCollisions(g, origin) {
		if hit.Label < 0 || hit.Label >= numLabels {
			continue
		}
		counts[hit.Label]++
	}
	inside := make([]bool, numLabels)
	for i, c := range counts {
		inside[i] = c%2 == 1
	}
	return inside
}

// testPointsForEdge returns two points a small distance to either side
// of the edge's midpoint, along its normal: one on the edge's left
// (conventionally interior-facing for a anticlockwise-wound path) and
// one on its right.
func testPointsForEdge(curve CubicBez) (left, right Point) {
	mid := curve.Eval(0.5)
	n := curve.Normal(0.5)
	offset := Point{X: n.X * closeDistance, Y: n.Y * closeDistance}
	return mid.Add(offset), mid.Sub(offset)
}

// SetEdgeKindsByRayCasting classifies every edge of g as EdgeExterior,
// EdgeInterior, or leaves it EdgeUncategorised (meaning it plays no part
// in the result and will not be walked), by testing whether a point just
// to either side of the edge lies inside the region the predicate
// describes. predicate receives one bool per source label (inside[i]
// true when the test point is inside label i's original shape) and
// reports whether that point belongs to the desired combined region.
//
// If the two sides disagree, the edge sits on the boundary of the
// result: EdgeExterior. If both sides agree and are inside the result,
// the edge is buried within it: EdgeInterior (read by FullIntersect,
// which wants the overlapping interior as well as its border). If both sides agree and are outside, the edge contributes
// nothing and is left EdgeUncategorised.
func (g *GraphPath) SetEdgeKindsByRayCasting(numLabels int, predicate func(inside []bool) bool) {
	for v := range g.Points {
		for i := range g.Points[v].Forward {
			ref := GraphEdgeRef{StartVertex: v, EdgeIndex: i}
			curve := g.Curve(ref)
			left, right := testPointsForEdge(curve)

			leftIn := predicate(containmentByLabel(g, left, numLabels))
			rightIn := predicate(containmentByLabel(g, right, numLabels))

			edge := &g.Points[v].Forward[i]
			switch {
			case leftIn != rightIn:
				edge.Kind = EdgeExterior
			case leftIn && rightIn:
				edge.Kind = EdgeInterior
			default:
				edge.Kind = EdgeUncategorised
			}
		}
	}
}
