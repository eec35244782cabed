package curvepath

// edgeSplit records one place an edge needs to be broken in two: the
// local parameter along the edge's original (unsplit) curve, and the
// shared point both crossing edges agree on.
type edgeSplit struct {
	t   float64
	pos Point
}

// Collide finds every crossing between edges of different labels (and,
// when selfCollide is true, between edges of the same label too,
// needed to resolve a single path's own self-intersections before
// remove-interior-points or remove-overlapped-points can run on it),
// splits each crossed edge into two at the crossing point, and merges
// the newly introduced vertices that land in the same place. The graph
// is mutated in place.
func (g *GraphPath) Collide(accuracy float64, selfCollide bool) {
	refs := g.AllEdgeRefs()
	boxes := make([]Rect, len(refs))
	for i, r := range refs {
		boxes[i] = g.EdgeBoundingBox(r)
	}

	splits := make(map[int][]edgeSplit, len(refs))

	for _, pair := range candidatePairs(boxes) {
		i, j := pair[0], pair[1]
		refI, refJ := refs[i], refs[j]
		edgeI := g.Edge(refI)
		edgeJ := g.Edge(refJ)
		if !selfCollide && edgeI.Label == edgeJ.Label {
			continue
		}
		if refI.StartVertex == refJ.StartVertex && refI.EdgeIndex == refJ.EdgeIndex {
			continue
		}

		curveI := g.Curve(refI)
		curveJ := g.Curve(refJ)
		hits := curveIntersectsCurveClip(curveI, curveJ, accuracy)
		for _, h := range hits {
			// Skip crossings that land on an existing endpoint: these
			// are shared vertices already, not new splits.
			if h.T1 > smallDistance && h.T1 < 1-smallDistance {
				splits[i] = append(splits[i], edgeSplit{t: h.T1, pos: h.Point})
			}
			if h.T2 > smallDistance && h.T2 < 1-smallDistance {
				splits[j] = append(splits[j], edgeSplit{t: h.T2, pos: h.Point})
			}
		}
	}

	if len(splits) == 0 {
		return
	}

	for i, pts := range splits {
		sortEdgeSplits(pts)
		g.splitEdge(refs[i], pts)
	}

	g.Round(accuracy)
	g.removeAllVeryShortEdges(accuracy)
}

// sortEdgeSplits sorts splits ascending by t using insertion sort (the
// lists involved are always a handful of crossings per edge, never
// worth pulling in sort.Slice for).
func sortEdgeSplits(pts []edgeSplit) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && pts[j-1].t > pts[j].t; j-- {
			pts[j-1], pts[j] = pts[j], pts[j-1]
		}
	}
}

// splitEdge replaces the edge at ref with a chain of sub-edges broken
// at each parameter in pts (already sorted ascending), introducing one
// new vertex per split point.
func (g *GraphPath) splitEdge(ref GraphEdgeRef, pts []edgeSplit) {
	original := *g.Edge(ref)
	curve := g.Curve(GraphEdgeRef{StartVertex: ref.StartVertex, EdgeIndex: ref.EdgeIndex})

	startVertex := ref.StartVertex
	remaining := curve
	lastT := 0.0
	segIdx := ref.EdgeIndex

	for _, sp := range pts {
		localT := (sp.t - lastT) / (1 - lastT)
		head, tail := remaining.Subdivide(localT)

		newVertexIdx := len(g.Points)
		g.Points = append(g.Points, GraphPathPoint{Position: sp.pos})

		// The head piece's continuation is always the tail piece about
		// to be pushed onto newVertexIdx's (currently empty) Forward
		// slice, which lands at index 0.
		g.Points[startVertex].Forward[segIdx] = GraphPathEdge{
			CP1: head.P1, CP2: head.P2, EndIdx: newVertexIdx,
			Label: original.Label, Kind: original.Kind, Following: 0,
		}
		g.Points[newVertexIdx].ConnectedFrom = append(g.Points[newVertexIdx].ConnectedFrom, startVertex)

		startVertex = newVertexIdx
		segIdx = len(g.Points[newVertexIdx].Forward)
		// The tail piece inherits the original edge's continuation; if
		// another split point follows, this entry is itself overwritten
		// as a head (with Following reset to 0) on the next iteration,
		// so only the very last tail piece keeps this value.
		g.Points[newVertexIdx].Forward = append(g.Points[newVertexIdx].Forward, GraphPathEdge{
			CP1: tail.P1, CP2: tail.P2, EndIdx: original.EndIdx,
			Label: original.Label, Kind: original.Kind, Following: original.Following,
		})

		remaining = tail
		lastT = sp.t
	}
	g.Points[original.EndIdx].ConnectedFrom = append(g.Points[original.EndIdx].ConnectedFrom, startVertex)
}

// removeAllVeryShortEdges drops zero-length self edges (both endpoints
// coincide and the control points collapse onto them too) that
// splitting or rounding can introduce, so they cannot confuse ray
// casting with a near-zero-length segment.
func (g *GraphPath) removeAllVeryShortEdges(accuracy float64) {
	threshold := closeDistance
	if accuracy > threshold {
		threshold = accuracy / 4
	}
	for v := range g.Points {
		kept := g.Points[v].Forward[:0]
		for _, e := range g.Points[v].Forward {
			c := CubicBez{P0: g.Points[v].Position, P1: e.CP1, P2: e.CP2, P3: g.Points[e.EndIdx].Position}
			if v == e.EndIdx && c.P0.Distance(c.P3) < threshold && c.IsDegenerate(threshold) {
				continue
			}
			kept = append(kept, e)
		}
		g.Points[v].Forward = kept
	}
}
