package curvepath

// healExteriorGaps repairs small gaps in the exterior boundary left by
// ray casting: an EdgeExterior edge whose end vertex has no outgoing
// EdgeExterior edge of its own would otherwise dead-end mid-walk,
// typically because a near-tangent crossing near that vertex was
// classified as glancing (and so ignored) on one side but not the
// other. For each such dead end, bridgeGap runs a breadth-first search
// bounded by healGapMaxDepth over the vertex's neighbourhood looking
// for a path back to an edge that does continue the exterior boundary,
// and promotes every edge along that path to EdgeExterior.
func (g *GraphPath) healExteriorGaps() {
	for v := range g.Points {
		for i := range g.Points[v].Forward {
			e := &g.Points[v].Forward[i]
			if e.Kind != EdgeExterior {
				continue
			}
			if g.findEdgeOfKind(e.EndIdx, EdgeExterior) >= 0 {
				continue
			}
			bridge := g.bridgeGap(e.EndIdx, healGapMaxDepth)
			for _, ref := range bridge {
				g.Points[ref.StartVertex].Forward[ref.EdgeIndex].Kind = EdgeExterior
			}
		}
	}
}

// resetEdgeKinds sets every edge back to EdgeUncategorised, so a graph
// that has already been collided can be relabelled and re-walked for a
// second Boolean pass (PathCut needs two distinct predicates over the
// same merged-and-collided graph) without rebuilding it.
func (g *GraphPath) resetEdgeKinds() {
	for v := range g.Points {
		for i := range g.Points[v].Forward {
			g.Points[v].Forward[i].Kind = EdgeUncategorised
		}
	}
}

// bridgeGap breadth-first searches from start, following any
// not-yet-visited edge regardless of its current kind, for the nearest
// vertex that already has an EdgeExterior edge leaving it. It returns
// the chain of edges from start to that vertex, or nil if none is found
// within maxDepth steps.
func (g *GraphPath) bridgeGap(start, maxDepth int) []GraphEdgeRef {
	type frame struct {
		vertex int
		path   []GraphEdgeRef
	}

	queue := []frame{{vertex: start}}
	visited := map[int]bool{start: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if len(cur.path) > 0 && g.findEdgeOfKind(cur.vertex, EdgeExterior) >= 0 {
			return cur.path
		}
		if len(cur.path) >= maxDepth {
			continue
		}

		for i, e := range g.Points[cur.vertex].Forward {
			if e.Kind == EdgeVisited || visited[e.EndIdx] {
				continue
			}
			visited[e.EndIdx] = true
			path := make([]GraphEdgeRef, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			path = append(path, GraphEdgeRef{StartVertex: cur.vertex, EdgeIndex: i})
			queue = append(queue, frame{vertex: e.EndIdx, path: path})
		}
	}
	return nil
}
