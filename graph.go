package curvepath

import "math"

// GraphEdgeKind classifies an edge of a GraphPath according to its
// relationship to the regions bounded by the source paths, as
// determined by ray casting. Boolean operators walk only edges with a
// particular kind (or kinds) to build their result.
type GraphEdgeKind int

const (
	// EdgeUncategorised is the initial state of every edge before ray
	// casting has run.
	EdgeUncategorised GraphEdgeKind = iota
	// EdgeExterior borders the outside of the combined region.
	EdgeExterior
	// EdgeInterior lies strictly inside the combined region (for
	// example, the overlapping part of two source shapes for Intersect).
	EdgeInterior
	// EdgeVisited has already been walked into an output path and
	// should not be walked again.
	EdgeVisited
)

func (k GraphEdgeKind) String() string {
	switch k {
	case EdgeExterior:
		return "Exterior"
	case EdgeInterior:
		return "Interior"
	case EdgeVisited:
		return "Visited"
	default:
		return "Uncategorised"
	}
}

// GraphPathEdge is one forward edge leaving a GraphPath vertex: a cubic
// Bezier segment (the vertex's position supplies P0) ending at another
// vertex.
type GraphPathEdge struct {
	CP1, CP2 Point
	// EndIdx is the index, in the owning GraphPath's Points, of this
	// edge's end vertex.
	EndIdx int
	// Label identifies which source path this edge came from (0 for the
	// first operand, 1 for the second, and so on for chain-add/combine).
	Label int
	// Kind is this edge's classification, set by ray casting.
	Kind GraphEdgeKind
	// Following, when >= 0, is the index within this edge's end vertex's
	// Forward slice of the edge that continues the same source contour
	// past that vertex. Used by the ray-cast labeller to walk a path's
	// own sequence of edges independently of whatever other edges a
	// collision may have introduced at a shared vertex. -1 when the
	// continuation is not (or not yet) known.
	Following int

	bbox *Rect
}

// GraphPathPoint is one vertex of a GraphPath.
type GraphPathPoint struct {
	Position Point
	// Forward holds the edges leaving this vertex.
	Forward []GraphPathEdge
	// ConnectedFrom holds the indices of vertices with an edge arriving
	// at this one. Maintained incrementally as edges are added and split;
	// may contain stale or duplicate entries after Collide rewrites an
	// edge's endpoints, so treat it as a hint rather than ground truth.
	ConnectedFrom []int
}

// GraphEdgeRef identifies a single edge in a GraphPath: the vertex it
// starts from, its index within that vertex's Forward slice, and
// whether it should be walked in reverse (end to start). Reverse refs
// let the ray-casting labeller and path walker treat every edge as
// traversable in either direction without duplicating edge storage.
type GraphEdgeRef struct {
	StartVertex int
	EdgeIndex   int
	Reverse     bool
}

// GraphPath is a planar directed multigraph of cubic Bezier edges,
// built from one or more closed Path values. Boolean operations work by
// merging two graphs, resolving every crossing between their edges into
// shared vertices (Collide), classifying each edge as interior or
// exterior to the desired result (via ray casting), and finally walking
// the exterior (or interior) edges into output Paths.
type GraphPath struct {
	Points []GraphPathPoint
}

// NewGraphPath builds a graph from a single closed path, tagging every
// edge with label. Consecutive duplicate points are merged into one
// vertex: a segment whose end and control points all lie within
// closeDistance of the previous end point is skipped.
func NewGraphPath(path *Path, label int) *GraphPath {
	g := &GraphPath{}
	if path.NumSegments() == 0 {
		return g
	}

	g.Points = append(g.Points, GraphPathPoint{Position: path.Start})
	prev := path.Start
	for _, seg := range path.Segments {
		if seg.End.IsNearTo(prev, closeDistance) && seg.CP1.IsNearTo(prev, closeDistance) && seg.CP2.IsNearTo(prev, closeDistance) {
			continue
		}
		prev = seg.End
		startIdx := len(g.Points) - 1
		endIdx := g.findOrAddVertex(seg.End)
		// A freshly built single-label path is a simple cycle: every
		// vertex has exactly one outgoing edge, so that edge (index 0)
		// is always the correct continuation of this contour.
		g.Points[startIdx].Forward = append(g.Points[startIdx].Forward, GraphPathEdge{
			CP1: seg.CP1, CP2: seg.CP2, EndIdx: endIdx, Label: label, Following: 0,
		})
		g.Points[endIdx].ConnectedFrom = append(g.Points[endIdx].ConnectedFrom, startIdx)
	}
	return g
}

// findOrAddVertex returns 0 when p lies within smallDistance of vertex 0,
// and otherwise appends a new vertex for p and returns its index; other
// existing vertices are not searched. Construction always appends a fresh vertex except when p coincides
// with the path's start point, closing the loop back onto vertex 0.
func (g *GraphPath) findOrAddVertex(p Point) int {
	if len(g.Points) > 0 && g.Points[0].Position.IsNearTo(p, smallDistance) {
		return 0
	}
	g.Points = append(g.Points, GraphPathPoint{Position: p})
	return len(g.Points) - 1
}

// Curve returns the edge at ref as a standalone CubicBez, oriented
// according to ref.Reverse.
func (g *GraphPath) Curve(ref GraphEdgeRef) CubicBez {
	start := g.Points[ref.StartVertex]
	e := start.Forward[ref.EdgeIndex]
	c := CubicBez{P0: start.Position, P1: e.CP1, P2: e.CP2, P3: g.Points[e.EndIdx].Position}
	if ref.Reverse {
		return c.Reversed()
	}
	return c
}

// Edge returns a pointer to the underlying GraphPathEdge a ref names,
// ignoring its Reverse flag (which only affects Curve's orientation).
func (g *GraphPath) Edge(ref GraphEdgeRef) *GraphPathEdge {
	return &g.Points[ref.StartVertex].Forward[ref.EdgeIndex]
}

// AllEdgeRefs returns a forward-direction GraphEdgeRef for every edge in
// the graph, in vertex-then-forward-index order.
func (g *GraphPath) AllEdgeRefs() []GraphEdgeRef {
	var refs []GraphEdgeRef
	for v := range g.Points {
		for i := range g.Points[v].Forward {
			refs = append(refs, GraphEdgeRef{StartVertex: v, EdgeIndex: i})
		}
	}
	return refs
}

// EdgeBoundingBox returns (and lazily caches) the fast bounding box of
// the edge at ref.
func (g *GraphPath) EdgeBoundingBox(ref GraphEdgeRef) Rect {
	e := g.Edge(ref)
	if e.bbox != nil {
		return *e.bbox
	}
	box := g.Curve(GraphEdgeRef{StartVertex: ref.StartVertex, EdgeIndex: ref.EdgeIndex}).FastBoundingBox()
	e.bbox = &box
	return box
}

// Merge returns the disjoint union of g and other: every vertex and
// edge of other is copied in with its vertex indices offset past g's,
// leaving both original graphs untouched and their labels intact.
func (g *GraphPath) Merge(other *GraphPath) *GraphPath {
	offset := len(g.Points)
	out := &GraphPath{Points: make([]GraphPathPoint, 0, len(g.Points)+len(other.Points))}
	out.Points = append(out.Points, g.Points...)

	for _, pt := range other.Points {
		forward := make([]GraphPathEdge, len(pt.Forward))
		for i, e := range pt.Forward {
			e.EndIdx += offset
			forward[i] = e
		}
		connected := make([]int, len(pt.ConnectedFrom))
		for i, c := range pt.ConnectedFrom {
			connected[i] = c + offset
		}
		out.Points = append(out.Points, GraphPathPoint{
			Position: pt.Position, Forward: forward, ConnectedFrom: connected,
		})
	}
	return out
}

// Round snaps every vertex position onto a grid of the given cell size
// and coalesces vertices that land on the same grid cell, redirecting
// every edge that pointed at a merged vertex. Used after collision
// detection to clean up near-duplicate vertices introduced by
// floating-point noise in intersection parameters.
func (g *GraphPath) Round(accuracy float64) {
	buckets := make(map[[2]int64]int)
	remap := make([]int, len(g.Points))

	key := func(p Point) [2]int64 {
		r := p.Round(accuracy)
		return [2]int64{int64(math.Round(r.X / accuracy)), int64(math.Round(r.Y / accuracy))}
	}

	newPoints := make([]GraphPathPoint, 0, len(g.Points))
	for i, pt := range g.Points {
		k := key(pt.Position)
		if existing, ok := buckets[k]; ok {
			remap[i] = existing
			continue
		}
		buckets[k] = len(newPoints)
		remap[i] = len(newPoints)
		newPoints = append(newPoints, GraphPathPoint{Position: pt.Position.Round(accuracy)})
	}

	// edgeSlot records, for each surviving (old vertex, old forward
	// index) pair, the slot it ends up at in its destination vertex's
	// new Forward slice. Round concatenates several vertices' Forward
	// slices together when they coalesce, which reshuffles indices, so
	// Following references (an edge named by its position in a Forward
	// slice) must be corrected against this map once every edge has a
	// final slot.
	edgeSlot := make(map[[2]int]int)
	origin := make([][][2]int, len(newPoints))

	for i, pt := range g.Points {
		dst := remap[i]
		for j, e := range pt.Forward {
			newEndIdx := remap[e.EndIdx]
			if newEndIdx == dst && e.CP1.IsNearTo(newPoints[dst].Position, smallDistance) &&
				e.CP2.IsNearTo(newPoints[dst].Position, smallDistance) {
				continue // drop zero-length self edge created by rounding
			}
			e.EndIdx = newEndIdx
			e.bbox = nil
			edgeSlot[[2]int{i, j}] = len(newPoints[dst].Forward)
			origin[dst] = append(origin[dst], [2]int{i, j})
			newPoints[dst].Forward = append(newPoints[dst].Forward, e)
		}
	}

	for dst := range newPoints {
		for slot, src := range origin[dst] {
			i, j := src[0], src[1]
			oldFollowing := g.Points[i].Forward[j].Following
			if oldFollowing < 0 {
				newPoints[dst].Forward[slot].Following = -1
				continue
			}
			oldEndIdx := g.Points[i].Forward[j].EndIdx
			if mapped, ok := edgeSlot[[2]int{oldEndIdx, oldFollowing}]; ok {
				newPoints[dst].Forward[slot].Following = mapped
			} else {
				// The edge it used to continue into was itself dropped
				// (a degenerate self edge); its continuation is unknown.
				newPoints[dst].Forward[slot].Following = -1
			}
		}
	}

	for i := range newPoints {
		for _, e := range newPoints[i].Forward {
			newPoints[e.EndIdx].ConnectedFrom = append(newPoints[e.EndIdx].ConnectedFrom, i)
		}
	}

	g.Points = newPoints
}

// exteriorPaths walks every edge classified as EdgeExterior into closed
// output Paths, marking each edge EdgeVisited as it is consumed so no
// edge contributes to more than one output path.
func (g *GraphPath) exteriorPaths() []*Path {
	return g.pathsForKind(EdgeExterior)
}

// interiorPaths walks every edge classified as EdgeInterior into closed
// output Paths (used by PathFullIntersect).
func (g *GraphPath) interiorPaths() []*Path {
	return g.pathsForKind(EdgeInterior)
}

func (g *GraphPath) pathsForKind(kind GraphEdgeKind) []*Path {
	var paths []*Path
	for v := range g.Points {
		for i := range g.Points[v].Forward {
			if g.Points[v].Forward[i].Kind != kind {
				continue
			}
			if p := g.walkFrom(v, i, kind); p != nil {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

// walkFrom follows edges of the given kind starting at (vertex, edgeIndex)
// until it returns to the starting vertex, marking each edge visited.
func (g *GraphPath) walkFrom(vertex, edgeIndex int, kind GraphEdgeKind) *Path {
	start := vertex
	e := &g.Points[vertex].Forward[edgeIndex]
	if e.Kind != kind {
		return nil
	}

	path := NewPath(g.Points[vertex].Position)
	cur := vertex
	idx := edgeIndex
	for {
		edge := &g.Points[cur].Forward[idx]
		if edge.Kind == EdgeVisited {
			break
		}
		path.CubicTo(edge.CP1, edge.CP2, g.Points[edge.EndIdx].Position)
		edge.Kind = EdgeVisited
		next := edge.EndIdx
		if next == start {
			break
		}
		nextIdx := g.findEdgeOfKind(next, kind)
		if nextIdx < 0 {
			break
		}
		cur, idx = next, nextIdx
	}
	if path.NumSegments() == 0 {
		return nil
	}
	return path
}

// findEdgeOfKind returns the forward index of the first edge of kind at
// vertex, or -1 if none remain.
func (g *GraphPath) findEdgeOfKind(vertex int, kind GraphEdgeKind) int {
	for i, e := range g.Points[vertex].Forward {
		if e.Kind == kind {
			return i
		}
	}
	return -1
}
