package curvepath

import "testing"

func TestCurveIntersectsCurveClip_NoOverlap(t *testing.T) {
	c1 := CubicBez{P0: Pt(0, 0), P1: Pt(1, 0), P2: Pt(2, 0), P3: Pt(3, 0)}
	c2 := CubicBez{P0: Pt(0, 100), P1: Pt(1, 100), P2: Pt(2, 100), P3: Pt(3, 100)}

	hits := curveIntersectsCurveClip(c1, c2, defaultAccuracy)
	if len(hits) != 0 {
		t.Errorf("expected no intersections between far-apart curves, got %v", hits)
	}
}

func TestCurveIntersectsCurveClip_SingleCrossing(t *testing.T) {
	// Two straight "cubics" crossing once, like an X, at (1.5, 1.5).
	c1 := CubicBez{P0: Pt(0, 0), P1: Pt(1, 1), P2: Pt(2, 2), P3: Pt(3, 3)}
	c2 := CubicBez{P0: Pt(0, 3), P1: Pt(1, 2), P2: Pt(2, 1), P3: Pt(3, 0)}

	hits := curveIntersectsCurveClip(c1, c2, defaultAccuracy)
	if len(hits) != 1 {
		t.Fatalf("expected exactly one crossing, got %d: %v", len(hits), hits)
	}
	want := Pt(1.5, 1.5)
	if !hits[0].Point.IsNearTo(want, defaultAccuracy*4) {
		t.Errorf("crossing point = %v, want near %v", hits[0].Point, want)
	}
}

func TestCurveIntersectsCurveClip_TouchingEndpoints(t *testing.T) {
	// Two curves sharing an endpoint: (3,0) is an intersection, whether
	// or not it gets reported depends only on it appearing once.
	c1 := CubicBez{P0: Pt(0, 0), P1: Pt(1, 0), P2: Pt(2, 0), P3: Pt(3, 0)}
	c2 := CubicBez{P0: Pt(3, 0), P1: Pt(3, 1), P2: Pt(3, 2), P3: Pt(3, 3)}

	hits := curveIntersectsCurveClip(c1, c2, defaultAccuracy)
	for _, h := range hits {
		if !h.Point.IsNearTo(Pt(3, 0), defaultAccuracy*4) {
			t.Errorf("unexpected intersection away from the shared endpoint: %v", h.Point)
		}
	}
}

func TestBoxesOverlap(t *testing.T) {
	a := Rect{Min: Pt(0, 0), Max: Pt(1, 1)}
	b := Rect{Min: Pt(0.5, 0.5), Max: Pt(2, 2)}
	if !boxesOverlap(a, b, 0) {
		t.Error("expected overlapping boxes to report overlap")
	}
	c := Rect{Min: Pt(5, 5), Max: Pt(6, 6)}
	if boxesOverlap(a, c, 0) {
		t.Error("expected disjoint boxes to report no overlap")
	}
	if !boxesOverlap(a, c, 10) {
		t.Error("expected slack to bridge a small gap between boxes")
	}
}

func TestDedupeIntersections(t *testing.T) {
	in := []CurveIntersection{
		{T1: 0.5, T2: 0.5, Point: Pt(1, 1)},
		{T1: 0.5001, T2: 0.4999, Point: Pt(1.00001, 1.00001)},
		{T1: 0.9, T2: 0.1, Point: Pt(5, 5)},
	}
	out := dedupeIntersections(in, 0.001)
	if len(out) != 2 {
		t.Errorf("expected near-duplicate points to merge into 2 entries, got %d: %v", len(out), out)
	}
}
