package curvepath

import "testing"

func TestSweepOverlaps_Basic(t *testing.T) {
	intervals := []axisInterval{
		{lo: 0, hi: 2, index: 0},
		{lo: 1, hi: 3, index: 1},
		{lo: 5, hi: 6, index: 2},
	}
	pairs := sweepOverlaps(intervals)
	if len(pairs) != 1 {
		t.Fatalf("expected exactly one overlapping pair, got %v", pairs)
	}
	p := pairs[0]
	if !(p == [2]int{0, 1} || p == [2]int{1, 0}) {
		t.Errorf("expected pair (0,1), got %v", p)
	}
}

func TestSweepOverlaps_NoOverlaps(t *testing.T) {
	intervals := []axisInterval{
		{lo: 0, hi: 1, index: 0},
		{lo: 2, hi: 3, index: 1},
		{lo: 4, hi: 5, index: 2},
	}
	if pairs := sweepOverlaps(intervals); len(pairs) != 0 {
		t.Errorf("expected no overlapping pairs, got %v", pairs)
	}
}

func TestCandidatePairs_DedupedAndSorted(t *testing.T) {
	boxes := []Rect{
		{Min: Pt(0, 0), Max: Pt(2, 2)},
		{Min: Pt(1, 1), Max: Pt(3, 3)},
		{Min: Pt(10, 10), Max: Pt(11, 11)},
	}
	pairs := candidatePairs(boxes)
	if len(pairs) != 1 {
		t.Fatalf("expected exactly one candidate pair, got %v", pairs)
	}
	if pairs[0] != [2]int{0, 1} {
		t.Errorf("expected pair (0,1) in canonical order, got %v", pairs[0])
	}
}

func TestCandidatePairs_Empty(t *testing.T) {
	if pairs := candidatePairs(nil); len(pairs) != 0 {
		t.Errorf("expected no pairs for an empty input, got %v", pairs)
	}
}

func TestRectsForSweep(t *testing.T) {
	boxes := []Rect{
		{Min: Pt(1, 2), Max: Pt(3, 4)},
	}
	intervals := rectsForSweep(boxes)
	if len(intervals) != 1 || intervals[0].lo != 1 || intervals[0].hi != 3 {
		t.Errorf("unexpected interval projection: %v", intervals)
	}
}
