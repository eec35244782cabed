package curvepath

import (
	"math"
	"testing"
)

func TestFatLineFromCurve_StraightCurveIsZeroWidth(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(1, 0), P2: Pt(2, 0), P3: Pt(3, 0)}
	fl := fatLineFromCurve(c)
	if math.Abs(fl.DMin) > epsilon || math.Abs(fl.DMax) > epsilon {
		t.Errorf("straight curve should have a zero-width fat line, got [%v, %v]", fl.DMin, fl.DMax)
	}
}

func TestFatLineFromCurve_BulgingCurve(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(1, 1), P2: Pt(2, 1), P3: Pt(3, 0)}
	fl := fatLineFromCurve(c)
	// lineThrough's normal for a left-to-right baseline points down, so
	// points above the baseline have negative signed distance.
	if fl.DMin >= 0 {
		t.Errorf("curve bulges above its baseline, want DMin < 0, got %v", fl.DMin)
	}
	if fl.DMax < 0 {
		t.Errorf("baseline itself lies within the band, want DMax >= 0, got %v", fl.DMax)
	}
}

func TestFatLineFromCurve_DegeneratePoint(t *testing.T) {
	p := Pt(5, 5)
	fl := fatLineFromCurve(CubicBez{P0: p, P1: p, P2: p, P3: p})
	if fl.DMin != 0 || fl.DMax != 0 {
		t.Errorf("fully degenerate curve should produce a zero band, got [%v, %v]", fl.DMin, fl.DMax)
	}
}

func TestClipT_RejectsDisjointCurve(t *testing.T) {
	// c1 is a horizontal segment at y=0; c2 lies entirely at y=10, far
	// outside c1's fat line band.
	c1 := CubicBez{P0: Pt(0, 0), P1: Pt(1, 0), P2: Pt(2, 0), P3: Pt(3, 0)}
	c2 := CubicBez{P0: Pt(0, 10), P1: Pt(1, 10), P2: Pt(2, 10), P3: Pt(3, 10)}

	fl := fatLineFromCurve(c1)
	if _, _, ok := fl.clipT(c2); ok {
		t.Error("expected clipT to reject a curve entirely outside the fat line band")
	}
}

func TestClipT_AcceptsCrossingCurve(t *testing.T) {
	// c1 is horizontal at y=0; c2 crosses it vertically through y=0 at
	// around x=1.5.
	c1 := CubicBez{P0: Pt(0, 0), P1: Pt(1, 0), P2: Pt(2, 0), P3: Pt(3, 0)}
	c2 := CubicBez{P0: Pt(1.5, -2), P1: Pt(1.5, -1), P2: Pt(1.5, 1), P3: Pt(1.5, 2)}

	fl := fatLineFromCurve(c1)
	lo, hi, ok := fl.clipT(c2)
	if !ok {
		t.Fatal("expected clipT to accept a curve crossing the fat line band")
	}
	if lo < 0 || hi > 1 || lo > hi {
		t.Errorf("clip range [%v, %v] is not a valid sub-range of [0, 1]", lo, hi)
	}
}
