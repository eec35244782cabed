package curvepath

import (
	"math"
	"testing"
)

func TestPathArea(t *testing.T) {
	tests := []struct {
		name      string
		path      *Path
		wantArea  float64
		tolerance float64
	}{
		{
			name:      "unit square anticlockwise",
			path:      BuildPath(Pt(0, 0)).LineTo(1, 0).LineTo(1, 1).LineTo(0, 1).Close().Build(),
			wantArea:  1.0,
			tolerance: 0.001,
		},
		{
			name:      "unit square clockwise",
			path:      BuildPath(Pt(0, 0)).LineTo(0, 1).LineTo(1, 1).LineTo(1, 0).Close().Build(),
			wantArea:  -1.0,
			tolerance: 0.001,
		},
		{
			name:      "10x10 square",
			path:      RectPath(0, 0, 10, 10),
			wantArea:  100,
			tolerance: 0.1,
		},
		{
			name:      "triangle",
			path:      BuildPath(Pt(0, 0)).LineTo(4, 0).LineTo(2, 3).Close().Build(),
			wantArea:  6,
			tolerance: 0.1,
		},
		{
			name:      "circle radius 1",
			path:      Circle(0, 0, 1),
			wantArea:  math.Pi,
			tolerance: 0.1,
		},
		{
			name:      "empty path",
			path:      NewPath(Pt(0, 0)),
			wantArea:  0,
			tolerance: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.path.Area()
			if math.Abs(math.Abs(got)-math.Abs(tt.wantArea)) > tt.tolerance {
				t.Errorf("Area() = %v, want approximately %v (tolerance %v)", got, tt.wantArea, tt.tolerance)
			}
		})
	}
}

func TestPathDirection(t *testing.T) {
	// (0,0)->(1,0)->(1,1)->(0,1) has positive shoelace area: anticlockwise
	// in the standard (y-up) math convention Area() uses.
	anticlockwiseSquare := BuildPath(Pt(0, 0)).LineTo(1, 0).LineTo(1, 1).LineTo(0, 1).Close().Build()
	clockwiseSquare := BuildPath(Pt(0, 0)).LineTo(0, 1).LineTo(1, 1).LineTo(1, 0).Close().Build()

	if got := clockwiseSquare.Direction(); got != DirectionClockwise {
		t.Errorf("Direction() = %v, want Clockwise", got)
	}
	if got := anticlockwiseSquare.Direction(); got != DirectionAnticlockwise {
		t.Errorf("Direction() = %v, want Anticlockwise", got)
	}
}

func TestPathContainsPoint(t *testing.T) {
	tests := []struct {
		name  string
		path  *Path
		point Point
		want  bool
	}{
		{"inside square", RectPath(0, 0, 10, 10), Pt(5, 5), true},
		{"outside square", RectPath(0, 0, 10, 10), Pt(15, 5), false},
		{"inside circle", Circle(5, 5, 3), Pt(5, 5), true},
		{"outside circle", Circle(5, 5, 3), Pt(0, 0), false},
		{"inside triangle", BuildPath(Pt(0, 0)).LineTo(10, 0).LineTo(5, 10).Close().Build(), Pt(5, 3), true},
		{"outside triangle", BuildPath(Pt(0, 0)).LineTo(10, 0).LineTo(5, 10).Close().Build(), Pt(0, 10), false},
		{"near top edge but inside circle", Circle(5, 5, 3), Pt(5, 7), true},
		{"outside top of circle", Circle(5, 5, 3), Pt(5, 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.ContainsPoint(tt.point); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestPathBoundingBox(t *testing.T) {
	tests := []struct {
		name    string
		path    *Path
		wantMin Point
		wantMax Point
	}{
		{
			name:    "simple rectangle",
			path:    RectPath(10, 20, 30, 40),
			wantMin: Pt(10, 20),
			wantMax: Pt(40, 60),
		},
		{
			name:    "triangle",
			path:    BuildPath(Pt(0, 0)).LineTo(10, 0).LineTo(5, 8).Close().Build(),
			wantMin: Pt(0, 0),
			wantMax: Pt(10, 8),
		},
		{
			name:    "circle at origin",
			path:    Circle(0, 0, 5),
			wantMin: Pt(-5, -5),
			wantMax: Pt(5, 5),
		},
		{
			name:    "empty path",
			path:    NewPath(Pt(0, 0)),
			wantMin: Pt(0, 0),
			wantMax: Pt(0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bbox := tt.path.BoundingBox()
			const tolerance = 0.5
			if math.Abs(bbox.Min.X-tt.wantMin.X) > tolerance || math.Abs(bbox.Min.Y-tt.wantMin.Y) > tolerance {
				t.Errorf("BoundingBox().Min = %v, want %v", bbox.Min, tt.wantMin)
			}
			if math.Abs(bbox.Max.X-tt.wantMax.X) > tolerance || math.Abs(bbox.Max.Y-tt.wantMax.Y) > tolerance {
				t.Errorf("BoundingBox().Max = %v, want %v", bbox.Max, tt.wantMax)
			}
		})
	}
}

func TestPathReversed(t *testing.T) {
	tests := []*Path{
		BuildPath(Pt(0, 0)).LineTo(10, 0).LineTo(10, 10).Build(),
		RectPath(0, 0, 10, 10),
		BuildPath(Pt(0, 0)).CubicTo(3, 10, 7, 10, 10, 0).Build(),
	}

	for i, original := range tests {
		reversed := original.Reversed()
		if reversed.NumSegments() != original.NumSegments() {
			t.Errorf("case %d: reversed has %d segments, want %d", i, reversed.NumSegments(), original.NumSegments())
		}
		if !reversed.Start.IsNearTo(original.Segments[len(original.Segments)-1].End, smallDistance) {
			t.Errorf("case %d: reversed start = %v, want %v", i, reversed.Start, original.Segments[len(original.Segments)-1].End)
		}
		twiceReversed := reversed.Reversed()
		if !twiceReversed.Start.IsNearTo(original.Start, smallDistance) {
			t.Errorf("case %d: double reversal should restore start point", i)
		}
	}
}

func TestPathLength(t *testing.T) {
	tests := []struct {
		name       string
		path       *Path
		wantLength float64
		tolerance  float64
	}{
		{
			name:       "horizontal line",
			path:       BuildPath(Pt(0, 0)).LineTo(10, 0).Build(),
			wantLength: 10,
			tolerance:  0.001,
		},
		{
			name:       "diagonal line",
			path:       BuildPath(Pt(0, 0)).LineTo(3, 4).Build(),
			wantLength: 5,
			tolerance:  0.001,
		},
		{
			name:       "square perimeter",
			path:       BuildPath(Pt(0, 0)).LineTo(10, 0).LineTo(10, 10).LineTo(0, 10).LineTo(0, 0).Build(),
			wantLength: 40,
			tolerance:  0.001,
		},
		{
			name:       "circle circumference",
			path:       Circle(0, 0, 1),
			wantLength: 2 * math.Pi,
			tolerance:  0.1,
		},
		{
			name:       "empty path",
			path:       NewPath(Pt(0, 0)),
			wantLength: 0,
			tolerance:  0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.path.Length(0.001)
			if math.Abs(got-tt.wantLength) > tt.tolerance {
				t.Errorf("Length() = %v, want %v (tolerance %v)", got, tt.wantLength, tt.tolerance)
			}
		})
	}
}

func TestBoundingBoxWithCurves(t *testing.T) {
	p := BuildPath(Pt(0, 0)).CubicTo(0, 10, 10, 10, 10, 0).Build()
	bbox := p.BoundingBox()
	if bbox.Max.Y < 4 {
		t.Errorf("BoundingBox max Y = %v, expected >= 4 (curve should bulge up)", bbox.Max.Y)
	}
}

func TestEmptyPathOperations(t *testing.T) {
	p := NewPath(Pt(0, 0))

	if area := p.Area(); area != 0 {
		t.Errorf("Empty path Area() = %v, want 0", area)
	}
	if c := p.ContainsPoint(Pt(0, 0)); c {
		t.Errorf("Empty path ContainsPoint() = %v, want false", c)
	}
	bbox := p.BoundingBox()
	if bbox.Width() != 0 || bbox.Height() != 0 {
		t.Errorf("Empty path BoundingBox() = %v, want zero rect", bbox)
	}
	if rev := p.Reversed(); rev.NumSegments() != 0 {
		t.Errorf("Empty path Reversed() has %d segments, want 0", rev.NumSegments())
	}
	if l := p.Length(0.001); l != 0 {
		t.Errorf("Empty path Length() = %v, want 0", l)
	}
}

func TestClosestPoint(t *testing.T) {
	square := RectPath(0, 0, 10, 10)
	_, _, point, distance := square.ClosestPoint(Pt(5, -3), 1e-4)
	if distance > 3.01 || distance < 2.99 {
		t.Errorf("distance = %v, want ~3", distance)
	}
	if !point.IsNearTo(Pt(5, 0), 0.01) {
		t.Errorf("closest point = %v, want ~(5, 0)", point)
	}
}
