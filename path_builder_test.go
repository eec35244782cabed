package curvepath

import "testing"

func TestPathBuilder_Basic(t *testing.T) {
	path := BuildPath(Pt(0, 0)).
		LineTo(100, 0).
		LineTo(100, 100).
		Close().
		Build()

	if path == nil {
		t.Fatal("expected non-nil path")
	}
	if path.NumSegments() != 3 {
		t.Errorf("expected 3 segments, got %d", path.NumSegments())
	}
	if !path.IsClosed(smallDistance) {
		t.Error("expected path to be closed")
	}
}

func TestPathBuilder_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		path    *Path
		minSegs int
	}{
		{"Rect", RectPath(0, 0, 100, 100), 4},
		{"Circle", Circle(50, 50, 25), 4},
		{"Ellipse", Ellipse(50, 50, 30, 20), 4},
		{"Polygon5", Polygon(50, 50, 25, 5), 5},
		{"Star5", Star(50, 50, 30, 15, 5), 10},
		{"RoundRect", RoundRect(0, 0, 100, 100, 10), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.path.NumSegments() < tt.minSegs {
				t.Errorf("expected at least %d segments, got %d", tt.minSegs, tt.path.NumSegments())
			}
			if !tt.path.IsClosed(closeDistance) {
				t.Errorf("expected %s to be closed", tt.name)
			}
		})
	}
}

func TestPathBuilder_InvalidPolygon(t *testing.T) {
	path := Polygon(50, 50, 25, 2)
	if path.NumSegments() != 0 {
		t.Errorf("expected 0 segments for invalid polygon, got %d", path.NumSegments())
	}
}

func TestPathBuilder_InvalidStar(t *testing.T) {
	path := Star(50, 50, 30, 15, 2)
	if path.NumSegments() != 0 {
		t.Errorf("expected 0 segments for invalid star, got %d", path.NumSegments())
	}
}

func TestPathBuilder_CubicTo(t *testing.T) {
	path := BuildPath(Pt(0, 0)).
		CubicTo(25, 100, 75, 100, 100, 0).
		Build()

	if path.NumSegments() != 1 {
		t.Errorf("expected 1 segment, got %d", path.NumSegments())
	}
	if path.Curve(0).P3 != Pt(100, 0) {
		t.Errorf("end point = %v, want (100, 0)", path.Curve(0).P3)
	}
}

func TestPathBuilder_RoundRectRadiusClamping(t *testing.T) {
	path := RoundRect(0, 0, 100, 50, 100)
	if path.NumSegments() < 8 {
		t.Errorf("expected at least 8 segments for rounded rect, got %d", path.NumSegments())
	}
}

func TestPathBuilder_EmptyPath(t *testing.T) {
	path := BuildPath(Pt(0, 0)).Build()
	if path.NumSegments() != 0 {
		t.Errorf("expected 0 segments for empty path, got %d", path.NumSegments())
	}
}
