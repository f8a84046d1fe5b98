package clip

import (
	"math"
	"testing"
)

func square(x0, y0, size float64) []Point {
	return []Point{Pt(x0, y0), Pt(x0+size, y0), Pt(x0+size, y0+size), Pt(x0, y0+size)}
}

func TestSutherlandHodgman_ContainedSubjectUnchanged(t *testing.T) {
	subject := square(0, 0, 1)
	window := square(-1, -1, 4)

	got := SutherlandHodgman(subject, window)
	if len(got) != len(subject) {
		t.Fatalf("expected %d points, got %d: %v", len(subject), len(got), got)
	}
	for _, p := range subject {
		if !containsPoint(got, p) {
			t.Errorf("point %v missing from result %v", p, got)
		}
	}
}

func TestSutherlandHodgman_HalfPlaneHalvesArea(t *testing.T) {
	subject := square(0, 0, 2)
	// Covers x <= 1 of the subject.
	window := []Point{Pt(-1, -1), Pt(1, -1), Pt(1, 3), Pt(-1, 3)}

	for _, tt := range []struct {
		name   string
		window []Point
	}{
		{"counter-clockwise window", window},
		{"clockwise window", Reversed(window)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := SutherlandHodgman(subject, tt.window)
			area := Area(got)
			if math.Abs(area-Area(subject)/2) > 1e-9 {
				t.Errorf("clipped area = %v, want %v (polygon %v)", area, Area(subject)/2, got)
			}
		})
	}
}

func TestSutherlandHodgman_Disjoint(t *testing.T) {
	if got := SutherlandHodgman(square(5, 5, 1), square(0, 0, 1)); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestSutherlandHodgman_WindowInsideSubject(t *testing.T) {
	subject := square(0, 0, 2)
	window := []Point{Pt(1, 1), Pt(2, 1), Pt(1, 2)}

	got := SutherlandHodgman(subject, window)
	// The window lies inside the subject, so the result is the window itself.
	if a := Area(got); math.Abs(a-0.5) > 1e-9 {
		t.Errorf("area = %v, want 0.5 (polygon %v)", a, got)
	}
}

func TestSutherlandHodgman_DoesNotModifyInput(t *testing.T) {
	subject := square(0, 0, 2)
	window := square(1, 1, 2)
	before := append([]Point(nil), window...)

	_ = SutherlandHodgman(subject, window)
	for i := range window {
		if window[i] != before[i] {
			t.Fatalf("window modified at %d: %v != %v", i, window[i], before[i])
		}
	}
}

func TestSutherlandHodgman_Invalid(t *testing.T) {
	if got := SutherlandHodgman(nil, square(0, 0, 1)); got != nil {
		t.Errorf("empty subject: expected nil, got %v", got)
	}
	if got := SutherlandHodgman(square(0, 0, 1), []Point{Pt(0, 0), Pt(1, 1)}); got != nil {
		t.Errorf("two-point window: expected nil, got %v", got)
	}
}

func TestIntersect_Parallel(t *testing.T) {
	s := Pt(0, 0)
	got := intersect(s, Pt(1, 0), Pt(0, 1), Pt(1, 1))
	if got != s {
		t.Errorf("intersect of parallel lines = %v, want %v", got, s)
	}
}

func containsPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if math.Abs(q.X-p.X) < 1e-9 && math.Abs(q.Y-p.Y) < 1e-9 {
			return true
		}
	}
	return false
}
