package bezier

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func squareWindow() *ClipWindow {
	return NewClipWindow(Pt(-1, -1), Pt(1, -1), Pt(1, 1), Pt(-1, 1))
}

func TestClipPolyline_ScenarioB(t *testing.T) {
	got, err := ClipPolyline([]Point{Pt(-2, 0), Pt(2, 0)}, squareWindow().Points())
	if err != nil {
		t.Fatal(err)
	}
	want := [][]Point{{Pt(-1, 0), Pt(1, 0)}}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, testEpsilon)); diff != "" {
		t.Errorf("ClipPolyline mismatch (-want +got):\n%s", diff)
	}
}

func TestClipPolyline_Preconditions(t *testing.T) {
	line := []Point{Pt(-2, 0), Pt(2, 0)}
	tests := []struct {
		name   string
		window []Point
		want   error
	}{
		{"too small", []Point{Pt(0, 0), Pt(1, 0)}, ErrWindowTooSmall},
		{"collinear", []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)}, ErrWindowDegenerate},
		{"concave", []Point{Pt(-1, -1), Pt(1, -1), Pt(0, 0), Pt(1, 1), Pt(-1, 1)}, ErrWindowNotConvex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClipPolyline(line, tt.window)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if got != nil {
				t.Errorf("result = %v, want nil", got)
			}
		})
	}
}

func TestClipPolygon_ConcaveWindowAllowed(t *testing.T) {
	window := []Point{Pt(-1, -1), Pt(1, -1), Pt(0, 0), Pt(1, 1), Pt(-1, 1)}
	subject := []Point{Pt(-0.5, -0.5), Pt(-0.2, -0.5), Pt(-0.2, 0.5), Pt(-0.5, 0.5)}
	got, err := ClipPolygon(subject, window)
	if err != nil {
		t.Fatalf("ClipPolygon = %v, want no error for a concave window", err)
	}
	if len(got) == 0 {
		t.Error("subject inside the window clipped away")
	}
}

func TestCurve_ClipCyrusBeck(t *testing.T) {
	c := NewCurve(Pt(-2, 0), Pt(2, 0))
	c.SetStep(0.1)

	res, err := c.Clip(squareWindow())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Clipped || res.Algorithm != CyrusBeck {
		t.Fatalf("result = %+v, want a Cyrus-Beck clipped result", res)
	}
	if len(res.Polylines) != 1 {
		t.Fatalf("got %d polylines, want 1", len(res.Polylines))
	}
	run := res.Polylines[0]
	assertPointNear(t, "first", run[0], Pt(-1, 0), 1e-9)
	assertPointNear(t, "last", run[len(run)-1], Pt(1, 0), 1e-9)
	for _, p := range run {
		if math.Abs(p.X) > 1+1e-9 {
			t.Errorf("point %v outside the window", p)
		}
	}
}

func TestCurve_ClipSutherlandHodgman(t *testing.T) {
	// A closed quadratic loop around the origin.
	c := NewCurve(Pt(0, -2), Pt(4, 0), Pt(0, 2), Pt(-4, 0), Pt(0, -2))
	c.SetClipAlgorithm(SutherlandHodgman)

	res, err := c.Clip(squareWindow())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Clipped || len(res.Polygon) < 3 {
		t.Fatalf("result = %+v, want a clipped polygon", res)
	}
	for _, p := range res.Polygon {
		if math.Abs(p.X) > 1+1e-9 || math.Abs(p.Y) > 1+1e-9 {
			t.Errorf("point %v outside the window", p)
		}
	}
}

func TestCurve_ClipRefusals(t *testing.T) {
	open := NewCurve(Pt(-2, 0), Pt(0, 1), Pt(2, 0))

	tests := []struct {
		name   string
		curve  *Curve
		window *ClipWindow
		algo   ClipAlgorithm
		want   error
	}{
		{"no samples", NewCurve(Pt(0, 0)), squareWindow(), CyrusBeck, ErrNoSamples},
		{"small window", open, NewClipWindow(Pt(0, 0)), CyrusBeck, ErrWindowTooSmall},
		{"open curve", open, squareWindow(), SutherlandHodgman, ErrCurveNotClosed},
		{
			"concave window", open,
			NewClipWindow(Pt(-1, -1), Pt(1, -1), Pt(0, 0), Pt(1, 1), Pt(-1, 1)),
			CyrusBeck, ErrWindowNotConvex,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.curve.SetClipAlgorithm(tt.algo)
			res, err := tt.curve.Clip(tt.window)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if !res.Empty() || res.Clipped {
				t.Errorf("refused clip returned %+v", res)
			}
		})
	}
}

func TestClipAlgorithm_String(t *testing.T) {
	tests := []struct {
		a    ClipAlgorithm
		want string
	}{
		{CyrusBeck, "CyrusBeck"},
		{SutherlandHodgman, "SutherlandHodgman"},
		{ClipAlgorithm(3), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if CyrusBeck.Other() != SutherlandHodgman || SutherlandHodgman.Other() != CyrusBeck {
		t.Error("Other does not swap the algorithms")
	}
}

// ---------------------------------------------------------------------------
// ClipWindow
// ---------------------------------------------------------------------------

func TestClipWindow_Edit(t *testing.T) {
	w := NewClipWindow()
	w.Add(Pt(0, 0))
	w.Add(Pt(2, 0))
	w.Add(Pt(2, 2))
	w.Add(Pt(0, 2))

	if w.Len() != 4 || !w.IsConvex() {
		t.Fatalf("Len = %d, IsConvex = %v", w.Len(), w.IsConvex())
	}
	if got := w.Area(); math.Abs(got-4) > testEpsilon {
		t.Errorf("Area = %v, want 4", got)
	}

	if err := w.Move(2, Pt(0.5, 0.5)); err != nil {
		t.Fatal(err)
	}
	if w.IsConvex() {
		t.Error("dented window reported convex")
	}
	if err := w.Remove(2); err != nil {
		t.Fatal(err)
	}
	if p, ok := w.Point(2); !ok || p != Pt(0, 2) {
		t.Errorf("Point(2) = %v, %v, want (0,2), true", p, ok)
	}

	if err := w.Move(7, Pt(0, 0)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Move(7) = %v, want ErrIndexOutOfRange", err)
	}
	if err := w.Remove(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Remove(-1) = %v, want ErrIndexOutOfRange", err)
	}
	if _, ok := w.Point(3); ok {
		t.Error("Point(3) reported ok")
	}

	w.Clear()
	if w.Len() != 0 {
		t.Errorf("Len after Clear = %d", w.Len())
	}
}

func TestClipWindow_NearestAndContains(t *testing.T) {
	w := squareWindow()
	if got := w.Nearest(Pt(0.95, 1.05), 0.1); got != 2 {
		t.Errorf("Nearest = %d, want 2", got)
	}
	if got := w.Nearest(Pt(0, 0), 0.1); got != -1 {
		t.Errorf("Nearest = %d, want -1", got)
	}

	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(1, 0), true},
		{Pt(1.5, 0), false},
		{Pt(0, -3), false},
	}
	for _, tt := range tests {
		if got := w.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if NewClipWindow(Pt(0, 0), Pt(1, 1)).Contains(Pt(0, 0)) {
		t.Error("two-point window contains a point")
	}
}

func TestClipWindow_PointsIsCopy(t *testing.T) {
	w := squareWindow()
	pts := w.Points()
	pts[0] = Pt(50, 50)
	if p, _ := w.Point(0); p != Pt(-1, -1) {
		t.Errorf("modifying Points() changed the window: %v", p)
	}
}
