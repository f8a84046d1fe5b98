package bezier

import (
	"github.com/gogpu/bezier/internal/clip"
)

// ClipAlgorithm selects how a curve is clipped against a ClipWindow.
type ClipAlgorithm int

const (
	// CyrusBeck clips the sampled curve as an open polyline. The window
	// must be convex.
	CyrusBeck ClipAlgorithm = iota

	// SutherlandHodgman clips the sampled curve as a closed polygon. The
	// curve must be closed.
	SutherlandHodgman
)

// String returns the algorithm name.
func (a ClipAlgorithm) String() string {
	switch a {
	case CyrusBeck:
		return "CyrusBeck"
	case SutherlandHodgman:
		return "SutherlandHodgman"
	default:
		return unknownStr
	}
}

// Other returns the algorithm that is not a.
func (a ClipAlgorithm) Other() ClipAlgorithm {
	if a == CyrusBeck {
		return SutherlandHodgman
	}
	return CyrusBeck
}

// ClipResult holds the visible part of a curve.
//
// Cyrus-Beck fills Polylines with every visible run of the curve.
// Sutherland-Hodgman fills Polygon with the clipped closed outline.
// Clipped is false when the result is the unclipped curve (see
// Editor.Display).
type ClipResult struct {
	Algorithm ClipAlgorithm
	Polylines [][]Point
	Polygon   []Point
	Clipped   bool
}

// Empty reports whether nothing is visible.
func (r ClipResult) Empty() bool {
	return len(r.Polylines) == 0 && len(r.Polygon) == 0
}

// ClipPolyline clips an open polyline against a convex window with the
// Cyrus-Beck algorithm and returns the visible runs.
func ClipPolyline(polyline, window []Point) ([][]Point, error) {
	if err := checkWindow(window, true); err != nil {
		return nil, err
	}
	return fromClipAll(clip.CyrusBeck(toClip(polyline), toClip(window))), nil
}

// ClipPolygon clips a closed polygon against window with the
// Sutherland-Hodgman algorithm. The result is exact for convex windows.
func ClipPolygon(polygon, window []Point) ([]Point, error) {
	if err := checkWindow(window, false); err != nil {
		return nil, err
	}
	return fromClip(clip.SutherlandHodgman(toClip(polygon), toClip(window))), nil
}

func checkWindow(window []Point, convex bool) error {
	if len(window) < 3 {
		return ErrWindowTooSmall
	}
	cw := toClip(window)
	if clip.WindingOf(cw) == clip.Degenerate {
		return ErrWindowDegenerate
	}
	if convex && !clip.IsConvex(cw) {
		return ErrWindowNotConvex
	}
	return nil
}

// Clip clips the curve's samples (see Samples) against w with the curve's
// clip algorithm. On error the result is empty and the caller is expected
// to draw the curve unclipped.
func (c *Curve) Clip(w *ClipWindow) (ClipResult, error) {
	res := ClipResult{Algorithm: c.algorithm}
	samples := c.Samples()
	if len(samples) == 0 {
		return res, ErrNoSamples
	}

	var err error
	switch c.algorithm {
	case SutherlandHodgman:
		if !c.IsClosed() {
			err = ErrCurveNotClosed
			break
		}
		res.Polygon, err = ClipPolygon(samples, w.points)
	default:
		res.Polylines, err = ClipPolyline(samples, w.points)
	}
	if err != nil {
		Logger().Warn("bezier: clip refused",
			"curve", c.id, "algorithm", c.algorithm, "err", err)
		return ClipResult{Algorithm: c.algorithm}, err
	}
	res.Clipped = true
	return res, nil
}

func toClip(pts []Point) []clip.Point {
	if pts == nil {
		return nil
	}
	out := make([]clip.Point, len(pts))
	for i, p := range pts {
		out[i] = clip.Point(p)
	}
	return out
}

func fromClip(pts []clip.Point) []Point {
	if pts == nil {
		return nil
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point(p)
	}
	return out
}

func fromClipAll(runs [][]clip.Point) [][]Point {
	if runs == nil {
		return nil
	}
	out := make([][]Point, len(runs))
	for i, r := range runs {
		out[i] = fromClip(r)
	}
	return out
}
