package bezier

import "github.com/gogpu/bezier/internal/clip"

// ClipWindow is the polygon curves are clipped against. It is edited one
// vertex at a time; convexity is not enforced and is checked only when a
// curve is clipped.
type ClipWindow struct {
	points []Point
}

// NewClipWindow creates a window with the given vertices.
func NewClipWindow(points ...Point) *ClipWindow {
	return &ClipWindow{points: append([]Point(nil), points...)}
}

// Len returns the number of vertices.
func (w *ClipWindow) Len() int {
	return len(w.points)
}

// Points returns a copy of the vertices.
func (w *ClipWindow) Points() []Point {
	return append([]Point(nil), w.points...)
}

// Point returns the vertex at index i.
func (w *ClipWindow) Point(i int) (Point, bool) {
	if i < 0 || i >= len(w.points) {
		return Point{}, false
	}
	return w.points[i], true
}

// Add appends a vertex.
func (w *ClipWindow) Add(p Point) {
	w.points = append(w.points, p)
	if len(w.points) >= 3 && !w.IsConvex() {
		Logger().Warn("bezier: clip window is not convex", "points", len(w.points))
	}
}

// Move replaces the vertex at index i.
func (w *ClipWindow) Move(i int, p Point) error {
	if i < 0 || i >= len(w.points) {
		return ErrIndexOutOfRange
	}
	w.points[i] = p
	return nil
}

// Remove deletes the vertex at index i.
func (w *ClipWindow) Remove(i int) error {
	if i < 0 || i >= len(w.points) {
		return ErrIndexOutOfRange
	}
	w.points = append(w.points[:i], w.points[i+1:]...)
	return nil
}

// Clear removes all vertices.
func (w *ClipWindow) Clear() {
	w.points = w.points[:0]
}

// Nearest returns the index of the vertex closest to p, or -1 if there is
// none within radius.
func (w *ClipWindow) Nearest(p Point, radius float64) int {
	return nearest(w.points, p, radius)
}

// IsConvex reports whether the window is a convex polygon with at least 3
// vertices.
func (w *ClipWindow) IsConvex() bool {
	return IsPolygonConvex(w.points)
}

// Area returns the unsigned area enclosed by the window.
func (w *ClipWindow) Area() float64 {
	return clip.Area(toClip(w.points))
}

// Contains reports whether p lies inside or on the boundary of the window.
// The answer is only meaningful for convex windows; it is false for
// windows with fewer than 3 vertices or no area.
func (w *ClipWindow) Contains(p Point) bool {
	if len(w.points) < 3 {
		return false
	}
	return clip.ContainsConvex(clip.Point(p), toClip(w.points))
}
