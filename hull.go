package bezier

import (
	"math"

	"github.com/gogpu/bezier/internal/clip"
)

// orientEpsilon is the magnitude below which three points count as
// collinear.
const orientEpsilon = 1e-6

// Orientation classifies the turn made by an ordered triple of points.
type Orientation int

const (
	// Collinear means the three points lie on one line.
	Collinear Orientation = iota

	// Clockwise means p → q → r turns clockwise in a y-up frame.
	Clockwise

	// CounterClockwise means p → q → r turns counter-clockwise in a y-up frame.
	CounterClockwise
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// Orient returns the orientation of the ordered triple (p, q, r).
func Orient(p, q, r Point) Orientation {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case math.Abs(val) < orientEpsilon:
		return Collinear
	case val > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// ConvexHull returns the convex hull of points using the gift-wrapping
// (Jarvis march) algorithm, starting from the leftmost point. Fewer than 3
// points are returned unchanged. The walk is bounded by the number of input
// points, so degenerate input cannot loop forever.
func ConvexHull(points []Point) []Point {
	n := len(points)
	if n < 3 {
		return append([]Point(nil), points...)
	}

	left := 0
	for i := 1; i < n; i++ {
		if points[i].X < points[left].X {
			left = i
		}
	}

	hull := make([]Point, 0, n)
	p := left
	for range n {
		hull = append(hull, points[p])
		q := (p + 1) % n
		for i := range n {
			if Orient(points[p], points[i], points[q]) == CounterClockwise {
				q = i
			}
		}
		p = q
		if p == left {
			return hull
		}
	}
	Logger().Debug("bezier: convex hull walk did not return to start", "points", n)
	return hull
}

// IsPolygonConvex reports whether the closed polygon poly is convex: every
// non-zero turn has the same sign. Polygons with fewer than 3 vertices are
// not convex.
func IsPolygonConvex(poly []Point) bool {
	return clip.IsConvex(toClip(poly))
}

// HullsIntersect reports whether any edge of the closed polygon a properly
// crosses any edge of the closed polygon b. One hull nested entirely inside
// the other without edge crossings is not reported.
func HullsIntersect(a, b []Point) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	for i := range a {
		a1, a2 := a[i], a[(i+1)%len(a)]
		for j := range b {
			b1, b2 := b[j], b[(j+1)%len(b)]
			if segmentsCross(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// segmentsCross is the four-orientation test: each segment's endpoints lie
// on different sides of the other.
func segmentsCross(p1, p2, q1, q2 Point) bool {
	o1 := Orient(p1, p2, q1)
	o2 := Orient(p1, p2, q2)
	o3 := Orient(q1, q2, p1)
	o4 := Orient(q1, q2, p2)
	return o1 != o2 && o3 != o4
}

// ConvexHull returns the convex hull of the control points.
func (c *Curve) ConvexHull() []Point {
	return ConvexHull(c.points)
}

// IntersectsWith reports whether the convex hulls of the two curves'
// control points have crossing edges. It is a coarse pre-test: a Bézier
// curve lies within the hull of its control points.
func (c *Curve) IntersectsWith(other *Curve) bool {
	return HullsIntersect(c.ConvexHull(), other.ConvexHull())
}
