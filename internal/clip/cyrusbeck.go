package clip

import "math"

// halfPlane is one window edge: a point on the edge and its outward unit normal.
type halfPlane struct {
	origin Point
	normal Point
}

// outwardEdges returns the half-planes bounding a convex window.
// Normals are the edge vectors rotated by -90 degrees for counter-clockwise
// windows and by +90 degrees for clockwise ones, so they always point out.
func outwardEdges(window []Point, w Winding) []halfPlane {
	edges := make([]halfPlane, len(window))
	for i, e0 := range window {
		e1 := window[(i+1)%len(window)]
		d := e1.Sub(e0)

		n := Point{X: d.Y, Y: -d.X}
		if w == Clockwise {
			n = Point{X: -d.Y, Y: d.X}
		}
		if l := math.Hypot(n.X, n.Y); l > epsilon {
			n = n.Mul(1 / l)
		}
		edges[i] = halfPlane{origin: e0, normal: n}
	}
	return edges
}

// CyrusBeckSegment clips the segment p1-p2 against a convex window.
// It returns false when no part of the segment is visible, or when the
// window is not a usable convex polygon.
func CyrusBeckSegment(p1, p2 Point, window []Point) (LineSeg, bool) {
	w := WindingOf(window)
	if w == Degenerate || !IsConvex(window) {
		return LineSeg{}, false
	}
	return cyrusBeck(p1, p2, outwardEdges(window, w), Bounds(window))
}

func cyrusBeck(p1, p2 Point, edges []halfPlane, bounds Rect) (LineSeg, bool) {
	seg := LineSeg{P0: p1, P1: p2}
	if !bounds.Intersects(seg.Bounds()) {
		return LineSeg{}, false
	}

	d := p2.Sub(p1)
	tE, tL := 0.0, 1.0

	for _, e := range edges {
		wn := p1.Sub(e.origin).Dot(e.normal)
		dn := d.Dot(e.normal)

		if math.Abs(dn) < epsilon {
			// Parallel to this edge: either fully outside or unconstrained.
			if wn > 0 {
				return LineSeg{}, false
			}
			continue
		}

		t := -wn / dn
		if dn < 0 {
			tE = math.Max(tE, t)
		} else {
			tL = math.Min(tL, t)
		}
		if tE > tL {
			return LineSeg{}, false
		}
	}

	if tE > 0 || tL < 1 {
		if tE == tL {
			// Touches the window in a single point.
			return LineSeg{}, false
		}
		// Unclipped ends are kept bit-exact so neighbouring pieces stitch.
		if tE > 0 {
			seg.P0 = p1.Add(d.Mul(tE))
		}
		if tL < 1 {
			seg.P1 = p1.Add(d.Mul(tL))
		}
	}
	return seg, true
}

// CyrusBeck clips a polyline against a convex window. Each consecutive pair
// of points is clipped independently; visible pieces whose endpoints meet
// exactly are stitched into one polyline, and a new polyline starts at every
// gap. A window that is not convex, has fewer than 3 vertices or encloses no
// area yields nil.
func CyrusBeck(curve, window []Point) [][]Point {
	if len(curve) < 2 || len(window) < 3 {
		return nil
	}
	w := WindingOf(window)
	if w == Degenerate || !IsConvex(window) {
		return nil
	}
	edges := outwardEdges(window, w)
	bounds := Bounds(window)

	var (
		result  [][]Point
		current []Point
	)
	flush := func() {
		if len(current) >= 2 {
			result = append(result, current)
		}
		current = nil
	}

	for i := 0; i+1 < len(curve); i++ {
		seg, ok := cyrusBeck(curve[i], curve[i+1], edges, bounds)
		if !ok {
			flush()
			continue
		}
		if len(current) > 0 && current[len(current)-1] == seg.P0 {
			current = append(current, seg.P1)
			continue
		}
		flush()
		current = []Point{seg.P0, seg.P1}
	}
	flush()

	return result
}

// ContainsConvex reports whether p lies inside or on the boundary of a
// convex window.
func ContainsConvex(p Point, window []Point) bool {
	w := WindingOf(window)
	if w == Degenerate {
		return false
	}
	for _, e := range outwardEdges(window, w) {
		if p.Sub(e.origin).Dot(e.normal) > epsilon {
			return false
		}
	}
	return true
}
