package clip

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Winding is the vertex order of a polygon in a Y-up coordinate system.
type Winding int

const (
	// Degenerate polygons have no area (fewer than 3 points, or collinear).
	Degenerate Winding = iota

	// CounterClockwise polygons have positive signed area.
	CounterClockwise

	// Clockwise polygons have negative signed area.
	Clockwise
)

// String returns the winding name.
func (w Winding) String() string {
	switch w {
	case Degenerate:
		return "Degenerate"
	case CounterClockwise:
		return "CounterClockwise"
	case Clockwise:
		return "Clockwise"
	default:
		return "Unknown"
	}
}

// ring converts a polygon to a closed orb ring.
func ring(poly []Point) orb.Ring {
	r := make(orb.Ring, 0, len(poly)+1)
	for _, p := range poly {
		r = append(r, orb.Point{p.X, p.Y})
	}
	if len(r) > 0 && !r[0].Equal(r[len(r)-1]) {
		r = append(r, r[0])
	}
	return r
}

// WindingOf reports the vertex order of poly.
func WindingOf(poly []Point) Winding {
	if len(poly) < 3 {
		return Degenerate
	}
	switch ring(poly).Orientation() {
	case orb.CCW:
		return CounterClockwise
	case orb.CW:
		return Clockwise
	default:
		return Degenerate
	}
}

// Area returns the unsigned area enclosed by poly.
func Area(poly []Point) float64 {
	if len(poly) < 3 {
		return 0
	}
	return math.Abs(planar.Area(ring(poly)))
}

// Reversed returns a copy of poly with the vertex order reversed.
func Reversed(poly []Point) []Point {
	out := make([]Point, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}

// IsConvex reports whether every non-zero turn of the closed polygon has
// the same sign. Polygons with fewer than 3 points are never convex.
func IsConvex(poly []Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	sign := 0
	for i := 0; i < n; i++ {
		a, b, c := poly[i], poly[(i+1)%n], poly[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))

		cur := 0
		switch {
		case cross > 0:
			cur = 1
		case cross < 0:
			cur = -1
		}
		if cur == 0 {
			continue
		}
		if sign == 0 {
			sign = cur
		} else if sign != cur {
			return false
		}
	}
	return true
}
