// Package clip provides line and polygon clipping of sampled curves
// against polygonal windows.
//
// Every function is a pure function over point slices: inputs are never
// modified and results are freshly allocated.
package clip

import "math"

// epsilon guards divisions by near-zero denominators.
const epsilon = 1e-6

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Rect represents an axis-aligned bounding box.
type Rect struct {
	Min, Max Point
}

// Bounds returns the bounding box of the given points.
// An empty slice yields the zero Rect.
func Bounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects returns true if two rectangles overlap. Touching edges count.
func (r Rect) Intersects(other Rect) bool {
	return !(other.Min.X > r.Max.X || other.Max.X < r.Min.X ||
		other.Min.Y > r.Max.Y || other.Max.Y < r.Min.Y)
}

// LineSeg represents a line segment.
type LineSeg struct {
	P0, P1 Point
}

// Bounds returns the bounding box of the segment.
func (s LineSeg) Bounds() Rect {
	return Bounds([]Point{s.P0, s.P1})
}
