package loft

import "math"

// Vec2 is a 2D vector. Its layout matches bezier.Point, so a point converts
// with Vec2(p).
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector in float64, the precision bezier samples are
// computed in.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Mul returns a scaled by s.
func (a Vec3) Mul(s float64) Vec3 {
	return Vec3{X: a.X * s, Y: a.Y * s, Z: a.Z * s}
}

// Dot returns the dot product.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean length.
func (a Vec3) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// Normalize returns a unit vector in the direction of a, or the zero vector
// if a is shorter than epsilon.
func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	if l < epsilon {
		return Vec3{}
	}
	return a.Mul(1 / l)
}

// epsilon guards normalization of near-zero vectors.
const epsilon = 1e-9
