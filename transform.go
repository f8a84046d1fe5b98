package bezier

import "math"

// Affine edits of the control polygon. Scale, Rotate and Shear act about the
// centroid of the control points. All of them are no-ops on an empty curve.

// Translate moves every control point by (dx, dy).
func (c *Curve) Translate(dx, dy float64) {
	c.apply(func(p, _ Point) Point {
		return Point{X: p.X + dx, Y: p.Y + dy}
	})
}

// Scale scales the control polygon by (sx, sy) about its centroid.
func (c *Curve) Scale(sx, sy float64) {
	c.apply(func(p, o Point) Point {
		return Point{X: o.X + (p.X-o.X)*sx, Y: o.Y + (p.Y-o.Y)*sy}
	})
}

// Rotate rotates the control polygon about its centroid by degrees,
// counter-clockwise in a y-up frame.
func (c *Curve) Rotate(degrees float64) {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	c.apply(func(p, o Point) Point {
		d := p.Sub(o)
		return Point{X: o.X + d.X*cos - d.Y*sin, Y: o.Y + d.X*sin + d.Y*cos}
	})
}

// Shear shears the control polygon about its centroid: x gains shx·dy and
// y gains shy·dx, where (dx, dy) is the offset from the centroid.
func (c *Curve) Shear(shx, shy float64) {
	c.apply(func(p, o Point) Point {
		d := p.Sub(o)
		return Point{X: o.X + d.X + shx*d.Y, Y: o.Y + d.Y + shy*d.X}
	})
}

func (c *Curve) apply(f func(p, origin Point) Point) {
	if len(c.points) == 0 {
		return
	}
	o := centroid(c.points)
	for i, p := range c.points {
		c.points[i] = f(p, o)
	}
	c.recompute()
}
