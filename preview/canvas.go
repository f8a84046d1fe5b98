package preview

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/bezier"
)

// canvas maps world coordinates to pixels and draws editor elements.
// The first drawing error is kept in err and later draws still run.
type canvas struct {
	dc    *gg.Context
	view  View
	style Style
	w, h  float64
	err   error
}

func (c *canvas) check(err error) {
	if err != nil && c.err == nil {
		c.err = fmt.Errorf("preview: draw: %w", err)
	}
}

func (c *canvas) toPixel(p bezier.Point) (x, y float64) {
	x = (p.X - c.view.MinX) / (c.view.MaxX - c.view.MinX) * c.w
	y = (c.view.MaxY - p.Y) / (c.view.MaxY - c.view.MinY) * c.h
	return x, y
}

func (c *canvas) path(pts []bezier.Point, closed bool) {
	for i, p := range pts {
		x, y := c.toPixel(p)
		if i == 0 {
			c.dc.MoveTo(x, y)
		} else {
			c.dc.LineTo(x, y)
		}
	}
	if closed {
		c.dc.ClosePath()
	}
}

func (c *canvas) stroke(pts []bezier.Point, closed bool, col gg.RGBA, width float64) {
	if len(pts) < 2 {
		return
	}
	c.path(pts, closed)
	c.dc.SetColor(col.Color())
	c.dc.SetLineWidth(width)
	c.check(c.dc.Stroke())
}

func (c *canvas) dot(p bezier.Point, col gg.RGBA, r float64) {
	x, y := c.toPixel(p)
	c.dc.SetColor(col.Color())
	c.dc.DrawCircle(x, y, r)
	c.check(c.dc.Fill())
}

// window draws the clip window outline. A non-convex window is dashed.
func (c *canvas) window(w *bezier.ClipWindow) {
	pts := w.Points()
	if len(pts) >= 3 && !w.IsConvex() {
		c.dc.SetDash(c.style.HullDashes, c.style.HullDashes)
		defer c.dc.SetDash()
	}
	c.stroke(pts, len(pts) >= 3, c.style.Window, c.style.LineWidth)
	for _, p := range pts {
		c.dot(p, c.style.Window, c.style.PointSize*0.75)
	}
}

func (c *canvas) hull(pts []bezier.Point) {
	c.dc.SetDash(c.style.HullDashes, c.style.HullDashes)
	c.stroke(pts, true, c.style.Hull, c.style.LineWidth*0.5)
	c.dc.SetDash()
}

// result draws what the editor displays for curve.
func (c *canvas) result(res bezier.ClipResult, curve *bezier.Curve) {
	if len(res.Polygon) >= 3 {
		c.path(res.Polygon, true)
		c.dc.SetColor(c.style.ClippedFill.Color())
		c.check(c.dc.FillPreserve())
		c.dc.SetColor(c.style.Clipped.Color())
		c.dc.SetLineWidth(c.style.LineWidth)
		c.check(c.dc.Stroke())
	}
	if res.Clipped {
		for _, run := range res.Polylines {
			c.stroke(run, false, c.style.Clipped, c.style.LineWidth)
		}
		return
	}
	if d := curve.Direct(); len(d) > 0 {
		c.stroke(d, false, c.style.Direct, c.style.LineWidth)
	}
	if d := curve.DeCasteljau(); len(d) > 0 {
		c.stroke(d, false, c.style.DeCasteljau, c.style.LineWidth)
	}
}

func (c *canvas) controls(pts []bezier.Point, active bool, selected int) {
	c.stroke(pts, false, c.style.ControlPolygon, 1)
	col := c.style.ControlPoint
	if active {
		col = c.style.ActivePoint
	}
	for i, p := range pts {
		if i == selected {
			c.dot(p, c.style.SelectedPoint, c.style.PointSize*1.5)
			continue
		}
		c.dot(p, col, c.style.PointSize)
	}
}
