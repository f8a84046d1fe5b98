// Package preview draws an editor state to an image with the gg software
// rasterizer. It is meant for snapshots and tests; no GPU resources are
// created.
//
// World coordinates have y pointing up. The default view is the square
// [-1, 1] x [-1, 1], the space the editor's select radius and default
// clip window sizes are tuned for.
package preview

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/bezier"
)

var (
	// ErrInvalidSize is returned when the image size is not positive.
	ErrInvalidSize = errors.New("preview: invalid image size")

	// ErrEmptyView is returned when the view has no area.
	ErrEmptyView = errors.New("preview: empty view")
)

// View is the world rectangle mapped onto the image.
type View struct {
	MinX, MinY, MaxX, MaxY float64
}

// DefaultView is the normalized device square.
var DefaultView = View{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}

func (v View) empty() bool {
	return !(v.MaxX > v.MinX && v.MaxY > v.MinY)
}

// Style holds the colors and sizes used for drawing.
type Style struct {
	Background     gg.RGBA
	ControlPolygon gg.RGBA
	ControlPoint   gg.RGBA
	ActivePoint    gg.RGBA
	SelectedPoint  gg.RGBA
	Direct         gg.RGBA
	DeCasteljau    gg.RGBA
	Clipped        gg.RGBA
	ClippedFill    gg.RGBA
	Hull           gg.RGBA
	Window         gg.RGBA

	LineWidth  float64 // pixels
	PointSize  float64 // radius in pixels
	HullDashes float64 // dash length in pixels
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	return Style{
		Background:     gg.Hex("#1e1e24"),
		ControlPolygon: gg.RGBA2(0.6, 0.6, 0.6, 0.6),
		ControlPoint:   gg.Hex("#c8c8c8"),
		ActivePoint:    gg.Hex("#ffd24a"),
		SelectedPoint:  gg.Hex("#ff5a5a"),
		Direct:         gg.Hex("#4ac8ff"),
		DeCasteljau:    gg.Hex("#7cff6b"),
		Clipped:        gg.Hex("#ff9f1a"),
		ClippedFill:    gg.RGBA2(1, 0.62, 0.1, 0.25),
		Hull:           gg.RGBA2(0.8, 0.4, 1, 0.8),
		Window:         gg.Hex("#f0f0f0"),
		LineWidth:      2,
		PointSize:      4,
		HullDashes:     6,
	}
}

// Option configures rendering.
type Option func(*options)

type options struct {
	width, height int
	view          View
	fit           bool
	margin        float64
	style         Style
	hulls         bool
	polygons      bool
}

func defaultOptions() options {
	return options{
		width:    800,
		height:   800,
		view:     DefaultView,
		style:    DefaultStyle(),
		polygons: true,
	}
}

// WithSize sets the image size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithView sets the world rectangle shown.
func WithView(v View) Option {
	return func(o *options) {
		o.view = v
		o.fit = false
	}
}

// WithFit fits the view to every control point and window vertex, padded
// by margin as a fraction of the larger extent.
func WithFit(margin float64) Option {
	return func(o *options) {
		o.fit = true
		o.margin = margin
	}
}

// WithStyle replaces the drawing style.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithHulls enables drawing the convex hull of every curve.
func WithHulls(on bool) Option {
	return func(o *options) {
		o.hulls = on
	}
}

// WithControlPolygons enables drawing control polygons and points.
// It is on by default.
func WithControlPolygons(on bool) Option {
	return func(o *options) {
		o.polygons = on
	}
}

// Render draws ed and returns the image.
func Render(ed *bezier.Editor, opts ...Option) (image.Image, error) {
	dc, err := draw(ed, opts)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	return dc.Image(), nil
}

// EncodePNG draws ed and writes it to w as PNG.
func EncodePNG(w io.Writer, ed *bezier.Editor, opts ...Option) error {
	dc, err := draw(ed, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("preview: encode: %w", err)
	}
	return nil
}

// SavePNG draws ed to the named PNG file.
func SavePNG(name string, ed *bezier.Editor, opts ...Option) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := EncodePNG(f, ed, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func draw(ed *bezier.Editor, opts []Option) (*gg.Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.width, o.height)
	}
	if o.fit {
		o.view = fit(ed, o.margin)
	}
	if o.view.empty() {
		return nil, ErrEmptyView
	}

	dc := gg.NewContext(o.width, o.height)
	c := &canvas{dc: dc, view: o.view, style: o.style, w: float64(o.width), h: float64(o.height)}
	dc.ClearWithColor(o.style.Background)

	c.window(ed.Window())

	active := ed.Curves().ActiveID()
	for _, curve := range ed.Curves().Curves() {
		if o.hulls {
			c.hull(curve.ConvexHull())
		}
		c.result(ed.Display(curve), curve)
		if o.polygons {
			sel := -1
			if curve.ID() == active {
				sel = ed.SelectedPoint()
			}
			c.controls(curve.ControlPoints(), curve.ID() == active, sel)
		}
	}
	if c.err != nil {
		dc.Close()
		return nil, c.err
	}
	return dc, nil
}

// fit returns the bounding box of every control point and window vertex,
// padded by margin. An empty editor gets DefaultView.
func fit(ed *bezier.Editor, margin float64) View {
	v := View{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	add := func(pts []bezier.Point) {
		for _, p := range pts {
			v.MinX = math.Min(v.MinX, p.X)
			v.MinY = math.Min(v.MinY, p.Y)
			v.MaxX = math.Max(v.MaxX, p.X)
			v.MaxY = math.Max(v.MaxY, p.Y)
		}
	}
	for _, c := range ed.Curves().Curves() {
		add(c.ControlPoints())
	}
	add(ed.Window().Points())
	if math.IsInf(v.MinX, 1) {
		return DefaultView
	}

	pad := math.Max(v.MaxX-v.MinX, v.MaxY-v.MinY) * margin
	if pad == 0 {
		pad = 1
	}
	return View{MinX: v.MinX - pad, MinY: v.MinY - pad, MaxX: v.MaxX + pad, MaxY: v.MaxY + pad}
}
