package loft

import (
	"fmt"
	"math"
	"time"
)

// LinearParams configures linear extrusion along +Z.
type LinearParams struct {
	// Height is the Z coordinate of the last ring.
	Height float64

	// Scale is the profile scale of the last ring; rings in between are
	// scaled by 1 + (Scale-1)·t.
	Scale float64

	// Steps is the number of ring intervals. Zero yields a single ring.
	Steps int
}

// DefaultLinearParams returns the parameters of a straight unit extrusion.
func DefaultLinearParams() LinearParams {
	return LinearParams{Height: 1, Scale: 1, Steps: 20}
}

// RevolutionParams configures revolution about the Y axis.
type RevolutionParams struct {
	// Angle is the sweep in degrees. Exactly 360 closes the surface.
	Angle float64

	// Segments is the number of angular steps.
	Segments int
}

// DefaultRevolutionParams returns a full revolution in 36 segments.
func DefaultRevolutionParams() RevolutionParams {
	return RevolutionParams{Angle: 360, Segments: 36}
}

// fullTurn reports whether the sweep closes on itself.
func (p RevolutionParams) fullTurn() bool {
	return math.Abs(p.Angle-360) < 1e-9
}

// Option configures mesh generation.
type Option func(*options)

type options struct {
	color Vec3
}

func defaultOptions() options {
	return options{color: DefaultColor}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithColor sets the vertex color of generated surfaces.
func WithColor(c Vec3) Option {
	return func(o *options) {
		o.color = c
	}
}

// Linear extrudes profile along +Z into Steps+1 rings. Ring h lies at
// t = h/Steps with height Height·t and scale 1+(Scale-1)·t.
func Linear(profile []Vec2, p LinearParams, opts ...Option) (*Surface, error) {
	if len(profile) < 2 {
		return nil, ErrTooFewSamples
	}
	if p.Steps < 0 {
		return nil, fmt.Errorf("%w: steps %d", ErrInvalidParams, p.Steps)
	}
	o := buildOptions(opts)
	start := time.Now()

	m := len(profile)
	s := &Surface{Vertices: make([]Vertex, 0, (p.Steps+1)*m)}
	for h := 0; h <= p.Steps; h++ {
		t := 0.0
		if p.Steps > 0 {
			t = float64(h) / float64(p.Steps)
		}
		scale := 1 + (p.Scale-1)*t
		for i, q := range profile {
			s.Vertices = append(s.Vertices, Vertex{
				Position: Vec3{X: q.X * scale, Y: q.Y * scale, Z: p.Height * t},
				TexCoord: Vec2{X: float64(i) / float64(m), Y: t},
				Color:    o.color,
			})
		}
	}
	s.appendGrid(0, p.Steps+1, m, false)
	s.ComputeNormals()

	logGenerated("linear", s, start)
	return s, nil
}

// Revolution sweeps profile about the Y axis. Ring j lies at angle
// θ = Angle·j/Segments and places profile point (x, y) at
// (x·cosθ, y, x·sinθ). A sweep of exactly 360 degrees has Segments rings
// and connects the last one back to the first; any other sweep has
// Segments+1 rings and is left open.
func Revolution(profile []Vec2, p RevolutionParams, opts ...Option) (*Surface, error) {
	if len(profile) < 2 {
		return nil, ErrTooFewSamples
	}
	if p.Segments < 1 {
		return nil, fmt.Errorf("%w: segments %d", ErrInvalidParams, p.Segments)
	}
	o := buildOptions(opts)
	start := time.Now()

	full := p.fullTurn()
	rings := p.Segments + 1
	if full {
		rings = p.Segments
	}

	m := len(profile)
	s := &Surface{Vertices: make([]Vertex, 0, rings*m)}
	for j := range rings {
		frac := float64(j) / float64(p.Segments)
		sin, cos := math.Sincos(p.Angle * frac * math.Pi / 180)
		for i, q := range profile {
			s.Vertices = append(s.Vertices, Vertex{
				Position: Vec3{X: q.X * cos, Y: q.Y, Z: q.X * sin},
				TexCoord: Vec2{X: float64(i) / float64(m), Y: frac},
				Color:    o.color,
			})
		}
	}
	s.appendGrid(0, rings, m, full)
	s.ComputeNormals()

	logGenerated("revolution", s, start)
	return s, nil
}

// Generalized sweeps profile along trajectory. At every trajectory sample
// A the frame is built from the unit tangent V (forward difference at the
// start, backward at the end, central in between), U = normalize(V × Z) and
// N = normalize(U × V); profile point (x, y) is placed at A + x·U + y·N.
// Where the tangent vanishes the previous valid tangent is reused.
// A nil trajectory means there is no trajectory curve at all.
func Generalized(profile, trajectory []Vec2, opts ...Option) (*Surface, error) {
	if trajectory == nil {
		return nil, ErrTooFewCurves
	}
	if len(profile) < 2 || len(trajectory) < 2 {
		return nil, ErrTooFewSamples
	}
	o := buildOptions(opts)
	start := time.Now()

	tangents := sweepTangents(trajectory)
	up := Vec3{Z: 1}

	m := len(profile)
	n := len(trajectory)
	s := &Surface{Vertices: make([]Vertex, 0, n*m)}
	for k, a := range trajectory {
		v := tangents[k]
		u := v.Cross(up).Normalize()
		nrm := u.Cross(v).Normalize()
		origin := Vec3{X: a.X, Y: a.Y}
		for i, q := range profile {
			s.Vertices = append(s.Vertices, Vertex{
				Position: origin.Add(u.Mul(q.X)).Add(nrm.Mul(q.Y)),
				TexCoord: Vec2{X: float64(i) / float64(m), Y: float64(k) / float64(n-1)},
				Color:    o.color,
			})
		}
	}
	s.appendGrid(0, n, m, false)
	s.ComputeNormals()

	logGenerated("generalized", s, start)
	return s, nil
}

// sweepTangents returns a unit tangent for every trajectory sample. Zero
// differences reuse the last valid tangent; leading zero differences take
// the first valid one, and a trajectory without any extent uses +X.
func sweepTangents(path []Vec2) []Vec3 {
	n := len(path)
	out := make([]Vec3, n)
	valid := make([]bool, n)
	for k := range path {
		var d Vec2
		switch k {
		case 0:
			d = Vec2{X: path[1].X - path[0].X, Y: path[1].Y - path[0].Y}
		case n - 1:
			d = Vec2{X: path[k].X - path[k-1].X, Y: path[k].Y - path[k-1].Y}
		default:
			d = Vec2{X: path[k+1].X - path[k-1].X, Y: path[k+1].Y - path[k-1].Y}
		}
		out[k] = Vec3{X: d.X, Y: d.Y}.Normalize()
		valid[k] = out[k] != Vec3{}
	}

	last := Vec3{X: 1}
	for k := range out {
		if valid[k] {
			last = out[k]
			break
		}
	}
	for k := range out {
		if valid[k] {
			last = out[k]
		} else {
			out[k] = last
		}
	}
	return out
}

func logGenerated(mode string, s *Surface, start time.Time) {
	Logger().Debug("loft: surface generated",
		"mode", mode,
		"vertices", len(s.Vertices),
		"triangles", s.TriangleCount(),
		"elapsed", time.Since(start))
}
