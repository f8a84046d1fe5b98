// Package config loads editor presets from TOML.
//
// A preset mirrors the editor options; every key is optional and absent
// keys keep the editor defaults:
//
//	step = 0.005
//	clip_algorithm = "sutherland-hodgman"
//	clipping = true
//	select_radius = 0.05
//
//	[loft]
//	mode = "revolution"
//	real_time = true
//	color = [0.2, 0.5, 0.9]
//
//	[loft.linear]
//	height = 2.0
//	scale = 0.5
//	steps = 10
//
//	[loft.revolution]
//	angle = 180.0
//	segments = 24
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/bezier"
	"github.com/gogpu/bezier/loft"
)

// ErrInvalid is wrapped by every error describing a bad preset value.
var ErrInvalid = errors.New("config: invalid value")

// Preset is an editor configuration read from TOML. Pointer fields are nil
// when the key is absent.
type Preset struct {
	Step          *float64 `toml:"step"`
	ClipAlgorithm string   `toml:"clip_algorithm"`
	Clipping      *bool    `toml:"clipping"`
	SelectRadius  *float64 `toml:"select_radius"`
	Loft          Loft     `toml:"loft"`
}

// Loft holds the lofting part of a preset.
type Loft struct {
	Mode       string      `toml:"mode"`
	RealTime   *bool       `toml:"real_time"`
	Color      []float64   `toml:"color"`
	Linear     *Linear     `toml:"linear"`
	Revolution *Revolution `toml:"revolution"`
}

// Linear holds linear extrusion parameters. Absent keys keep the defaults.
type Linear struct {
	Height *float64 `toml:"height"`
	Scale  *float64 `toml:"scale"`
	Steps  *int     `toml:"steps"`
}

// Revolution holds surface of revolution parameters.
type Revolution struct {
	Angle    *float64 `toml:"angle"`
	Segments *int     `toml:"segments"`
}

// Load decodes a preset from r. Unknown keys are errors.
func Load(r io.Reader) (*Preset, error) {
	var p Preset
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return nil, fmt.Errorf("config: line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile decodes the preset in the named file.
func LoadFile(name string) (*Preset, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks that every present value is usable.
func (p *Preset) Validate() error {
	if _, err := p.clipAlgorithm(); err != nil {
		return err
	}
	if _, err := p.Loft.mode(); err != nil {
		return err
	}
	if p.SelectRadius != nil && *p.SelectRadius <= 0 {
		return fmt.Errorf("%w: select_radius %g must be positive", ErrInvalid, *p.SelectRadius)
	}
	if c := p.Loft.Color; c != nil && len(c) != 3 {
		return fmt.Errorf("%w: loft.color needs 3 components, got %d", ErrInvalid, len(c))
	}
	if _, err := p.Loft.linear(); err != nil {
		return err
	}
	if _, err := p.Loft.revolution(); err != nil {
		return err
	}
	return nil
}

// Options converts the preset to editor options. It assumes Validate
// succeeded, as it does for presets returned by Load.
func (p *Preset) Options() []bezier.EditorOption {
	var opts []bezier.EditorOption
	if p.Step != nil {
		opts = append(opts, bezier.WithStep(*p.Step))
	}
	if a, err := p.clipAlgorithm(); err == nil && p.ClipAlgorithm != "" {
		opts = append(opts, bezier.WithClipAlgorithm(a))
	}
	if p.Clipping != nil {
		opts = append(opts, bezier.WithClipping(*p.Clipping))
	}
	if p.SelectRadius != nil {
		opts = append(opts, bezier.WithSelectRadius(*p.SelectRadius))
	}

	l := p.Loft
	if m, err := l.mode(); err == nil && l.Mode != "" {
		opts = append(opts, bezier.WithLoftMode(m))
	}
	if l.RealTime != nil {
		opts = append(opts, bezier.WithRealTimeLoft(*l.RealTime))
	}
	if len(l.Color) == 3 {
		opts = append(opts, bezier.WithSurfaceColor(loft.V3(l.Color[0], l.Color[1], l.Color[2])))
	}
	if lp, err := l.linear(); err == nil && l.Linear != nil {
		opts = append(opts, bezier.WithLinearParams(lp))
	}
	if rp, err := l.revolution(); err == nil && l.Revolution != nil {
		opts = append(opts, bezier.WithRevolutionParams(rp))
	}
	return opts
}

func (p *Preset) clipAlgorithm() (bezier.ClipAlgorithm, error) {
	switch strings.ToLower(p.ClipAlgorithm) {
	case "", "cyrus-beck", "cyrusbeck":
		return bezier.CyrusBeck, nil
	case "sutherland-hodgman", "sutherlandhodgman":
		return bezier.SutherlandHodgman, nil
	default:
		return 0, fmt.Errorf("%w: clip_algorithm %q", ErrInvalid, p.ClipAlgorithm)
	}
}

func (l Loft) mode() (loft.Mode, error) {
	if l.Mode == "" {
		return loft.ModeLinear, nil
	}
	m, err := loft.ParseMode(l.Mode)
	if err != nil {
		return 0, fmt.Errorf("%w: loft.mode %q", ErrInvalid, l.Mode)
	}
	return m, nil
}

func (l Loft) linear() (loft.LinearParams, error) {
	lp := loft.DefaultLinearParams()
	if l.Linear == nil {
		return lp, nil
	}
	if l.Linear.Height != nil {
		lp.Height = *l.Linear.Height
	}
	if l.Linear.Scale != nil {
		lp.Scale = *l.Linear.Scale
	}
	if l.Linear.Steps != nil {
		lp.Steps = *l.Linear.Steps
	}
	if lp.Steps < 0 {
		return lp, fmt.Errorf("%w: loft.linear.steps %d is negative", ErrInvalid, lp.Steps)
	}
	return lp, nil
}

func (l Loft) revolution() (loft.RevolutionParams, error) {
	rp := loft.DefaultRevolutionParams()
	if l.Revolution == nil {
		return rp, nil
	}
	if l.Revolution.Angle != nil {
		rp.Angle = *l.Revolution.Angle
	}
	if l.Revolution.Segments != nil {
		rp.Segments = *l.Revolution.Segments
	}
	if rp.Segments < 1 {
		return rp, fmt.Errorf("%w: loft.revolution.segments %d must be at least 1", ErrInvalid, rp.Segments)
	}
	return rp, nil
}
