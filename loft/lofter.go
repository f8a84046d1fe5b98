package loft

import (
	"fmt"
	"strings"
)

// Mode selects how a Lofter builds its surface.
type Mode int

const (
	// ModeLinear extrudes the profile along +Z.
	ModeLinear Mode = iota

	// ModeRevolution revolves the profile about the Y axis.
	ModeRevolution

	// ModeGeneralized sweeps the profile along a trajectory.
	ModeGeneralized
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "Linear"
	case ModeRevolution:
		return "Revolution"
	case ModeGeneralized:
		return "Generalized"
	default:
		return "Unknown"
	}
}

// ParseMode returns the mode named s, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "linear":
		return ModeLinear, nil
	case "revolution":
		return ModeRevolution, nil
	case "generalized":
		return ModeGeneralized, nil
	default:
		return 0, fmt.Errorf("loft: unknown mode %q", s)
	}
}

// Lofter holds the lofting mode, its parameters and the last generated
// surface.
//
// Every parameter change marks the lofter dirty. Generate always rebuilds
// the surface. In real-time mode Update rebuilds it when dirty, so a
// burst of edits between two ticks costs one regeneration.
//
// Lofter is not safe for concurrent use.
type Lofter struct {
	mode       Mode
	linear     LinearParams
	revolution RevolutionParams
	color      Vec3
	realTime   bool

	dirty   bool
	surface *Surface
}

// NewLofter creates a lofter in linear mode with default parameters.
func NewLofter() *Lofter {
	return &Lofter{
		mode:       ModeLinear,
		linear:     DefaultLinearParams(),
		revolution: DefaultRevolutionParams(),
		color:      DefaultColor,
		dirty:      true,
	}
}

// Mode returns the lofting mode.
func (l *Lofter) Mode() Mode { return l.mode }

// SetMode selects the lofting mode.
func (l *Lofter) SetMode(m Mode) {
	l.mode = m
	l.Invalidate()
}

// LinearParams returns the linear extrusion parameters.
func (l *Lofter) LinearParams() LinearParams { return l.linear }

// SetLinearParams sets the linear extrusion parameters.
func (l *Lofter) SetLinearParams(p LinearParams) {
	l.linear = p
	l.Invalidate()
}

// RevolutionParams returns the revolution parameters.
func (l *Lofter) RevolutionParams() RevolutionParams { return l.revolution }

// SetRevolutionParams sets the revolution parameters.
func (l *Lofter) SetRevolutionParams(p RevolutionParams) {
	l.revolution = p
	l.Invalidate()
}

// Color returns the vertex color.
func (l *Lofter) Color() Vec3 { return l.color }

// SetColor sets the vertex color.
func (l *Lofter) SetColor(c Vec3) {
	l.color = c
	l.Invalidate()
}

// RealTime reports whether Update regenerates dirty surfaces.
func (l *Lofter) RealTime() bool { return l.realTime }

// SetRealTime enables or disables regeneration on Update.
func (l *Lofter) SetRealTime(on bool) {
	l.realTime = on
}

// Invalidate marks the surface as out of date.
func (l *Lofter) Invalidate() {
	l.dirty = true
}

// Dirty reports whether the surface is out of date.
func (l *Lofter) Dirty() bool { return l.dirty }

// Surface returns the last generated surface, or nil.
func (l *Lofter) Surface() *Surface { return l.surface }

// Generate rebuilds the surface from profile and, in generalized mode,
// trajectory. On error the previous surface is discarded.
func (l *Lofter) Generate(profile, trajectory []Vec2) (*Surface, error) {
	l.dirty = false

	var (
		s   *Surface
		err error
	)
	switch l.mode {
	case ModeRevolution:
		s, err = Revolution(profile, l.revolution, WithColor(l.color))
	case ModeGeneralized:
		s, err = Generalized(profile, trajectory, WithColor(l.color))
	default:
		s, err = Linear(profile, l.linear, WithColor(l.color))
	}
	l.surface = s
	if err != nil {
		Logger().Warn("loft: generation refused", "mode", l.mode, "err", err)
		return nil, err
	}
	Logger().Info("loft: surface generated",
		"mode", l.mode, "vertices", len(s.Vertices), "triangles", s.TriangleCount())
	return s, nil
}

// Update regenerates the surface if real-time mode is on and the lofter is
// dirty. It reports whether a regeneration happened.
func (l *Lofter) Update(profile, trajectory []Vec2) (*Surface, bool, error) {
	if !l.realTime || !l.dirty {
		return l.surface, false, nil
	}
	s, err := l.Generate(profile, trajectory)
	return s, true, err
}
