package bezier

import "github.com/gogpu/bezier/loft"

// Editor is the state of an interactive curve editing session: the curve
// collection, the clip window, per-session settings, the current point
// selections and the lofter.
//
// Edits made through the Editor mark the lofted surface out of date. Code
// that mutates curves directly should call Invalidate.
//
// Editor is not safe for concurrent use.
type Editor struct {
	curves *Collection
	window *ClipWindow
	lofter *loft.Lofter

	step         float64
	algorithm    ClipAlgorithm
	clipping     bool
	selectRadius float64

	trajectory   CurveID
	selected     int
	selectedClip int
}

// NewEditor creates an empty editor.
func NewEditor(opts ...EditorOption) *Editor {
	o := defaultEditorOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := loft.NewLofter()
	l.SetMode(o.loftMode)
	l.SetLinearParams(o.linear)
	l.SetRevolutionParams(o.revolution)
	l.SetColor(o.color)
	l.SetRealTime(o.realTime)

	return &Editor{
		curves:       NewCollection(),
		window:       NewClipWindow(),
		lofter:       l,
		step:         o.step,
		algorithm:    o.algorithm,
		clipping:     o.clipping,
		selectRadius: o.selectRadius,
		trajectory:   NoCurve,
		selected:     -1,
		selectedClip: -1,
	}
}

// Curves returns the curve collection.
func (e *Editor) Curves() *Collection { return e.curves }

// Window returns the clip window.
func (e *Editor) Window() *ClipWindow { return e.window }

// Lofter returns the lofter.
func (e *Editor) Lofter() *loft.Lofter { return e.lofter }

// Step returns the sampling step given to new curves.
func (e *Editor) Step() float64 { return e.step }

// NewCurve creates a curve with the editor's step and clip algorithm, adds
// it to the collection and makes it active.
func (e *Editor) NewCurve(points ...Point) *Curve {
	c := NewCurve()
	c.step = e.step
	c.algorithm = e.algorithm
	e.curves.Add(c)
	if len(points) > 0 {
		c.SetControlPoints(points)
	}
	e.selected = -1
	e.Invalidate()
	return c
}

// ActiveCurve returns the active curve, or ErrNoCurve.
func (e *Editor) ActiveCurve() (*Curve, error) {
	c, ok := e.curves.Active()
	if !ok {
		return nil, ErrNoCurve
	}
	return c, nil
}

// DeleteCurve removes the active curve.
func (e *Editor) DeleteCurve() error {
	id := e.curves.ActiveID()
	if err := e.curves.Remove(id); err != nil {
		return err
	}
	if id == e.trajectory {
		e.trajectory = NoCurve
	}
	e.selected = -1
	e.Invalidate()
	return nil
}

// NextCurve activates the next curve and returns its ID.
func (e *Editor) NextCurve() CurveID {
	e.selected = -1
	e.Invalidate()
	return e.curves.Next()
}

// Edit applies f to the active curve and marks the surface out of date.
func (e *Editor) Edit(f func(c *Curve) error) error {
	c, err := e.ActiveCurve()
	if err != nil {
		return err
	}
	if err := f(c); err != nil {
		return err
	}
	e.Invalidate()
	return nil
}

// AddPoint appends a control point to the active curve.
func (e *Editor) AddPoint(p Point) error {
	return e.Edit(func(c *Curve) error {
		c.AddControlPoint(p)
		return nil
	})
}

// SelectPoint selects the control point of the active curve nearest to p
// within the select radius and returns its index, or -1.
func (e *Editor) SelectPoint(p Point) int {
	e.selected = -1
	if c, err := e.ActiveCurve(); err == nil {
		e.selected = c.NearestControlPoint(p, e.selectRadius)
	}
	return e.selected
}

// SelectedPoint returns the selected control point index, or -1.
func (e *Editor) SelectedPoint() int { return e.selected }

// ReleasePoint clears the control point selection.
func (e *Editor) ReleasePoint() { e.selected = -1 }

// MoveSelectedPoint moves the selected control point to p.
func (e *Editor) MoveSelectedPoint(p Point) error {
	return e.Edit(func(c *Curve) error {
		return c.MoveControlPoint(e.selected, p)
	})
}

// RemoveSelectedPoint deletes the selected control point and clears the
// selection.
func (e *Editor) RemoveSelectedPoint() error {
	err := e.Edit(func(c *Curve) error {
		return c.RemoveControlPoint(e.selected)
	})
	if err == nil {
		e.selected = -1
	}
	return err
}

// DuplicateSelectedPoint inserts a copy of the selected control point after
// it.
func (e *Editor) DuplicateSelectedPoint() error {
	return e.Edit(func(c *Curve) error {
		return c.DuplicateControlPoint(e.selected)
	})
}

// AddClipPoint appends a vertex to the clip window.
func (e *Editor) AddClipPoint(p Point) {
	e.window.Add(p)
}

// SelectClipPoint selects the clip window vertex nearest to p within the
// select radius and returns its index, or -1.
func (e *Editor) SelectClipPoint(p Point) int {
	e.selectedClip = e.window.Nearest(p, e.selectRadius)
	return e.selectedClip
}

// SelectedClipPoint returns the selected clip window vertex, or -1.
func (e *Editor) SelectedClipPoint() int { return e.selectedClip }

// MoveSelectedClipPoint moves the selected clip window vertex to p.
func (e *Editor) MoveSelectedClipPoint(p Point) error {
	return e.window.Move(e.selectedClip, p)
}

// RemoveSelectedClipPoint deletes the selected clip window vertex and
// clears the selection.
func (e *Editor) RemoveSelectedClipPoint() error {
	if err := e.window.Remove(e.selectedClip); err != nil {
		return err
	}
	e.selectedClip = -1
	return nil
}

// ClearClipWindow removes every clip window vertex.
func (e *Editor) ClearClipWindow() {
	e.window.Clear()
	e.selectedClip = -1
}

// Clipping reports whether curves are displayed clipped.
func (e *Editor) Clipping() bool { return e.clipping }

// SetClipping enables or disables clipping.
func (e *Editor) SetClipping(on bool) { e.clipping = on }

// ClipAlgorithm returns the clip algorithm given to new curves.
func (e *Editor) ClipAlgorithm() ClipAlgorithm { return e.algorithm }

// ToggleClipAlgorithm switches between Cyrus-Beck and Sutherland-Hodgman
// for every curve and for curves created later. It returns the new
// algorithm.
func (e *Editor) ToggleClipAlgorithm() ClipAlgorithm {
	e.algorithm = e.algorithm.Other()
	for _, c := range e.curves.curves {
		c.algorithm = e.algorithm
	}
	Logger().Info("bezier: clip algorithm changed", "algorithm", e.algorithm)
	return e.algorithm
}

// Display returns what should be drawn for c. With clipping enabled and a
// usable window it is the clipped curve. Otherwise, or when clipping is
// refused, it is every shown sample sequence unclipped, with Clipped false.
func (e *Editor) Display(c *Curve) ClipResult {
	if e.clipping && e.window.Len() >= 3 {
		if res, err := c.Clip(e.window); err == nil {
			return res
		}
	}
	res := ClipResult{Algorithm: c.algorithm}
	for _, s := range [][]Point{c.direct, c.deCasteljau} {
		if len(s) > 0 {
			res.Polylines = append(res.Polylines, s)
		}
	}
	return res
}

// Join edits curve to so that it continues curve from with continuity k.
func (e *Editor) Join(from, to CurveID, k Continuity) error {
	if err := e.curves.Join(from, to, k); err != nil {
		return err
	}
	e.Invalidate()
	return nil
}

// SetLoftMode selects the lofting mode.
func (e *Editor) SetLoftMode(m loft.Mode) { e.lofter.SetMode(m) }

// SetLinearParams sets the linear extrusion parameters.
func (e *Editor) SetLinearParams(p loft.LinearParams) { e.lofter.SetLinearParams(p) }

// SetRevolutionParams sets the revolution parameters.
func (e *Editor) SetRevolutionParams(p loft.RevolutionParams) { e.lofter.SetRevolutionParams(p) }

// SetRealTimeLoft enables or disables regeneration on Update.
func (e *Editor) SetRealTimeLoft(on bool) { e.lofter.SetRealTime(on) }

// Trajectory returns the curve used as the sweep path in generalized
// lofting, or NoCurve if none was chosen.
func (e *Editor) Trajectory() CurveID { return e.trajectory }

// SetTrajectory chooses the sweep path for generalized lofting. NoCurve
// restores the default: the first curve that is not active.
func (e *Editor) SetTrajectory(id CurveID) error {
	if id != NoCurve {
		if _, ok := e.curves.Get(id); !ok {
			return ErrNoCurve
		}
	}
	e.trajectory = id
	e.Invalidate()
	return nil
}

// Invalidate marks the lofted surface out of date.
func (e *Editor) Invalidate() { e.lofter.Invalidate() }

// Loft regenerates the surface from the active curve and returns it.
func (e *Editor) Loft() (*loft.Surface, error) {
	profile, trajectory, err := e.loftInputs()
	if err != nil {
		return nil, err
	}
	return e.lofter.Generate(profile, trajectory)
}

// Update is the per-frame tick: in real-time mode it regenerates an out of
// date surface. It reports whether a regeneration happened.
func (e *Editor) Update() (*loft.Surface, bool, error) {
	if !e.lofter.RealTime() || !e.lofter.Dirty() {
		return e.lofter.Surface(), false, nil
	}
	profile, trajectory, err := e.loftInputs()
	if err != nil {
		return nil, false, err
	}
	return e.lofter.Update(profile, trajectory)
}

// Surface returns the last lofted surface, or nil.
func (e *Editor) Surface() *loft.Surface { return e.lofter.Surface() }

func (e *Editor) loftInputs() (profile, trajectory []loft.Vec2, err error) {
	active, err := e.ActiveCurve()
	if err != nil {
		return nil, nil, err
	}
	profile = toVec2(active.Samples())

	if e.lofter.Mode() != loft.ModeGeneralized {
		return profile, nil, nil
	}
	if t, ok := e.curves.Get(e.trajectory); ok && t != active {
		return profile, toVec2(t.Samples()), nil
	}
	for _, c := range e.curves.curves {
		if c != active {
			return profile, toVec2(c.Samples()), nil
		}
	}
	return profile, nil, nil
}

// toVec2 converts pts; the result is never nil, so an empty curve reads as
// too few samples rather than a missing curve.
func toVec2(pts []Point) []loft.Vec2 {
	out := make([]loft.Vec2, len(pts))
	for i, p := range pts {
		out[i] = loft.Vec2(p)
	}
	return out
}
