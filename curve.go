package bezier

import (
	"math"
	"time"
)

// Step bounds for curve sampling.
const (
	DefaultStep = 0.01
	MinStep     = 0.001
	MaxStep     = 0.1

	// StepIncrement is the amount IncreaseStep and DecreaseStep change the
	// step by.
	StepIncrement = 0.001

	// ClosedTolerance is the largest distance between the first and last
	// control points for which a curve is considered closed.
	ClosedTolerance = 1e-3
)

// Curve is an editable Bézier curve of arbitrary degree.
//
// A curve owns its control points and the two derived sample sequences
// produced by the direct (Bernstein) and De Casteljau methods. Every
// mutation recomputes the samples of the methods that are currently shown;
// the samples of a hidden method are empty.
//
// Curve is not safe for concurrent use.
type Curve struct {
	id        CurveID
	points    []Point
	step      float64
	algorithm ClipAlgorithm

	showDirect      bool
	showDeCasteljau bool

	direct      []Point
	deCasteljau []Point

	table *BinomialTable
}

// NewCurve creates a curve with the default step and the given control
// points. Neither method is shown until a second control point exists.
func NewCurve(points ...Point) *Curve {
	c := &Curve{
		id:    NoCurve,
		step:  DefaultStep,
		table: NewBinomialTable(0),
	}
	if len(points) > 0 {
		c.SetControlPoints(points)
	}
	return c
}

// ID returns the identifier assigned by the owning Collection, or NoCurve.
func (c *Curve) ID() CurveID {
	return c.id
}

// Len returns the number of control points.
func (c *Curve) Len() int {
	return len(c.points)
}

// Degree returns the polynomial degree (control points minus one), or -1
// for an empty curve.
func (c *Curve) Degree() int {
	return len(c.points) - 1
}

// ControlPoints returns a copy of the control points.
func (c *Curve) ControlPoints() []Point {
	out := make([]Point, len(c.points))
	copy(out, c.points)
	return out
}

// ControlPoint returns the control point at index i.
func (c *Curve) ControlPoint(i int) (Point, bool) {
	if i < 0 || i >= len(c.points) {
		return Point{}, false
	}
	return c.points[i], true
}

// SetControlPoints replaces all control points.
func (c *Curve) SetControlPoints(points []Point) {
	c.points = append(c.points[:0:0], points...)
	c.table.Ensure(len(c.points) - 1)
	c.autoShow()
	c.recompute()
}

// AddControlPoint appends a control point. Adding the second point turns
// on the direct method when no method is shown yet.
func (c *Curve) AddControlPoint(p Point) {
	c.points = append(c.points, p)
	c.table.Ensure(len(c.points) - 1)
	c.autoShow()
	c.recompute()
}

// MoveControlPoint replaces the control point at index i.
func (c *Curve) MoveControlPoint(i int, p Point) error {
	if i < 0 || i >= len(c.points) {
		return ErrIndexOutOfRange
	}
	c.points[i] = p
	c.recompute()
	return nil
}

// RemoveControlPoint deletes the control point at index i.
func (c *Curve) RemoveControlPoint(i int) error {
	if i < 0 || i >= len(c.points) {
		return ErrIndexOutOfRange
	}
	c.points = append(c.points[:i], c.points[i+1:]...)
	c.recompute()
	return nil
}

// DuplicateControlPoint inserts a copy of the control point at index i
// directly after it.
func (c *Curve) DuplicateControlPoint(i int) error {
	if i < 0 || i >= len(c.points) {
		return ErrIndexOutOfRange
	}
	c.points = append(c.points, Point{})
	copy(c.points[i+1:], c.points[i:])
	c.table.Ensure(len(c.points) - 1)
	c.recompute()
	return nil
}

// Close appends a copy of the first control point so the curve ends where
// it starts. It needs at least 2 control points.
func (c *Curve) Close() error {
	if len(c.points) < 2 {
		Logger().Warn("bezier: cannot close curve", "points", len(c.points))
		return ErrTooFewPoints
	}
	c.points = append(c.points, c.points[0])
	c.table.Ensure(len(c.points) - 1)
	c.recompute()
	return nil
}

// Clear removes all control points and hides both methods.
func (c *Curve) Clear() {
	c.points = c.points[:0]
	c.direct = nil
	c.deCasteljau = nil
	c.showDirect = false
	c.showDeCasteljau = false
}

// DistanceTo returns the distance from p to the control point at index i,
// or +Inf for an invalid index.
func (c *Curve) DistanceTo(i int, p Point) float64 {
	if i < 0 || i >= len(c.points) {
		return math.Inf(1)
	}
	return c.points[i].Distance(p)
}

// NearestControlPoint returns the index of the control point closest to p,
// or -1 if the curve is empty or the closest point is farther than radius.
func (c *Curve) NearestControlPoint(p Point, radius float64) int {
	return nearest(c.points, p, radius)
}

// nearest returns the index of the point of pts closest to p within radius.
func nearest(pts []Point, p Point, radius float64) int {
	best, bestDist := -1, math.Inf(1)
	for i, q := range pts {
		if d := q.Distance(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	if bestDist > radius {
		return -1
	}
	return best
}

// Step returns the sampling step.
func (c *Curve) Step() float64 {
	return c.step
}

// SetStep sets the sampling step, clamped to [MinStep, MaxStep].
// Non-finite or non-positive values select MinStep.
func (c *Curve) SetStep(step float64) {
	c.step = clampStep(step)
	c.recompute()
}

// IncreaseStep coarsens the sampling by StepIncrement.
func (c *Curve) IncreaseStep() {
	c.SetStep(c.step + StepIncrement)
}

// DecreaseStep refines the sampling by StepIncrement.
func (c *Curve) DecreaseStep() {
	c.SetStep(c.step - StepIncrement)
}

func clampStep(step float64) float64 {
	if math.IsNaN(step) || step < MinStep {
		return MinStep
	}
	return math.Min(step, MaxStep)
}

// ShowDirect reports whether the direct method is shown.
func (c *Curve) ShowDirect() bool { return c.showDirect }

// ShowDeCasteljau reports whether the De Casteljau method is shown.
func (c *Curve) ShowDeCasteljau() bool { return c.showDeCasteljau }

// ToggleDirect flips the visibility of the direct method.
func (c *Curve) ToggleDirect() {
	c.SetVisibility(!c.showDirect, c.showDeCasteljau)
}

// ToggleDeCasteljau flips the visibility of the De Casteljau method.
func (c *Curve) ToggleDeCasteljau() {
	c.SetVisibility(c.showDirect, !c.showDeCasteljau)
}

// ShowBoth shows both methods.
func (c *Curve) ShowBoth() {
	c.SetVisibility(true, true)
}

// SetVisibility sets which methods are shown.
func (c *Curve) SetVisibility(direct, deCasteljau bool) {
	c.showDirect = direct
	c.showDeCasteljau = deCasteljau
	c.recompute()
}

// Direct returns the samples of the direct method. The slice is owned by
// the curve and must not be modified.
func (c *Curve) Direct() []Point { return c.direct }

// DeCasteljau returns the samples of the De Casteljau method. The slice is
// owned by the curve and must not be modified.
func (c *Curve) DeCasteljau() []Point { return c.deCasteljau }

// Samples returns the direct samples if present, otherwise the De
// Casteljau samples. Clipping and lofting read the curve through it.
func (c *Curve) Samples() []Point {
	if len(c.direct) > 0 {
		return c.direct
	}
	return c.deCasteljau
}

// IsClosed reports whether the curve has at least 3 control points and its
// first and last control points lie within ClosedTolerance.
func (c *Curve) IsClosed() bool {
	if len(c.points) < 3 {
		return false
	}
	return c.points[0].Distance(c.points[len(c.points)-1]) < ClosedTolerance
}

// ClipAlgorithm returns the algorithm used when the curve is clipped.
func (c *Curve) ClipAlgorithm() ClipAlgorithm {
	return c.algorithm
}

// SetClipAlgorithm selects the algorithm used when the curve is clipped.
func (c *Curve) SetClipAlgorithm(a ClipAlgorithm) {
	c.algorithm = a
}

func (c *Curve) autoShow() {
	if len(c.points) >= 2 && !c.showDirect && !c.showDeCasteljau {
		c.showDirect = true
	}
}

// recompute refreshes the samples of the shown methods and drops the
// samples of hidden ones.
func (c *Curve) recompute() {
	log := Logger()

	c.direct = nil
	if c.showDirect {
		start := time.Now()
		c.direct = SampleDirect(c.points, c.step, c.table)
		log.Debug("bezier: direct samples",
			"curve", c.id, "degree", c.Degree(), "samples", len(c.direct), "elapsed", time.Since(start))
	}

	c.deCasteljau = nil
	if c.showDeCasteljau {
		start := time.Now()
		c.deCasteljau = SampleDeCasteljau(c.points, c.step)
		log.Debug("bezier: de casteljau samples",
			"curve", c.id, "degree", c.Degree(), "samples", len(c.deCasteljau), "elapsed", time.Since(start))
	}
}
