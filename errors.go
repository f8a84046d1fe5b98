package bezier

import "errors"

// Errors reported when an operation refuses its input. None of them leave
// the receiver in a modified state.
var (
	// ErrTooFewPoints is returned when a curve has fewer control points than
	// the operation needs (2 to evaluate or join C1, 3 to join C2).
	ErrTooFewPoints = errors.New("bezier: too few control points")

	// ErrIndexOutOfRange is returned for a control point or clip point
	// index outside the current sequence.
	ErrIndexOutOfRange = errors.New("bezier: index out of range")

	// ErrWindowTooSmall is returned when clipping against a window with
	// fewer than 3 vertices.
	ErrWindowTooSmall = errors.New("bezier: clip window needs at least 3 points")

	// ErrWindowNotConvex is returned when Cyrus-Beck clipping is requested
	// against a non-convex window.
	ErrWindowNotConvex = errors.New("bezier: clip window is not convex")

	// ErrWindowDegenerate is returned when the clip window encloses no area.
	ErrWindowDegenerate = errors.New("bezier: clip window has no area")

	// ErrCurveNotClosed is returned when Sutherland-Hodgman clipping is
	// requested for a curve whose first and last control points differ.
	ErrCurveNotClosed = errors.New("bezier: curve is not closed")

	// ErrNoSamples is returned when a curve has no evaluated samples.
	ErrNoSamples = errors.New("bezier: curve has no samples")

	// ErrNoCurve is returned when an operation needs a curve that does not
	// exist, such as an active curve in an empty collection.
	ErrNoCurve = errors.New("bezier: no such curve")

	// ErrSameCurve is returned when a curve is joined to itself.
	ErrSameCurve = errors.New("bezier: cannot join a curve to itself")
)
