package loft

import "errors"

var (
	// ErrTooFewSamples is returned when a profile or trajectory has fewer
	// than 2 samples.
	ErrTooFewSamples = errors.New("loft: need at least 2 samples")

	// ErrTooFewCurves is returned when generalized lofting has no
	// trajectory curve.
	ErrTooFewCurves = errors.New("loft: generalized lofting needs a profile and a trajectory")

	// ErrInvalidParams is returned for negative linear steps or fewer than
	// one revolution segment.
	ErrInvalidParams = errors.New("loft: invalid parameters")
)
