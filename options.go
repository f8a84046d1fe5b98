package bezier

import "github.com/gogpu/bezier/loft"

// DefaultSelectRadius is the distance within which a click selects a
// control point or clip window vertex.
const DefaultSelectRadius = 0.1

// EditorOption configures an Editor during creation.
//
// Example:
//
//	ed := bezier.NewEditor(
//	    bezier.WithStep(0.005),
//	    bezier.WithClipAlgorithm(bezier.SutherlandHodgman),
//	    bezier.WithRealTimeLoft(true),
//	)
type EditorOption func(*editorOptions)

// editorOptions holds optional configuration for Editor creation.
type editorOptions struct {
	step         float64
	algorithm    ClipAlgorithm
	clipping     bool
	selectRadius float64

	loftMode   loft.Mode
	linear     loft.LinearParams
	revolution loft.RevolutionParams
	color      loft.Vec3
	realTime   bool
}

// defaultEditorOptions returns the default editor options.
func defaultEditorOptions() editorOptions {
	return editorOptions{
		step:         DefaultStep,
		algorithm:    CyrusBeck,
		selectRadius: DefaultSelectRadius,
		loftMode:     loft.ModeLinear,
		linear:       loft.DefaultLinearParams(),
		revolution:   loft.DefaultRevolutionParams(),
		color:        loft.DefaultColor,
	}
}

// WithStep sets the sampling step of new curves. It is clamped to
// [MinStep, MaxStep].
func WithStep(step float64) EditorOption {
	return func(o *editorOptions) {
		o.step = clampStep(step)
	}
}

// WithClipAlgorithm sets the clip algorithm of new curves.
func WithClipAlgorithm(a ClipAlgorithm) EditorOption {
	return func(o *editorOptions) {
		o.algorithm = a
	}
}

// WithClipping enables clipping against the clip window from the start.
func WithClipping(on bool) EditorOption {
	return func(o *editorOptions) {
		o.clipping = on
	}
}

// WithSelectRadius sets the pick distance for control points and clip
// window vertices.
func WithSelectRadius(r float64) EditorOption {
	return func(o *editorOptions) {
		if r > 0 {
			o.selectRadius = r
		}
	}
}

// WithLoftMode sets the initial lofting mode.
func WithLoftMode(m loft.Mode) EditorOption {
	return func(o *editorOptions) {
		o.loftMode = m
	}
}

// WithLinearParams sets the linear extrusion parameters.
func WithLinearParams(p loft.LinearParams) EditorOption {
	return func(o *editorOptions) {
		o.linear = p
	}
}

// WithRevolutionParams sets the revolution parameters.
func WithRevolutionParams(p loft.RevolutionParams) EditorOption {
	return func(o *editorOptions) {
		o.revolution = p
	}
}

// WithSurfaceColor sets the vertex color of lofted surfaces.
func WithSurfaceColor(c loft.Vec3) EditorOption {
	return func(o *editorOptions) {
		o.color = c
	}
}

// WithRealTimeLoft makes Editor.Update regenerate the surface after edits.
func WithRealTimeLoft(on bool) EditorOption {
	return func(o *editorOptions) {
		o.realTime = on
	}
}
