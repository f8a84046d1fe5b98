// Package bezier is the geometry core of a 2D/3D Bézier curve editor.
//
// # Overview
//
// bezier evaluates Bézier curves of any degree, computes convex hulls of
// their control polygons, clips sampled curves against a polygon window,
// joins curves with C0, C1 or C2 continuity, and lofts curves into 3D
// triangle meshes through the loft sub-package.
//
// # Quick Start
//
//	import "github.com/gogpu/bezier"
//
//	ed := bezier.NewEditor(bezier.WithStep(0.01))
//	c := ed.NewCurve(bezier.Pt(0, 0), bezier.Pt(0, 1), bezier.Pt(1, 1), bezier.Pt(1, 0))
//
//	// Sample points from the Bernstein form.
//	pts := c.Direct()
//
//	// Clip against a convex window.
//	ed.Window().Add(bezier.Pt(0.2, 0.2))
//	...
//	res, err := c.Clip(ed.Window())
//
//	// Extrude into a mesh.
//	surface, err := ed.Loft()
//
// # Evaluation
//
// Curves are sampled at t = 0, step, 2·step, … while t ≤ 1 by either the
// direct Bernstein sum ([SampleDirect]) or De Casteljau's algorithm
// ([SampleDeCasteljau]); the last control point is always appended so the
// sampled curve ends exactly on it. Both methods agree to within floating
// point error.
//
// # Execution model
//
// Every edit of a [Curve] recomputes its samples in full. Nothing runs in
// the background and no type is safe for concurrent use, except the
// package logger.
//
// # Coordinate System
//
// Orientation names assume a y-up frame: [CounterClockwise] is a left
// turn. Clip windows may be given in either winding.
//
// # Related packages
//
//   - loft: surfaces, GPU vertex layouts and OBJ export
//   - curvefile: plain-text curve files
//   - config: TOML editor presets
//   - preview: PNG snapshots drawn with gg
package bezier

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
