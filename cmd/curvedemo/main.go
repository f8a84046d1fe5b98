// Command curvedemo loads Bézier curves, clips them against a window,
// lofts the active curve and writes a PNG preview and an OBJ mesh.
//
// Usage:
//
//	curvedemo -curves curves.txt -window window.txt -config preset.toml \
//	    -join c1 -png out.png -obj out.obj
//
// Without -curves a built-in pair of curves is used; without -window a
// centered square is used.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/bezier"
	"github.com/gogpu/bezier/config"
	"github.com/gogpu/bezier/curvefile"
	"github.com/gogpu/bezier/loft"
	"github.com/gogpu/bezier/preview"
)

func main() {
	var (
		curves  = flag.String("curves", "", "curve file (x y per line, ';' between curves)")
		window  = flag.String("window", "", "clip window file (first curve is used)")
		preset  = flag.String("config", "", "TOML editor preset")
		join    = flag.String("join", "", "join each curve to the previous one: c0, c1 or c2")
		mode    = flag.String("loft", "", "loft mode override: linear, revolution or generalized")
		size    = flag.Int("size", 800, "preview size in pixels")
		pngOut  = flag.String("png", "curves.png", "preview output file, empty to skip")
		objOut  = flag.String("obj", "", "OBJ output file, empty to skip")
		hulls   = flag.Bool("hulls", false, "draw convex hulls")
		fit     = flag.Bool("fit", false, "fit the view to the curves instead of [-1,1]")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		bezier.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ed, err := newEditor(*preset)
	if err != nil {
		log.Fatalf("Failed to load preset: %v", err)
	}
	if err := loadCurves(ed, *curves); err != nil {
		log.Fatalf("Failed to load curves: %v", err)
	}
	if err := loadWindow(ed, *window); err != nil {
		log.Fatalf("Failed to load window: %v", err)
	}
	if *join != "" {
		if err := joinAll(ed, *join); err != nil {
			log.Fatalf("Failed to join curves: %v", err)
		}
	}
	if *mode != "" {
		m, err := loft.ParseMode(*mode)
		if err != nil {
			log.Fatal(err)
		}
		ed.SetLoftMode(m)
	}

	report(ed)

	if *pngOut != "" {
		opts := []preview.Option{preview.WithSize(*size, *size), preview.WithHulls(*hulls)}
		if *fit {
			opts = append(opts, preview.WithFit(0.1))
		}
		if err := preview.SavePNG(*pngOut, ed, opts...); err != nil {
			log.Fatalf("Failed to save preview: %v", err)
		}
		log.Printf("Preview saved to %s (%dx%d)\n", *pngOut, *size, *size)
	}

	if *objOut != "" {
		if err := writeOBJ(ed, *objOut); err != nil {
			log.Fatalf("Failed to loft: %v", err)
		}
	}
}

func newEditor(preset string) (*bezier.Editor, error) {
	if preset == "" {
		return bezier.NewEditor(bezier.WithClipping(true)), nil
	}
	p, err := config.LoadFile(preset)
	if err != nil {
		return nil, err
	}
	return bezier.NewEditor(p.Options()...), nil
}

func loadCurves(ed *bezier.Editor, name string) error {
	if name == "" {
		ed.NewCurve(bezier.Pt(-0.8, -0.4), bezier.Pt(-0.5, 0.6), bezier.Pt(0, 0.6), bezier.Pt(0.2, 0))
		ed.NewCurve(bezier.Pt(0.3, 0.1), bezier.Pt(0.5, -0.5), bezier.Pt(0.8, 0.4))
		return nil
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	n, err := curvefile.Load(ed, f)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: no curves", name)
	}
	return nil
}

func loadWindow(ed *bezier.Editor, name string) error {
	pts := []bezier.Point{
		bezier.Pt(-0.5, -0.5), bezier.Pt(0.5, -0.5),
		bezier.Pt(0.5, 0.5), bezier.Pt(-0.5, 0.5),
	}
	if name != "" {
		curves, err := curvefile.ReadFile(name)
		if err != nil {
			return err
		}
		if len(curves) == 0 {
			return fmt.Errorf("%s: no window", name)
		}
		pts = curves[0]
	}
	for _, p := range pts {
		ed.AddClipPoint(p)
	}
	return nil
}

func joinAll(ed *bezier.Editor, name string) error {
	var k bezier.Continuity
	switch strings.ToLower(name) {
	case "c0":
		k = bezier.C0
	case "c1":
		k = bezier.C1
	case "c2":
		k = bezier.C2
	default:
		return fmt.Errorf("unknown continuity %q", name)
	}
	cs := ed.Curves().Curves()
	for i := 1; i < len(cs); i++ {
		if err := ed.Join(cs[i-1].ID(), cs[i].ID(), k); err != nil {
			return fmt.Errorf("curve %d to %d: %w", cs[i-1].ID(), cs[i].ID(), err)
		}
	}
	return nil
}

func report(ed *bezier.Editor) {
	w := ed.Window()
	log.Printf("Window: %d vertices, convex=%v, area=%.4f\n", w.Len(), w.IsConvex(), w.Area())

	cs := ed.Curves().Curves()
	for i, c := range cs {
		res := ed.Display(c)
		visible := len(res.Polylines)
		if len(res.Polygon) > 0 {
			visible = 1
		}
		log.Printf("Curve %d: degree %d, %d samples, closed=%v, %s clipped=%v (%d visible parts)\n",
			c.ID(), c.Degree(), len(c.Samples()), c.IsClosed(), res.Algorithm, res.Clipped, visible)
		for _, o := range cs[i+1:] {
			if c.IntersectsWith(o) {
				log.Printf("Curve %d: hull overlaps curve %d\n", c.ID(), o.ID())
			}
		}
	}
}

func writeOBJ(ed *bezier.Editor, name string) error {
	s, err := ed.Loft()
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := s.WriteOBJ(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("Surface saved to %s (%d vertices, %d triangles, %s)\n",
		name, len(s.Vertices), s.TriangleCount(), ed.Lofter().Mode())
	return nil
}
