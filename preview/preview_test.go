package preview

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/bezier"
)

func sampleEditor() *bezier.Editor {
	ed := bezier.NewEditor(bezier.WithClipping(true))
	ed.NewCurve(bezier.Pt(-0.5, -0.5), bezier.Pt(0, 0.5), bezier.Pt(0.5, -0.5))
	for _, p := range []bezier.Point{
		bezier.Pt(-0.25, -0.75), bezier.Pt(0.25, -0.75),
		bezier.Pt(0.25, 0.75), bezier.Pt(-0.25, 0.75),
	} {
		ed.AddClipPoint(p)
	}
	return ed
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func TestRender(t *testing.T) {
	img, err := Render(sampleEditor(), WithSize(200, 100), WithHulls(true))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 200, 100) {
		t.Fatalf("Bounds = %v, want 200x100", got)
	}

	bg := DefaultStyle().Background.Color()
	if !sameColor(img.At(1, 1), bg) {
		t.Errorf("corner pixel = %v, want background", img.At(1, 1))
	}
	// Apex control point (0, 0.5) maps to pixel (100, 25).
	if sameColor(img.At(100, 25), bg) {
		t.Error("control point pixel is background")
	}
}

func TestRender_EmptyEditor(t *testing.T) {
	img, err := Render(bezier.NewEditor(), WithSize(16, 16), WithFit(0.1))
	if err != nil {
		t.Fatal(err)
	}
	bg := DefaultStyle().Background.Color()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !sameColor(img.At(x, y), bg) {
				t.Fatalf("pixel (%d,%d) = %v, want background", x, y, img.At(x, y))
			}
		}
	}
}

func TestRender_Errors(t *testing.T) {
	ed := sampleEditor()
	if _, err := Render(ed, WithSize(0, 10)); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width: err = %v, want ErrInvalidSize", err)
	}
	if _, err := Render(ed, WithView(View{MinX: 1, MinY: 0, MaxX: 1, MaxY: 1})); !errors.Is(err, ErrEmptyView) {
		t.Errorf("flat view: err = %v, want ErrEmptyView", err)
	}
}

func TestFit(t *testing.T) {
	ed := bezier.NewEditor()
	ed.NewCurve(bezier.Pt(0, 0), bezier.Pt(4, 2))

	got := fit(ed, 0.25)
	want := View{MinX: -1, MinY: -1, MaxX: 5, MaxY: 3}
	if got != want {
		t.Errorf("fit = %+v, want %+v", got, want)
	}

	if got := fit(bezier.NewEditor(), 0.1); got != DefaultView {
		t.Errorf("fit(empty) = %+v, want DefaultView", got)
	}

	single := bezier.NewEditor()
	single.NewCurve(bezier.Pt(2, 3))
	if got := fit(single, 0.1); got.empty() {
		t.Errorf("fit(single point) = %+v, want non-empty view", got)
	}
}

func TestEncodeAndSavePNG(t *testing.T) {
	ed := sampleEditor()

	var buf bytes.Buffer
	if err := EncodePNG(&buf, ed, WithSize(64, 48)); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("decoded size = %v, want 64x48", img.Bounds())
	}

	name := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(name, ed, WithSize(32, 32)); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		t.Errorf("Stat(%s) = %v, %v; want non-empty file", name, fi, err)
	}
}
