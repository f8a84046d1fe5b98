// Package curvefile reads and writes curves in a plain-text format.
//
// Each control point is one line holding its x and y coordinates separated
// by white space. A line holding only ";" ends a curve. Blank lines are
// ignored, so are curves without points.
//
//	0 0
//	0 1
//	1 1
//	;
//	2 0
//	3 1
package curvefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/bezier"
)

// Separator is the line that ends a curve.
const Separator = ";"

// ErrSyntax is wrapped by every ParseError.
var ErrSyntax = errors.New("curvefile: syntax error")

// ParseError reports a malformed line.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("curvefile: line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// Unwrap returns ErrSyntax.
func (e *ParseError) Unwrap() error { return ErrSyntax }

// Read parses every curve from r.
func Read(r io.Reader) ([][]bezier.Point, error) {
	var (
		curves  [][]bezier.Point
		current []bezier.Point
	)
	flush := func() {
		if len(current) > 0 {
			curves = append(curves, current)
		}
		current = nil
	}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch text {
		case "":
			continue
		case Separator:
			flush()
			continue
		}

		p, err := parsePoint(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Msg: err.Error()}
		}
		current = append(current, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("curvefile: read: %w", err)
	}
	flush()
	return curves, nil
}

func parsePoint(text string) (bezier.Point, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return bezier.Point{}, fmt.Errorf("want 2 coordinates, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return bezier.Point{}, errors.New("bad x coordinate")
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return bezier.Point{}, errors.New("bad y coordinate")
	}
	return bezier.Pt(x, y), nil
}

// Write writes curves to w, separating consecutive curves with a
// Separator line. Coordinates use the shortest representation that reads
// back to the same value.
func Write(w io.Writer, curves [][]bezier.Point) error {
	bw := bufio.NewWriter(w)
	for i, c := range curves {
		if i > 0 {
			bw.WriteString(Separator + "\n")
		}
		for _, p := range c {
			bw.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
			bw.WriteByte(' ')
			bw.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
			bw.WriteByte('\n')
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("curvefile: write: %w", err)
	}
	return nil
}

// ReadFile parses the named file.
func ReadFile(name string) ([][]bezier.Point, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("curvefile: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// WriteFile writes curves to the named file, replacing it.
func WriteFile(name string, curves [][]bezier.Point) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("curvefile: %w", err)
	}
	if err := Write(f, curves); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load adds every curve read from r to ed as a new curve and returns how
// many were added.
func Load(ed *bezier.Editor, r io.Reader) (int, error) {
	curves, err := Read(r)
	if err != nil {
		return 0, err
	}
	for _, pts := range curves {
		ed.NewCurve(pts...)
	}
	return len(curves), nil
}

// Save writes the control points of every curve of ed to w.
func Save(ed *bezier.Editor, w io.Writer) error {
	cs := ed.Curves().Curves()
	curves := make([][]bezier.Point, len(cs))
	for i, c := range cs {
		curves[i] = c.ControlPoints()
	}
	return Write(w, curves)
}
