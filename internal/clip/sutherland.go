package clip

import "math"

// ClockwiseOrder returns window in clockwise order, reversing counter-clockwise
// input. Degenerate windows are returned unchanged.
func ClockwiseOrder(window []Point) []Point {
	if WindingOf(window) == CounterClockwise {
		return Reversed(window)
	}
	return window
}

// inside reports whether p is on the interior side of the clockwise edge a-b.
func inside(p, a, b Point) bool {
	return b.Sub(a).Cross(p.Sub(a)) <= 0
}

// intersect returns the intersection of line s-e with line a-b using the
// two-line determinant formula. Near-parallel lines return s.
func intersect(s, e, a, b Point) Point {
	dc := a.Sub(b)
	dp := s.Sub(e)
	den := dc.X*dp.Y - dc.Y*dp.X
	if math.Abs(den) < epsilon*epsilon {
		return s
	}
	n1 := a.Cross(b)
	n2 := s.Cross(e)
	return Point{
		X: (n1*dp.X - n2*dc.X) / den,
		Y: (n1*dp.Y - n2*dc.Y) / den,
	}
}

// SutherlandHodgman clips the subject polygon against window, one window
// edge at a time. The window may have either winding; it is normalized to
// clockwise order so the interior lies to the right of every edge. The
// result is exact only for convex windows.
func SutherlandHodgman(subject, window []Point) []Point {
	if len(subject) == 0 || len(window) < 3 {
		return nil
	}
	win := ClockwiseOrder(window)

	output := make([]Point, len(subject))
	copy(output, subject)

	for i, a := range win {
		b := win[(i+1)%len(win)]

		input := output
		if len(input) == 0 {
			return nil
		}
		output = make([]Point, 0, len(input)+2)

		s := input[len(input)-1]
		for _, e := range input {
			switch {
			case inside(e, a, b):
				if !inside(s, a, b) {
					output = append(output, intersect(s, e, a, b))
				}
				output = append(output, e)
			case inside(s, a, b):
				output = append(output, intersect(s, e, a, b))
			}
			s = e
		}
	}

	if len(output) == 0 {
		return nil
	}
	return output
}
