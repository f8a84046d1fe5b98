package bezier

import "math"

// EvalDirect evaluates the Bézier curve with the given control points at t
// using the Bernstein polynomial sum
//
//	B(t) = Σ C(n,i) tⁱ (1-t)ⁿ⁻ⁱ Pᵢ
//
// table supplies the binomial coefficients and grows as needed; nil uses a
// temporary table. Fewer than 2 control points evaluate to the zero point.
func EvalDirect(points []Point, t float64, table *BinomialTable) Point {
	n := len(points) - 1
	if n < 1 {
		return Point{}
	}
	if table == nil {
		table = NewBinomialTable(n)
	}
	table.Ensure(n)

	var p Point
	for i, cp := range points {
		bernstein := table.Coeff(n, i) * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
		p = p.Add(cp.Mul(bernstein))
	}
	return p
}

// EvalDeCasteljau evaluates the Bézier curve at t by repeated linear
// interpolation of the control polygon.
// Fewer than 2 control points evaluate to the zero point.
func EvalDeCasteljau(points []Point, t float64) Point {
	if len(points) < 2 {
		return Point{}
	}
	tmp := make([]Point, len(points))
	return deCasteljau(points, tmp, t)
}

// deCasteljau evaluates at t using tmp (len(points)) as scratch space.
func deCasteljau(points, tmp []Point, t float64) Point {
	copy(tmp, points)
	n := len(points) - 1
	for j := 1; j <= n; j++ {
		for i := 0; i <= n-j; i++ {
			tmp[i] = tmp[i].Mul(1 - t).Add(tmp[i+1].Mul(t))
		}
	}
	return tmp[0]
}

// SampleDirect samples the curve at t = 0, step, 2·step, … while t <= 1
// using the Bernstein sum, then appends the last control point. The
// parameter is accumulated in floating point, so the loop may or may not
// produce t = 1 itself; the appended endpoint guarantees the curve ends on
// Pₙ. It returns nil for fewer than 2 control points or a non-positive step.
func SampleDirect(points []Point, step float64, table *BinomialTable) []Point {
	n := len(points) - 1
	if n < 1 || !(step > 0) {
		return nil
	}
	if table == nil {
		table = NewBinomialTable(n)
	}
	table.Ensure(n)

	out := make([]Point, 0, sampleCap(step))
	for t := 0.0; t <= 1; t += step {
		out = append(out, EvalDirect(points, t, table))
	}
	return append(out, points[n])
}

// SampleDeCasteljau is SampleDirect using De Casteljau's algorithm.
func SampleDeCasteljau(points []Point, step float64) []Point {
	n := len(points) - 1
	if n < 1 || !(step > 0) {
		return nil
	}

	tmp := make([]Point, len(points))
	out := make([]Point, 0, sampleCap(step))
	for t := 0.0; t <= 1; t += step {
		out = append(out, deCasteljau(points, tmp, t))
	}
	return append(out, points[n])
}

// sampleCap estimates the number of samples produced for step.
func sampleCap(step float64) int {
	return int(1/step) + 2
}
