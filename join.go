package bezier

import "fmt"

// Continuity is the order of geometric continuity enforced by a join.
type Continuity int

const (
	// C0 makes the second curve start where the first ends.
	C0 Continuity = iota

	// C1 also aligns the tangent at the junction.
	C1

	// C2 also matches the second derivative at the junction.
	C2
)

// String returns the continuity name.
func (k Continuity) String() string {
	switch k {
	case C0:
		return "C0"
	case C1:
		return "C1"
	case C2:
		return "C2"
	default:
		return unknownStr
	}
}

// minPoints returns the number of control points both curves need.
func (k Continuity) minPoints() int {
	return int(k) + 1
}

// Join edits the leading control points of b so that b continues a with
// continuity k. Curve a is never modified. If either curve has too few
// control points for k, Join returns ErrTooFewPoints and leaves b unchanged;
// joining a curve to itself returns ErrSameCurve.
//
//   - C0: b₀ = aₙ.
//   - C1: C0, then b₁ is moved onto the ray from b₀ along aₙ − aₙ₋₁,
//     keeping its distance from b₀.
//   - C2: C1, then b₂ = 2b₁ − b₀ + (aₙ − 2aₙ₋₁ + aₙ₋₂).
func Join(a, b *Curve, k Continuity) error {
	if k < C0 || k > C2 {
		return fmt.Errorf("bezier: invalid continuity %d", int(k))
	}
	if a == b {
		Logger().Warn("bezier: join refused", "continuity", k, "curve", a.id, "err", ErrSameCurve)
		return ErrSameCurve
	}
	need := k.minPoints()
	if len(a.points) < need || len(b.points) < need {
		Logger().Warn("bezier: join refused",
			"continuity", k, "from", a.id, "to", b.id, "need", need)
		return ErrTooFewPoints
	}

	n := len(a.points) - 1
	ap := a.points
	bp := b.points

	bp[0] = ap[n]

	if k >= C1 {
		tangent := ap[n].Sub(ap[n-1])
		dist := bp[1].Distance(bp[0])
		// A zero tangent leaves b₁ where it is.
		if l := tangent.Length(); l > orientEpsilon {
			bp[1] = bp[0].Add(tangent.Mul(dist / l))
		}
	}

	if k >= C2 {
		second := ap[n].Sub(ap[n-1].Mul(2)).Add(ap[n-2])
		bp[2] = bp[1].Mul(2).Sub(bp[0]).Add(second)
	}

	b.recompute()
	Logger().Info("bezier: curves joined", "continuity", k, "from", a.id, "to", b.id)
	return nil
}

// JoinC0 joins b to a with positional continuity.
func JoinC0(a, b *Curve) error { return Join(a, b, C0) }

// JoinC1 joins b to a with tangent continuity.
func JoinC1(a, b *Curve) error { return Join(a, b, C1) }

// JoinC2 joins b to a with curvature continuity.
func JoinC2(a, b *Curve) error { return Join(a, b, C2) }
