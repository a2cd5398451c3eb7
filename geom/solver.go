package geom

import "math"

// Polynomial root solving for curve extrema.
// Based on the numerically stable formulation used by kurbo.

// SolveQuadratic finds real roots of a*x^2 + b*x + c = 0 in ascending order.
// A vanishing leading coefficient degrades to the linear case; all-zero
// coefficients report a single root at 0.
func SolveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		if isFinite(root) {
			return []float64{root}
		}
		if b == 0 && c == 0 {
			return []float64{0}
		}
		return nil
	}

	arg := sc1*sc1 - 4*sc0
	var root1 float64
	switch {
	case !isFinite(arg):
		root1 = -sc1
	case arg < 0:
		return nil
	case arg == 0:
		return []float64{-0.5 * sc1}
	default:
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}

	root2 := sc0 / root1
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// SolveQuadraticInUnitInterval returns the roots of a*x^2 + b*x + c = 0
// strictly inside (0, 1).
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	roots := SolveQuadratic(a, b, c)
	out := roots[:0]
	for _, r := range roots {
		if r > 0 && r < 1 {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// clamp01 limits t to the unit interval.
func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
