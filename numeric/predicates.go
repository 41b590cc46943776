package numeric

import "math"

// PositiveInfinity returns +Inf, used as the default unbounded upper bound.
func PositiveInfinity() float64 { return math.Inf(1) }

// NegativeInfinity returns -Inf, used as the default unbounded lower bound.
func NegativeInfinity() float64 { return math.Inf(-1) }

// IsZero reports whether v is within tol of zero.
func IsZero(v, tol float64) bool {
	return math.Abs(v) <= tol
}

// IsPositive reports whether v exceeds tol (strictly, structurally nonzero).
func IsPositive(v, tol float64) bool {
	return v > tol
}

// IsNegative reports whether v is below -tol.
func IsNegative(v, tol float64) bool {
	return v < -tol
}

// AreEqual reports whether a and b differ by no more than tol.
// Handles the ±Inf sentinels: equal infinities of the same sign compare
// equal regardless of tol, since the subtraction would otherwise be NaN.
func AreEqual(a, b, tol float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= tol
}

// LT reports whether a is strictly less than b, beyond tol.
func LT(a, b, tol float64) bool {
	if a == b {
		return false
	}

	return !AreEqual(a, b, tol) && a < b
}

// GT reports whether a is strictly greater than b, beyond tol.
func GT(a, b, tol float64) bool {
	if a == b {
		return false
	}

	return !AreEqual(a, b, tol) && a > b
}

// LTE reports whether a is less than or equal to b within tol.
func LTE(a, b, tol float64) bool {
	return LT(a, b, tol) || AreEqual(a, b, tol)
}

// GTE reports whether a is greater than or equal to b within tol.
func GTE(a, b, tol float64) bool {
	return GT(a, b, tol) || AreEqual(a, b, tol)
}
