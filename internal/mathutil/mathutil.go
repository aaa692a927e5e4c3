// Package mathutil holds the tolerance comparisons shared by the numeric subjects.
package mathutil // import "github.com/gotruth/truth/internal/mathutil"

import "math"

// Float is the set of floating-point types the comparisons accept.
type Float interface {
	~float32 | ~float64
}

// EqualWithinTolerance reports whether left and right are finite values
// within tolerance of each other.
//
// Both this function and NotEqualWithinTolerance return false if either
// left or right is infinite or NaN. The sign of tolerance is ignored.
func EqualWithinTolerance[F Float](left, right, tolerance F) bool {
	l, r := float64(left), float64(right)
	if !isFinite(l) || !isFinite(r) {
		return false
	}
	return math.Abs(l-r) <= math.Abs(float64(tolerance))
}

// NotEqualWithinTolerance reports whether left and right are finite values
// that are not within tolerance of each other.
func NotEqualWithinTolerance[F Float](left, right, tolerance F) bool {
	l, r := float64(left), float64(right)
	if !isFinite(l) || !isFinite(r) {
		return false
	}
	return math.Abs(l-r) > math.Abs(float64(tolerance))
}

// IntWithinTolerance reports whether |left-right| <= tolerance without
// overflowing, for a non-negative tolerance.
func IntWithinTolerance(left, right, tolerance int64) bool {
	if tolerance < 0 {
		return false
	}
	// Subtraction of two int64 values of opposite signs may overflow;
	// uint64 holds every possible magnitude.
	var diff uint64
	if left >= right {
		diff = uint64(left) - uint64(right)
	} else {
		diff = uint64(right) - uint64(left)
	}
	return diff <= uint64(tolerance)
}

func isFinite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
