package sphere

import "sort"

// Interp returns the piecewise-linear interpolation of yp at x, where xp
// holds monotonically non-decreasing sample abscissas and yp the matching
// ordinates (len(xp) == len(yp) >= 2; violating this is a programmer
// error).
//
// The lookup clamps instead of extrapolating: x at or below xp[0] returns
// yp[0], x at or above the last abscissa returns the last ordinate. This
// is what makes inverse-CDF sampling safe at the domain edges, where a
// scalar of exactly 0 or arbitrarily close to 1 must still map to a valid
// angle.
//
// Complexity: O(log len(xp)) per call.
func Interp(x float64, xp, yp []float64) float64 {
	last := len(xp) - 1
	if x <= xp[0] {
		return yp[0]
	}
	if x >= xp[last] {
		return yp[last]
	}

	// First index with xp[i] >= x; the clamps above pin i to [1, last].
	i := sort.SearchFloat64s(xp, x)
	if xp[i] == x {
		return yp[i]
	}
	t := (x - xp[i-1]) / (xp[i] - xp[i-1])
	return yp[i-1] + t*(yp[i]-yp[i-1])
}
