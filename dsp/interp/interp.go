package interp

import "sort"

// Linear2 interpolates between x0 and x1 at frac in [0,1].
func Linear2(frac, x0, x1 float64) float64 {
	return x0 + frac*(x1-x0)
}

// LinearAt evaluates the piecewise-linear interpolant through the knots
// (xp[i], fp[i]) at x. xp must be ascending and len(fp) >= len(xp).
// Queries left of xp[0] return fp[0], right of the last knot the last value.
// It returns 0 when there are no knots.
func LinearAt(x float64, xp, fp []float64) float64 {
	n := len(xp)
	if n == 0 {
		return 0
	}

	if x <= xp[0] {
		return fp[0]
	}

	if x >= xp[n-1] {
		return fp[n-1]
	}

	// First knot >= x; 1 <= hi <= n-1.
	hi := sort.SearchFloat64s(xp, x)
	if xp[hi] == x {
		return fp[hi]
	}

	lo := hi - 1

	return Linear2((x-xp[lo])/(xp[hi]-xp[lo]), fp[lo], fp[hi])
}

// Linear evaluates the interpolant through (xp, fp) at every x and writes the
// results to dst, which must be at least len(x) long.
func Linear(dst, x, xp, fp []float64) {
	if len(x) == 0 {
		return
	}
	_ = dst[len(x)-1] // bounds check hint
	for i, xi := range x {
		dst[i] = LinearAt(xi, xp, fp)
	}
}
