package core

import "math"

const defaultEpsilon = 1e-12

// Default tolerances of IsClose.
const (
	DefaultRelTol = 1e-5
	DefaultAbsTol = 1e-8
)

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClampIndex limits idx to the valid index range [0, n-1] of a slice of
// length n. It returns 0 for n <= 0.
func ClampIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}

	return max(0, min(idx, n-1))
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsClose reports whether |a-b| <= atol + rtol*|b|. Non-positive tolerances
// select DefaultRelTol and DefaultAbsTol. The test is asymmetric in b, which
// acts as the reference value.
func IsClose(a, b, rtol, atol float64) bool {
	if rtol <= 0 {
		rtol = DefaultRelTol
	}

	if atol <= 0 {
		atol = DefaultAbsTol
	}

	if a == b {
		return true
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// AllFinite reports whether every element of data is finite.
func AllFinite(data []float64) bool {
	for _, v := range data {
		if !IsFinite(v) {
			return false
		}
	}

	return true
}
