// Package robust provides outlier-resistant location and scale estimators.
package robust

import (
	"math"
	"slices"
)

// Median returns the median of values, ignoring NaNs. It returns NaN when no
// finite-or-infinite value remains. values is not modified.
func Median(values []float64) float64 {
	buf := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			buf = append(buf, v)
		}
	}

	return medianInPlace(buf)
}

// medianInPlace sorts buf and returns its median.
func medianInPlace(buf []float64) float64 {
	n := len(buf)
	if n == 0 {
		return math.NaN()
	}

	slices.Sort(buf)

	if n%2 == 1 {
		return buf[n/2]
	}

	return 0.5 * (buf[n/2-1] + buf[n/2])
}

// MedianAbsDeviation returns median(|x - median(x)|), the unscaled MAD.
func MedianAbsDeviation(values []float64) float64 {
	m := Median(values)
	if math.IsNaN(m) {
		return math.NaN()
	}

	dev := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			dev = append(dev, math.Abs(v-m))
		}
	}

	return medianInPlace(dev)
}

// RollingMedian returns the centered rolling median of values. The window
// covering index i spans [i-window/2, i+window-1-window/2], truncated at the
// series ends. Positions whose window holds fewer than minPeriods non-NaN
// samples are NaN. A minPeriods <= 0 means the full window is required.
func RollingMedian(values []float64, window, minPeriods int) []float64 {
	n := len(values)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	if window < 1 {
		window = 1
	}

	if minPeriods <= 0 || minPeriods > window {
		minPeriods = window
	}

	half := window / 2
	buf := make([]float64, 0, window)

	for i := range values {
		lo := max(0, i-half)
		hi := min(n-1, i+window-1-half)

		buf = buf[:0]
		for _, v := range values[lo : hi+1] {
			if !math.IsNaN(v) {
				buf = append(buf, v)
			}
		}

		if len(buf) < minPeriods {
			out[i] = math.NaN()
			continue
		}

		out[i] = medianInPlace(buf)
	}

	return out
}

// Range returns max - min over the non-NaN values, or NaN if there are none.
func Range(values []float64) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	seen := false

	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}

		seen = true
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	if !seen {
		return math.NaN()
	}

	return hi - lo
}
