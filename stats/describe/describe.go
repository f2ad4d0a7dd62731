// Package describe computes descriptive statistics of a measurement column.
package describe

import "math"

// Stats holds descriptive statistics. Positions index the input slice.
type Stats struct {
	Count    int // finite values
	Missing  int // NaN or infinite values
	Mean     float64
	Std      float64 // population standard deviation
	Variance float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Range    float64 // Max - Min
	Skewness float64
	Kurtosis float64 // excess kurtosis
}

func emptyStats(missing int) Stats {
	return Stats{
		Missing:  missing,
		Mean:     math.NaN(),
		Std:      math.NaN(),
		Variance: math.NaN(),
		Min:      math.NaN(),
		MinPos:   -1,
		Max:      math.NaN(),
		MaxPos:   -1,
		Range:    math.NaN(),
		Skewness: math.NaN(),
		Kurtosis: math.NaN(),
	}
}

// Calculate computes the statistics of the finite values in a single pass
// using Welford's online algorithm for the moments. Without any finite
// value every statistic is NaN and the positions are -1.
func Calculate(values []float64) Stats {
	var (
		n       int
		missing int
		mean    float64
		m2      float64
		m3      float64
		m4      float64
		maxVal  float64
		maxPos  = -1
		minVal  float64
		minPos  = -1
	)

	for i, x := range values {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			missing++
			continue
		}

		// --- Welford update for moments ---
		n++
		ni := float64(n)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(n-1)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(n-1)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		// --- Min / Max ---
		if maxPos < 0 || x > maxVal {
			maxVal, maxPos = x, i
		}
		if minPos < 0 || x < minVal {
			minVal, minPos = x, i
		}
	}

	if n == 0 {
		return emptyStats(missing)
	}

	nf := float64(n)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Count:    n,
		Missing:  missing,
		Mean:     mean,
		Std:      math.Sqrt(variance),
		Variance: variance,
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Range:    maxVal - minVal,
		Skewness: skewness,
		Kurtosis: kurtosis,
	}
}

// Residuals returns a[i] - b[i] over the common length.
func Residuals(a, b []float64) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	for i := range out {
		out[i] = a[i] - b[i]
	}
	return out
}
