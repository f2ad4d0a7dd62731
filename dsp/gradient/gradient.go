// Package gradient estimates the derivative of a sampled curve with respect
// to a non-uniformly spaced abscissa.
package gradient

import (
	"fmt"

	"github.com/cwbudde/algo-af/dsp/core"
)

// Gradient returns dy/dx at every sample.
//
// Interior points use the second-order accurate central difference for
// uneven spacing. With hs = x[i]-x[i-1] and hd = x[i+1]-x[i]:
//
//	dy[i] = (hs²·y[i+1] + (hd²-hs²)·y[i] - hd²·y[i-1]) / (hs·hd·(hs+hd))
//
// The two end points use first-order one-sided differences. At least two
// samples are required.
func Gradient(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("gradient: x (%d) != y (%d): %w", len(x), len(y), core.ErrLengthMismatch)
	}

	n := len(y)
	if n < 2 {
		return nil, fmt.Errorf("gradient: need at least 2 points, got %d: %w", n, core.ErrInsufficientPoints)
	}

	out := make([]float64, n)

	out[0] = (y[1] - y[0]) / (x[1] - x[0])
	out[n-1] = (y[n-1] - y[n-2]) / (x[n-1] - x[n-2])

	for i := 1; i < n-1; i++ {
		hs := x[i] - x[i-1]
		hd := x[i+1] - x[i]

		out[i] = (hs*hs*y[i+1] + (hd*hd-hs*hs)*y[i] - hd*hd*y[i-1]) / (hs * hd * (hs + hd))
	}

	return out, nil
}
