// Package regress implements ordinary least-squares line fitting.
package regress

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-af/dsp/core"
)

// LinearFit is the result of a straight-line least-squares fit
// y = Slope*x + Intercept.
type LinearFit struct {
	Slope     float64
	Intercept float64
	RSquared  float64 // coefficient of determination
	StdErr    float64 // residual standard error, sqrt(SSE/(n-2)); 0 for n == 2
	N         int
}

// Predict evaluates the fitted line at x.
func (f LinearFit) Predict(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// Linear fits a straight line to (x, y) by ordinary least squares.
//
// The sums are formed about the sample means, which keeps the fit accurate
// for temperatures far from zero.
func Linear(x, y []float64) (LinearFit, error) {
	if len(x) != len(y) {
		return LinearFit{}, fmt.Errorf("regress: x (%d) != y (%d): %w", len(x), len(y), core.ErrLengthMismatch)
	}

	n := len(x)
	if n == 0 {
		return LinearFit{}, fmt.Errorf("regress: %w", core.ErrEmptyInput)
	}
	if n < 2 {
		return LinearFit{}, fmt.Errorf("regress: need at least 2 points, got %d: %w", n, core.ErrInsufficientPoints)
	}

	mx, my := mean(x), mean(y)

	dx := make([]float64, n)
	dy := make([]float64, n)
	for i := range x {
		dx[i] = x[i] - mx
		dy[i] = y[i] - my
	}

	prod := make([]float64, n)

	vecmath.MulBlock(prod, dx, dx)
	sxx := sum(prod)

	vecmath.MulBlock(prod, dx, dy)
	sxy := sum(prod)

	vecmath.MulBlock(prod, dy, dy)
	syy := sum(prod)

	if sxx == 0 {
		return LinearFit{}, fmt.Errorf("regress: all x values equal (%g): %w", mx, core.ErrInvalidParameter)
	}

	slope := sxy / sxx
	fit := LinearFit{
		Slope:     slope,
		Intercept: my - slope*mx,
		N:         n,
	}

	sse := math.Max(syy-slope*sxy, 0)

	switch {
	case syy == 0:
		fit.RSquared = 1
	default:
		fit.RSquared = 1 - sse/syy
	}

	if n > 2 {
		fit.StdErr = math.Sqrt(sse / float64(n-2))
	}

	return fit, nil
}

func mean(v []float64) float64 {
	return sum(v) / float64(len(v))
}

// sum uses Kahan compensation.
func sum(v []float64) float64 {
	var s, c float64
	for _, x := range v {
		y := x - c
		t := s + y
		c = (t - s) - y
		s = t
	}
	return s
}
