package tangent

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-af/dsp/core"
	"github.com/cwbudde/algo-af/dsp/series"
	"github.com/cwbudde/algo-af/stats/regress"
)

// FitBaseline fits a least-squares line to the samples whose temperature
// lies in r (inclusive).
func FitBaseline(temps, values []float64, r series.Range) (Line, error) {
	fit, err := FitBaselineStats(temps, values, r)
	if err != nil {
		return Line{}, err
	}

	return Line{Slope: fit.Slope, Intercept: fit.Intercept}, nil
}

// FitBaselineStats is FitBaseline returning the full regression result.
func FitBaselineStats(temps, values []float64, r series.Range) (regress.LinearFit, error) {
	if len(temps) != len(values) {
		return regress.LinearFit{}, fmt.Errorf("tangent: temps (%d) != values (%d): %w",
			len(temps), len(values), core.ErrLengthMismatch)
	}

	selTemps, selValues := series.SelectRange(temps, values, r)

	switch len(selTemps) {
	case 0:
		return regress.LinearFit{}, fmt.Errorf("tangent: no samples in %v: %w", r, core.ErrEmptyRange)
	case 1:
		return regress.LinearFit{}, fmt.Errorf("tangent: one sample in %v: %w", r, core.ErrInsufficientPoints)
	}

	fit, err := regress.Linear(selTemps, selValues)
	if err != nil {
		return regress.LinearFit{}, fmt.Errorf("tangent: baseline %v: %w", r, err)
	}

	return fit, nil
}

// MaxSlopeIndex returns the index of the largest |derivative| (the first
// one on ties) shifted by offset and clipped to [0, len(derivative)-1].
// NaN entries are skipped.
func MaxSlopeIndex(derivative []float64, offset int) (int, error) {
	if len(derivative) == 0 {
		return 0, fmt.Errorf("tangent: derivative: %w", core.ErrEmptyInput)
	}

	best := 0
	bestAbs := math.Inf(-1)

	for i, d := range derivative {
		if a := math.Abs(d); a > bestAbs {
			best, bestAbs = i, a
		}
	}

	return core.ClampIndex(best+offset, len(derivative)), nil
}

// TangentAt returns the line through (temps[idx], values[idx]) with slope
// derivative[idx].
func TangentAt(temps, values, derivative []float64, idx int) (Line, error) {
	if !core.SameLength(temps, values, derivative) {
		return Line{}, fmt.Errorf("tangent: temps (%d), values (%d), derivative (%d): %w",
			len(temps), len(values), len(derivative), core.ErrLengthMismatch)
	}

	if idx < 0 || idx >= len(temps) {
		return Line{}, fmt.Errorf("tangent: index %d not in [0, %d): %w", idx, len(temps), core.ErrOutOfBounds)
	}

	slope := derivative[idx]

	return Line{
		Slope:     slope,
		Intercept: values[idx] - slope*temps[idx],
	}, nil
}
