package outlier

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-af/dsp/core"
	"github.com/cwbudde/algo-af/dsp/interp"
	"github.com/cwbudde/algo-af/stats/robust"
)

const (
	// MinWindow is the smallest rolling window used for detection.
	MinWindow = 11
	// minBoundary is the smallest number of protected samples at each end.
	minBoundary = 3
	// fallbackScaleFraction of the value range replaces a zero MAD.
	fallbackScaleFraction = 0.01
	// fallbackScaleFloor is the lower bound of the substitute MAD.
	fallbackScaleFloor = 1.0
)

// Config holds the detection parameters.
type Config struct {
	Window        int     // rolling median window; forced odd and >= MinWindow
	Threshold     float64 // MAD multiplier
	MaxIterations int     // maximum number of detection passes
}

// DefaultConfig returns window 11, threshold 5 and 3 passes.
func DefaultConfig() Config {
	return Config{
		Window:        11,
		Threshold:     5.0,
		MaxIterations: 3,
	}
}

// Validate reports invalid parameters. Any window is accepted because it is
// corrected by EffectiveWindow.
func (c Config) Validate() error {
	if !(c.Threshold > 0) || math.IsInf(c.Threshold, 0) {
		return fmt.Errorf("outlier: threshold must be a positive number: %v: %w", c.Threshold, core.ErrInvalidParameter)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("outlier: max iterations must be >= 0: %d: %w", c.MaxIterations, core.ErrInvalidParameter)
	}
	return nil
}

// EffectiveWindow returns the window actually used for a requested size:
// at least MinWindow and odd.
func EffectiveWindow(window int) int {
	window = max(window, MinWindow)
	if window%2 == 0 {
		window++
	}
	return window
}

// Result is the outcome of Remove.
type Result struct {
	Values     []float64 // cleaned values, same length as the input
	Mask       []bool    // true where a value was replaced
	Count      int       // number of true entries in Mask
	Iterations int       // detection passes that ran
}

// Remove detects outliers in values and replaces them. temps is only used
// to check that the series is consistent; interpolation runs over sample
// positions. The input slices are not modified.
//
// Series shorter than EffectiveWindow(cfg.Window)+2 samples are returned
// unchanged with an all-false mask.
func Remove(temps, values []float64, cfg Config) (Result, error) {
	if len(temps) != len(values) {
		return Result{}, fmt.Errorf("outlier: temps (%d) != values (%d): %w",
			len(temps), len(values), core.ErrLengthMismatch)
	}

	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	n := len(values)
	window := EffectiveWindow(cfg.Window)

	res := Result{
		Values: core.Clone(values),
		Mask:   make([]bool, n),
	}

	if n < window+2 {
		return res, nil
	}

	boundary := max(window/2, minBoundary)
	minPeriods := window/2 + 1

	for res.Iterations < cfg.MaxIterations {
		res.Iterations++

		median := robust.RollingMedian(res.Values, window, minPeriods)

		deviations := make([]float64, n)
		for i, v := range res.Values {
			deviations[i] = math.Abs(v - median[i])
		}

		scale, ok := madScale(deviations, res.Values, res.Mask, boundary)
		if !ok {
			break
		}

		limit := cfg.Threshold * scale

		found := 0
		for i := boundary; i < n-boundary; i++ {
			if res.Mask[i] {
				continue
			}

			if deviations[i] > limit {
				res.Mask[i] = true
				found++
			}
		}

		if found == 0 {
			break
		}

		res.Count += found
		repair(res.Values, values, res.Mask)
	}

	return res, nil
}

// madScale returns the median of the deviations of interior, unflagged
// samples. A zero or undefined MAD is replaced by
// max(1% of the value range, 1). ok is false when no deviation qualifies.
func madScale(deviations, working []float64, mask []bool, boundary int) (scale float64, ok bool) {
	n := len(deviations)
	inner := make([]float64, 0, n)

	for i := boundary; i < n-boundary; i++ {
		if mask[i] || math.IsNaN(deviations[i]) {
			continue
		}
		inner = append(inner, deviations[i])
	}

	if len(inner) == 0 {
		return 0, false
	}

	scale = robust.Median(inner)
	if scale == 0 || math.IsNaN(scale) {
		scale = math.Max(robust.Range(working)*fallbackScaleFraction, fallbackScaleFloor)
	}

	return scale, true
}

// repair overwrites every masked position of working with the linear
// interpolation, over sample positions, of the original values at the
// unmasked positions. Nothing is changed when fewer than two positions are
// unmasked.
func repair(working, original []float64, mask []bool) {
	knots := make([]float64, 0, len(mask))
	knotValues := make([]float64, 0, len(mask))

	for i, flagged := range mask {
		if !flagged {
			knots = append(knots, float64(i))
			knotValues = append(knotValues, original[i])
		}
	}

	if len(knots) < 2 {
		return
	}

	for i, flagged := range mask {
		if flagged {
			working[i] = interp.LinearAt(float64(i), knots, knotValues)
		}
	}
}
