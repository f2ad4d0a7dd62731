package transform

import (
	"fmt"

	"github.com/cwbudde/algo-af/dsp/core"
	"github.com/cwbudde/algo-af/dsp/filter/savgol"
	"github.com/cwbudde/algo-af/dsp/gradient"
	"github.com/cwbudde/algo-af/dsp/outlier"
	"github.com/cwbudde/algo-af/dsp/series"
	"github.com/cwbudde/algo-af/measure/tangent"
)

// MinPoints is the smallest series Analyze accepts.
const MinPoints = 10

// defaultRangeFraction of the temperature span is used for each default
// baseline window.
const defaultRangeFraction = 0.15

// Analyzer runs the tangent-intersection analysis with a fixed
// configuration. The smoothing filter is designed once. An Analyzer is safe
// for concurrent use.
type Analyzer struct {
	cfg    Config
	filter *savgol.Filter
}

// NewAnalyzer validates the configuration built from opts and designs the
// smoothing filter.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	filter, err := savgol.New(cfg.SmoothingWindow, cfg.SmoothingOrder)
	if err != nil {
		return nil, fmt.Errorf("transform: smoothing: %w", err)
	}

	return &Analyzer{cfg: cfg, filter: filter}, nil
}

// Config returns the effective configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Analyze is a one-shot analysis of s. low and high select the samples used
// for the low and high temperature baselines.
func Analyze(s series.Series, low, high series.Range, opts ...Option) (Result, error) {
	a, err := NewAnalyzer(opts...)
	if err != nil {
		return Result{}, err
	}

	return a.Analyze(s, low, high)
}

// Analyze runs the full chain on s. Component errors are returned wrapped so
// errors.Is reports the original kind. Parallel lines are not an error: the
// corresponding temperature is undefined.
func (a *Analyzer) Analyze(s series.Series, low, high series.Range) (Result, error) {
	if len(s.Temps) != len(s.Values) {
		return Result{}, fmt.Errorf("transform: temps (%d) != values (%d): %w",
			len(s.Temps), len(s.Values), core.ErrLengthMismatch)
	}

	n := len(s.Temps)
	if n < MinPoints {
		return Result{}, fmt.Errorf("transform: need at least %d points, got %d: %w",
			MinPoints, n, core.ErrInsufficientPoints)
	}

	if err := series.Validate(s.Temps, s.Values); err != nil {
		return Result{}, fmt.Errorf("transform: %w", err)
	}

	temps := s.Temps

	cleaned, err := outlier.Remove(temps, s.Values, a.cfg.Outlier)
	if err != nil {
		return Result{}, fmt.Errorf("transform: outlier removal: %w", err)
	}

	smoothed, err := a.filter.Apply(cleaned.Values)
	if err != nil {
		return Result{}, fmt.Errorf("transform: smoothing: %w", err)
	}

	deriv, err := gradient.Gradient(temps, smoothed)
	if err != nil {
		return Result{}, fmt.Errorf("transform: derivative: %w", err)
	}

	idx, err := tangent.MaxSlopeIndex(deriv, a.cfg.SlopeOffset)
	if err != nil {
		return Result{}, fmt.Errorf("transform: steepest point: %w", err)
	}

	tan, err := tangent.TangentAt(temps, smoothed, deriv, idx)
	if err != nil {
		return Result{}, fmt.Errorf("transform: tangent: %w", err)
	}

	lowLine, err := tangent.FitBaseline(temps, smoothed, low)
	if err != nil {
		return Result{}, fmt.Errorf("transform: low baseline: %w", err)
	}

	highLine, err := tangent.FitBaseline(temps, smoothed, high)
	if err != nil {
		return Result{}, fmt.Errorf("transform: high baseline: %w", err)
	}

	return Result{
		Start:         intersect(tan, lowLine),
		Finish:        intersect(tan, highLine),
		MaxSlopeTemp:  temps[idx],
		MaxSlopeIndex: idx,
		MaxSlope:      deriv[idx],
		LowBaseline:   lowLine,
		HighBaseline:  highLine,
		Tangent:       tan,
		OutlierCount:  cleaned.Count,
		OutlierMask:   cleaned.Mask,
		Raw:           s.Clone(),
		Cleaned:       series.Series{Temps: core.Clone(temps), Values: cleaned.Values},
		Smoothed:      series.Series{Temps: core.Clone(temps), Values: smoothed},
		Derivative:    deriv,
		Config:        a.cfg,
	}, nil
}

// DefaultRanges proposes baseline windows covering the first and last 15 %
// of the temperature span of temps.
func DefaultRanges(temps []float64) (low, high series.Range, err error) {
	if len(temps) == 0 {
		return series.Range{}, series.Range{}, fmt.Errorf("transform: temps: %w", core.ErrEmptyInput)
	}

	lo, hi := temps[0], temps[0]
	for _, t := range temps[1:] {
		lo = min(lo, t)
		hi = max(hi, t)
	}

	span := (hi - lo) * defaultRangeFraction

	return series.Range{Start: lo, End: lo + span}, series.Range{Start: hi - span, End: hi}, nil
}
