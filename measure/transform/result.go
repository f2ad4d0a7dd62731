package transform

import (
	"math"
	"strconv"

	"github.com/cwbudde/algo-af/dsp/series"
	"github.com/cwbudde/algo-af/measure/tangent"
)

// Temperature is an intersection temperature. Valid is false when the lines
// do not intersect; Value is NaN in that case.
type Temperature struct {
	Value float64
	Valid bool
}

func defined(v float64) Temperature {
	return Temperature{Value: v, Valid: true}
}

func undefined() Temperature {
	return Temperature{Value: math.NaN()}
}

func intersect(a, b tangent.Line) Temperature {
	t, ok := tangent.Intersect(a, b)
	if !ok {
		return undefined()
	}
	return defined(t)
}

// String formats the temperature with one decimal, or "N/A".
func (t Temperature) String() string {
	if !t.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(t.Value, 'f', 1, 64)
}

// Result holds the outcome of one analysis. It is not modified after
// Analyze returns.
type Result struct {
	Start  Temperature // As: tangent ∩ low baseline
	Finish Temperature // Af-tan: tangent ∩ high baseline

	MaxSlopeTemp  float64
	MaxSlopeIndex int
	MaxSlope      float64 // derivative at MaxSlopeIndex

	LowBaseline  tangent.Line
	HighBaseline tangent.Line
	Tangent      tangent.Line

	OutlierCount int
	OutlierMask  []bool

	Raw        series.Series
	Cleaned    series.Series
	Smoothed   series.Series
	Derivative []float64

	Config Config
}

// Complete reports whether both transformation temperatures are defined.
func (r Result) Complete() bool {
	return r.Start.Valid && r.Finish.Valid
}

// Interval returns the transformation interval Af-tan - As. It is undefined
// unless both temperatures are.
func (r Result) Interval() Temperature {
	if !r.Complete() {
		return undefined()
	}
	return defined(r.Finish.Value - r.Start.Value)
}
