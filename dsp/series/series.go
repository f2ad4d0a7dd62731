package series

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-af/dsp/core"
)

// Series is an ordered temperature series. Temps are strictly ascending and
// Values[i] is the measurement at Temps[i].
type Series struct {
	Temps  []float64
	Values []float64
}

// Range is an inclusive temperature window [Start, End].
type Range struct {
	Start float64
	End   float64
}

// Contains reports whether t lies inside the window.
func (r Range) Contains(t float64) bool {
	return t >= r.Start && t <= r.End
}

// Span returns End - Start.
func (r Range) Span() float64 {
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Start, r.End)
}

// New validates temps and values and returns a Series that owns copies of
// both slices.
func New(temps, values []float64) (Series, error) {
	if err := Validate(temps, values); err != nil {
		return Series{}, err
	}

	return Series{Temps: core.Clone(temps), Values: core.Clone(values)}, nil
}

// Validate checks the Series invariants: equal lengths, finite samples and
// strictly ascending temperatures.
func Validate(temps, values []float64) error {
	if len(temps) != len(values) {
		return fmt.Errorf("series: temps (%d) != values (%d): %w",
			len(temps), len(values), core.ErrLengthMismatch)
	}

	for i := range temps {
		if !core.IsFinite(temps[i]) || !core.IsFinite(values[i]) {
			return fmt.Errorf("series: non-finite sample at index %d: %w", i, core.ErrInvalidParameter)
		}

		if i > 0 && temps[i] <= temps[i-1] {
			return fmt.Errorf("series: temperatures not strictly ascending at index %d (%g after %g): %w",
				i, temps[i], temps[i-1], core.ErrInvalidParameter)
		}
	}

	return nil
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.Temps)
}

// Clone returns a deep copy of s.
func (s Series) Clone() Series {
	return Series{Temps: core.Clone(s.Temps), Values: core.Clone(s.Values)}
}

// WithValues returns a Series sharing the temperatures of s with new values.
func (s Series) WithValues(values []float64) Series {
	return Series{Temps: s.Temps, Values: values}
}

// Bounds returns the first and last temperature. It returns NaNs for an
// empty series.
func (s Series) Bounds() Range {
	if len(s.Temps) == 0 {
		return Range{Start: math.NaN(), End: math.NaN()}
	}

	return Range{Start: s.Temps[0], End: s.Temps[len(s.Temps)-1]}
}

// Select returns copies of the samples whose temperature lies in r.
func (s Series) Select(r Range) (temps, values []float64) {
	return SelectRange(s.Temps, s.Values, r)
}

// SelectRange returns copies of the samples of (temps, values) whose
// temperature lies in r. Extra entries of the longer slice are ignored.
func SelectRange(temps, values []float64, r Range) (selTemps, selValues []float64) {
	n := min(len(temps), len(values))
	for i := range n {
		if r.Contains(temps[i]) {
			selTemps = append(selTemps, temps[i])
			selValues = append(selValues, values[i])
		}
	}

	return selTemps, selValues
}

// GroupByTemperature averages all values recorded at the same temperature,
// drops NaN values and returns the result sorted by temperature. A
// temperature whose values are all NaN does not appear in the output.
func GroupByTemperature(temps, values []float64) (Series, error) {
	if len(temps) != len(values) {
		return Series{}, fmt.Errorf("series: temps (%d) != values (%d): %w",
			len(temps), len(values), core.ErrLengthMismatch)
	}

	type acc struct {
		sum   float64
		count int
	}

	groups := make(map[float64]*acc, len(temps))
	keys := make([]float64, 0, len(temps))

	for i, t := range temps {
		if math.IsNaN(t) {
			continue
		}

		g, ok := groups[t]
		if !ok {
			g = &acc{}
			groups[t] = g
			keys = append(keys, t)
		}

		if math.IsNaN(values[i]) {
			continue
		}

		g.sum += values[i]
		g.count++
	}

	slices.Sort(keys)

	out := Series{
		Temps:  make([]float64, 0, len(keys)),
		Values: make([]float64, 0, len(keys)),
	}

	for _, k := range keys {
		g := groups[k]
		if g.count == 0 {
			continue
		}

		out.Temps = append(out.Temps, k)
		out.Values = append(out.Values, g.sum/float64(g.count))
	}

	return out, nil
}
