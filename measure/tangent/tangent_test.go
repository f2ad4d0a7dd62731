package tangent

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-af/dsp/core"
	"github.com/cwbudde/algo-af/dsp/series"
	"github.com/cwbudde/algo-af/internal/testutil"
)

func TestLineAt(t *testing.T) {
	l := Line{Slope: 2, Intercept: 10}
	testutil.RequireNearlyEqual(t, "At(5)", l.At(5), 20, 0)
	testutil.RequireNearlyEqual(t, "At(-5)", l.At(-5), 0, 0)
}

func TestFitBaseline(t *testing.T) {
	temps := []float64{10, 11, 12, 13, 14}
	values := []float64{100, 101, 102, 103, 104}

	line, err := FitBaseline(temps, values, series.Range{Start: 10, End: 14})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNearlyEqual(t, "slope", line.Slope, 1, 1e-12)
	testutil.RequireNearlyEqual(t, "intercept", line.Intercept, 90, 1e-10)
}

func TestFitBaselineUsesOnlyWindow(t *testing.T) {
	temps := testutil.Linspace(0, 30, 61)
	values := testutil.Sigmoid(temps, 50, 100, 15, 2)
	// Overwrite the low end with an exact line.
	for i, x := range temps {
		if x <= 5 {
			values[i] = 3*x - 7
		}
	}

	line, err := FitBaseline(temps, values, series.Range{Start: 0, End: 5})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNearlyEqual(t, "slope", line.Slope, 3, 1e-10)
	testutil.RequireNearlyEqual(t, "intercept", line.Intercept, -7, 1e-10)
}

func TestFitBaselineStats(t *testing.T) {
	temps := []float64{0, 1, 2, 3}
	values := []float64{1, 3, 5, 7}

	fit, err := FitBaselineStats(temps, values, series.Range{Start: 0, End: 3})
	if err != nil {
		t.Fatal(err)
	}
	if fit.N != 4 {
		t.Fatalf("N = %d, want 4", fit.N)
	}
	testutil.RequireNearlyEqual(t, "r2", fit.RSquared, 1, 1e-12)
}

func TestFitBaselineErrors(t *testing.T) {
	temps := []float64{10, 11, 12, 13, 14}
	values := []float64{100, 101, 102, 103, 104}

	tests := []struct {
		name    string
		temps   []float64
		values  []float64
		r       series.Range
		wantErr error
	}{
		{name: "empty window", temps: temps, values: values, r: series.Range{Start: 50, End: 60}, wantErr: core.ErrEmptyRange},
		{name: "inverted window", temps: temps, values: values, r: series.Range{Start: 14, End: 10}, wantErr: core.ErrEmptyRange},
		{name: "single point", temps: temps, values: values, r: series.Range{Start: 12, End: 12}, wantErr: core.ErrInsufficientPoints},
		{name: "length mismatch", temps: temps, values: values[:3], r: series.Range{Start: 10, End: 14}, wantErr: core.ErrLengthMismatch},
		{name: "vertical", temps: []float64{5, 5, 5}, values: []float64{1, 2, 3}, r: series.Range{Start: 0, End: 10}, wantErr: core.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FitBaseline(tt.temps, tt.values, tt.r)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMaxSlopeIndex(t *testing.T) {
	deriv := []float64{0.1, 0.5, 1.2, 0.8, 0.3}

	tests := []struct {
		name   string
		deriv  []float64
		offset int
		want   int
	}{
		{name: "no offset", deriv: deriv, offset: 0, want: 2},
		{name: "offset 1", deriv: deriv, offset: 1, want: 3},
		{name: "clipped high", deriv: deriv, offset: 10, want: 4},
		{name: "clipped low", deriv: deriv, offset: -10, want: 0},
		{name: "negative slope", deriv: []float64{0.1, -3, 2}, want: 1},
		{name: "first on ties", deriv: []float64{1, -2, 2, -2}, want: 1},
		{name: "single", deriv: []float64{-7}, offset: 3, want: 0},
		{name: "NaN skipped", deriv: []float64{math.NaN(), 1, 4, 2}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaxSlopeIndex(tt.deriv, tt.offset)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("MaxSlopeIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMaxSlopeIndexEmpty(t *testing.T) {
	_, err := MaxSlopeIndex(nil, 0)
	if !errors.Is(err, core.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestTangentAt(t *testing.T) {
	temps := []float64{10, 11, 12, 13}
	values := []float64{100, 110, 125, 130}
	deriv := []float64{10, 12.5, 10, 5}

	line, err := TangentAt(temps, values, deriv, 1)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNearlyEqual(t, "slope", line.Slope, 12.5, 0)
	testutil.RequireNearlyEqual(t, "intercept", line.Intercept, 110-12.5*11, 1e-12)
	testutil.RequireNearlyEqual(t, "passes through point", line.At(11), 110, 1e-12)
}

func TestTangentAtErrors(t *testing.T) {
	temps := []float64{10, 11, 12}
	values := []float64{1, 2, 3}
	deriv := []float64{1, 1, 1}

	for _, idx := range []int{-1, 3, 100} {
		_, err := TangentAt(temps, values, deriv, idx)
		if !errors.Is(err, core.ErrOutOfBounds) {
			t.Fatalf("idx %d: expected ErrOutOfBounds, got %v", idx, err)
		}
	}

	_, err := TangentAt(temps, values, deriv[:2], 0)
	if !errors.Is(err, core.ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Line
		want   float64
		wantOK bool
	}{
		{name: "crossing", a: Line{2, 10}, b: Line{-1, 25}, want: 5, wantOK: true},
		{name: "horizontal baseline", a: Line{0, 3}, b: Line{1, 0}, want: 3, wantOK: true},
		{name: "parallel", a: Line{2, 10}, b: Line{2, 20}, wantOK: false},
		{name: "nearly parallel", a: Line{2, 10}, b: Line{2 * (1 + 1e-7), 20}, wantOK: false},
		{name: "both flat", a: Line{0, 1}, b: Line{1e-9, 2}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				if !math.IsNaN(got) {
					t.Fatalf("undefined intersection = %v, want NaN", got)
				}
				return
			}
			testutil.RequireNearlyEqual(t, "t", got, tt.want, 1e-12)
			testutil.RequireNearlyEqual(t, "same value", tt.a.At(got), tt.b.At(got), 1e-9)
		})
	}
}

func TestIntersectSymmetric(t *testing.T) {
	a := Line{Slope: 0.3, Intercept: 12}
	b := Line{Slope: 4.1, Intercept: -80}

	x1, ok1 := Intersect(a, b)
	x2, ok2 := Intersect(b, a)
	if !ok1 || !ok2 {
		t.Fatal("expected defined intersection")
	}
	testutil.RequireNearlyEqual(t, "symmetry", x1, x2, 1e-12)
}
