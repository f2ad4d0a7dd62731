package regress

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-af/dsp/core"
	"github.com/cwbudde/algo-af/internal/testutil"
)

func TestLinearExactLine(t *testing.T) {
	fit, err := Linear([]float64{10, 11, 12}, []float64{100, 101, 102})
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNearlyEqual(t, "slope", fit.Slope, 1, 1e-12)
	testutil.RequireNearlyEqual(t, "intercept", fit.Intercept, 90, 1e-10)
	testutil.RequireNearlyEqual(t, "r2", fit.RSquared, 1, 1e-12)
	testutil.RequireNearlyEqual(t, "stderr", fit.StdErr, 0, 1e-12)
	if fit.N != 3 {
		t.Fatalf("N = %d, want 3", fit.N)
	}
}

func TestLinearNoisy(t *testing.T) {
	x := testutil.Linspace(0, 50, 200)
	y := testutil.Add(testutil.Ramp(x, -0.4, 12), testutil.DeterministicGaussian(7, 0.1, len(x)))

	fit, err := Linear(x, y)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNearlyEqual(t, "slope", fit.Slope, -0.4, 0.01)
	testutil.RequireNearlyEqual(t, "intercept", fit.Intercept, 12, 0.1)
	testutil.RequireNearlyEqual(t, "stderr", fit.StdErr, 0.1, 0.03)
	if fit.RSquared < 0.99 {
		t.Fatalf("r2 = %v, want > 0.99", fit.RSquared)
	}
}

func TestLinearLargeOffset(t *testing.T) {
	x := []float64{1e6, 1e6 + 1, 1e6 + 2, 1e6 + 3}
	y := testutil.Ramp(x, 2, -3)

	fit, err := Linear(x, y)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNearlyEqual(t, "slope", fit.Slope, 2, 1e-9)
	testutil.RequireNearlyEqual(t, "predict", fit.Predict(1e6+10), 2*(1e6+10)-3, 1e-6)
}

func TestLinearConstantY(t *testing.T) {
	fit, err := Linear([]float64{1, 2, 3}, []float64{5, 5, 5})
	if err != nil {
		t.Fatal(err)
	}
	if fit.Slope != 0 || fit.Intercept != 5 || fit.RSquared != 1 {
		t.Fatalf("fit = %+v", fit)
	}
}

func TestLinearErrors(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want error
	}{
		{name: "mismatch", x: []float64{1, 2}, y: []float64{1}, want: core.ErrLengthMismatch},
		{name: "empty", want: core.ErrEmptyInput},
		{name: "single", x: []float64{1}, y: []float64{1}, want: core.ErrInsufficientPoints},
		{name: "vertical", x: []float64{2, 2, 2}, y: []float64{1, 2, 3}, want: core.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Linear(tt.x, tt.y); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
