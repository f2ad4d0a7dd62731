package describe

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-af/internal/testutil"
)

const tolerance = 1e-10

func TestCalculateConstant(t *testing.T) {
	values := make([]float64, 1000)
	for i := range values {
		values[i] = 3.5
	}

	s := Calculate(values)

	if s.Count != 1000 || s.Missing != 0 {
		t.Fatalf("Count=%d Missing=%d", s.Count, s.Missing)
	}
	testutil.RequireNearlyEqual(t, "Mean", s.Mean, 3.5, tolerance)
	testutil.RequireNearlyEqual(t, "Variance", s.Variance, 0, tolerance)
	testutil.RequireNearlyEqual(t, "Range", s.Range, 0, 0)
	if s.Skewness != 0 || s.Kurtosis != 0 {
		t.Fatalf("Skewness=%v Kurtosis=%v, want 0 for zero variance", s.Skewness, s.Kurtosis)
	}
	if s.MinPos != 0 || s.MaxPos != 0 {
		t.Fatalf("MinPos=%d MaxPos=%d, want first occurrence", s.MinPos, s.MaxPos)
	}
}

func TestCalculateUniform(t *testing.T) {
	// Evenly spaced on [-1, 1]: variance (n+1)/(3(n-1)), zero skew, excess
	// kurtosis -6(n^2+1)/(5(n^2-1)).
	n := 1001
	values := testutil.Linspace(-1, 1, n)

	s := Calculate(values)

	nf := float64(n)
	testutil.RequireNearlyEqual(t, "Mean", s.Mean, 0, tolerance)
	testutil.RequireNearlyEqual(t, "Variance", s.Variance, (nf+1)/(3*(nf-1)), 1e-9)
	testutil.RequireNearlyEqual(t, "Skewness", s.Skewness, 0, 1e-9)
	testutil.RequireNearlyEqual(t, "Kurtosis", s.Kurtosis, -6*(nf*nf+1)/(5*(nf*nf-1)), 1e-9)
	testutil.RequireNearlyEqual(t, "Std", s.Std, math.Sqrt(s.Variance), 0)
	if s.MinPos != 0 || s.MaxPos != n-1 {
		t.Fatalf("MinPos=%d MaxPos=%d", s.MinPos, s.MaxPos)
	}
}

func TestCalculateSkipsMissing(t *testing.T) {
	values := []float64{math.NaN(), 4, math.Inf(1), -2, 10, math.NaN()}

	s := Calculate(values)

	if s.Count != 3 || s.Missing != 3 {
		t.Fatalf("Count=%d Missing=%d", s.Count, s.Missing)
	}
	testutil.RequireNearlyEqual(t, "Mean", s.Mean, 4, tolerance)
	testutil.RequireNearlyEqual(t, "Variance", s.Variance, 24, tolerance)
	if s.Min != -2 || s.MinPos != 3 || s.Max != 10 || s.MaxPos != 4 {
		t.Fatalf("Min=%v@%d Max=%v@%d", s.Min, s.MinPos, s.Max, s.MaxPos)
	}
	testutil.RequireNearlyEqual(t, "Range", s.Range, 12, 0)
}

func TestCalculateEmpty(t *testing.T) {
	for _, values := range [][]float64{nil, {math.NaN(), math.NaN()}} {
		s := Calculate(values)
		if s.Count != 0 || s.Missing != len(values) {
			t.Fatalf("Count=%d Missing=%d", s.Count, s.Missing)
		}
		if !math.IsNaN(s.Mean) || !math.IsNaN(s.Std) || s.MinPos != -1 || s.MaxPos != -1 {
			t.Fatalf("unexpected stats for no data: %+v", s)
		}
	}
}

func TestCalculateMatchesTwoPass(t *testing.T) {
	values := testutil.Add(
		testutil.Ramp(testutil.Linspace(0, 100, 500), 0.3, 1e4),
		testutil.DeterministicGaussian(9, 2, 500),
	)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var ss float64
	for _, v := range values {
		ss += (v - mean) * (v - mean)
	}

	s := Calculate(values)
	testutil.RequireNearlyEqual(t, "Mean", s.Mean, mean, 1e-8)
	testutil.RequireNearlyEqual(t, "Variance", s.Variance, ss/float64(len(values)), 1e-6)
}

func TestResiduals(t *testing.T) {
	got := Residuals([]float64{3, 5, 7, 9}, []float64{1, 1, 2})
	testutil.RequireSliceNearlyEqual(t, got, []float64{2, 4, 5}, 0)
}
