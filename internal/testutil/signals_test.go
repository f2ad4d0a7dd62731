package testutil

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	s := Linspace(0, 30, 100)
	if len(s) != 100 || s[0] != 0 || math.Abs(s[99]-30) > 1e-12 {
		t.Fatalf("Linspace endpoints: %v .. %v (len %d)", s[0], s[len(s)-1], len(s))
	}
	if one := Linspace(5, 9, 1); one[0] != 5 {
		t.Fatalf("Linspace(n=1) = %v, want [5]", one)
	}
}

func TestRampAndPolynomialAgree(t *testing.T) {
	temps := Linspace(-2, 2, 9)
	RequireSliceNearlyEqual(t, Ramp(temps, 3, -1), Polynomial(temps, []float64{-1, 3}), 1e-12)
}

func TestSigmoidMidpoint(t *testing.T) {
	v := Sigmoid([]float64{15}, 50, 100, 15, 2)
	RequireNearlyEqual(t, "midpoint", v[0], 100, 1e-12)
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("noise[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicGaussianDifferentSeeds(t *testing.T) {
	a := DeterministicGaussian(1, 1.0, 16)
	b := DeterministicGaussian(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestAdd(t *testing.T) {
	RequireSliceNearlyEqual(t, Add([]float64{1, 2, 3}, []float64{1, 1}), []float64{2, 3}, 0)
}
