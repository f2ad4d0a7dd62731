package testutil

import (
	"math"
	"math/rand"
)

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Ramp evaluates slope*t + intercept at every temperature.
func Ramp(temps []float64, slope, intercept float64) []float64 {
	out := make([]float64, len(temps))
	for i, t := range temps {
		out[i] = slope*t + intercept
	}
	return out
}

// Sigmoid evaluates base + height / (1 + exp(-(t-center)/width)), the
// idealised displacement curve of a single transformation step.
func Sigmoid(temps []float64, base, height, center, width float64) []float64 {
	out := make([]float64, len(temps))
	for i, t := range temps {
		out[i] = base + height/(1+math.Exp(-(t-center)/width))
	}
	return out
}

// Polynomial evaluates sum coeffs[k] * t^k at every temperature.
func Polynomial(temps, coeffs []float64) []float64 {
	out := make([]float64, len(temps))
	for i, t := range temps {
		var y float64
		for k := len(coeffs) - 1; k >= 0; k-- {
			y = y*t + coeffs[k]
		}
		out[i] = y
	}
	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicGaussian generates normally distributed noise with standard
// deviation sigma and a fixed seed.
func DeterministicGaussian(seed int64, sigma float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.NormFloat64() * sigma
	}
	return out
}

// Add returns the element-wise sum of a and b, truncated to the shorter one.
func Add(a, b []float64) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}
