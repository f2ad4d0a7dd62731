// Package conv provides the linear convolution used by the smoothing stage.
//
// Two strategies are available:
//
//   - Direct convolution: O(N*M) time-domain convolution, best for short kernels
//   - Overlap-add (OLA): FFT-based block convolution for long kernels
//
// # Usage
//
//	result, err := conv.Convolve(signal, kernel)               // Auto-selects algorithm
//	result, err := conv.Direct(signal, kernel)                 // Force direct convolution
//	result, err := conv.ConvolveMode(signal, kernel, ModeSame) // Trim to an output mode
//	result, err := conv.CorrelateValid(signal, kernel)         // Sliding dot product
//
// # Algorithm Selection
//
// [Convolve] uses direct convolution for kernels up to 64 samples and
// overlap-add above that. Both paths are deterministic: the same inputs
// always produce bit-identical output.
package conv
