package conv

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-af/internal/testutil"
)

// Smoothing kernels span 5..201 taps over series of a few hundred to a few
// thousand temperatures.
func BenchmarkCorrelateValid(b *testing.B) {
	sizes := []struct {
		signal int
		kernel int
	}{
		{300, 11},
		{300, 51},
		{3000, 51},
		{3000, 101},
		{3000, 201},
	}

	for _, size := range sizes {
		signal := testutil.DeterministicNoise(1, 1, size.signal)
		kernel := testutil.DeterministicNoise(2, 1, size.kernel)

		b.Run(fmt.Sprintf("signal=%d_kernel=%d", size.signal, size.kernel), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = CorrelateValid(signal, kernel)
			}
		})
	}
}

func BenchmarkDirectVsOverlapAdd(b *testing.B) {
	signal := testutil.DeterministicNoise(5, 1, 3000)

	for _, m := range []int{33, 65, 129} {
		kernel := testutil.DeterministicNoise(6, 1, m)

		b.Run(fmt.Sprintf("direct_kernel=%d", m), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Direct(signal, kernel)
			}
		})

		b.Run(fmt.Sprintf("ola_kernel=%d", m), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = OverlapAddConvolve(signal, kernel)
			}
		})
	}
}
