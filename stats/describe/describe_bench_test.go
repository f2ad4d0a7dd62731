package describe

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-af/internal/testutil"
)

func BenchmarkCalculate(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		values := testutil.DeterministicGaussian(1, 1, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				Calculate(values)
			}
		})
	}
}
