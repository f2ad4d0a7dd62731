package outlier

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-af/internal/testutil"
)

func BenchmarkRemove(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		temps := testutil.Linspace(20, 120, n)
		values := testutil.Add(
			testutil.Sigmoid(temps, 0, 100, 70, 5),
			testutil.DeterministicNoise(1, 0.2, n),
		)
		for i := n / 10; i < n; i += n / 10 {
			values[i] += 50
		}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Remove(temps, values, DefaultConfig())
			}
		})
	}
}
