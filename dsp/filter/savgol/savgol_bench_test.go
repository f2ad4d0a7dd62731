package savgol

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-af/internal/testutil"
)

func BenchmarkApply(b *testing.B) {
	values := testutil.DeterministicNoise(1, 1, 2000)

	for _, w := range []int{11, 51, 201} {
		f, err := New(w, 3)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("window=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = f.Apply(values)
			}
		})
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = New(51, 3)
	}
}
