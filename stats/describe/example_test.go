package describe_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-af/stats/describe"
)

func ExampleCalculate() {
	s := describe.Calculate([]float64{1, 2, math.NaN(), 3, 4})
	fmt.Printf("n=%d missing=%d mean=%.1f range=%.0f\n", s.Count, s.Missing, s.Mean, s.Range)

	// Output:
	// n=4 missing=1 mean=2.5 range=3
}
