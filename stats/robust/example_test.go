package robust_test

import (
	"fmt"

	"github.com/cwbudde/algo-af/stats/robust"
)

func ExampleRollingMedian() {
	values := []float64{10, 11, 0, 13, 14}
	fmt.Println(robust.RollingMedian(values, 3, 2))

	// Output:
	// [10.5 10 11 13 13.5]
}
