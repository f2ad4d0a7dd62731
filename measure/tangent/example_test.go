package tangent_test

import (
	"fmt"

	"github.com/cwbudde/algo-af/dsp/series"
	"github.com/cwbudde/algo-af/measure/tangent"
)

func ExampleIntersect() {
	baseline := tangent.Line{Slope: 2, Intercept: 10}
	tan := tangent.Line{Slope: -1, Intercept: 25}

	t, ok := tangent.Intersect(baseline, tan)
	fmt.Println(t, ok)

	_, ok = tangent.Intersect(baseline, tangent.Line{Slope: 2, Intercept: 20})
	fmt.Println(ok)

	// Output:
	// 5 true
	// false
}

func ExampleFitBaseline() {
	temps := []float64{10, 11, 12, 13, 14}
	values := []float64{100, 101, 102, 103, 104}

	line, err := tangent.FitBaseline(temps, values, series.Range{Start: 10, End: 14})
	if err != nil {
		panic(err)
	}

	fmt.Printf("slope=%.3f intercept=%.3f\n", line.Slope, line.Intercept)

	// Output:
	// slope=1.000 intercept=90.000
}

func ExampleMaxSlopeIndex() {
	d := []float64{0.1, 0.5, 1.2, 0.8, 0.3}

	var picked []int
	for _, offset := range []int{0, 1, 10, -10} {
		idx, _ := tangent.MaxSlopeIndex(d, offset)
		picked = append(picked, idx)
	}
	fmt.Println(picked)

	// Output:
	// [2 3 4 0]
}
