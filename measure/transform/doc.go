// Package transform determines phase-transformation temperatures from a
// temperature/displacement series with the tangent-intersection method.
//
// The analysis chain is: outlier removal, Savitzky-Golay smoothing,
// derivative, steepest point, tangent at that point, low and high
// temperature baselines, and the intersections of the tangent with both
// baselines. The low intersection is the austenite start temperature (As),
// the high one the tangent-method austenite finish temperature (Af-tan).
//
// Example:
//
//	s, _ := series.New(temps, values)
//	res, err := transform.Analyze(s,
//		series.Range{Start: 0, End: 5},
//		series.Range{Start: 25, End: 30},
//		transform.WithSmoothing(51, 3),
//	)
//	fmt.Println(res.Start, res.Finish)
package transform
