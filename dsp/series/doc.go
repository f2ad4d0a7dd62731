// Package series holds the temperature series consumed by the analysis
// stages.
//
// A [Series] pairs strictly ascending temperatures with one measured value
// per temperature. Raw instrument exports usually contain many samples per
// temperature; [GroupByTemperature] averages them into that shape. [Range]
// describes an inclusive temperature window and [Series.Select] extracts the
// samples inside it.
package series
