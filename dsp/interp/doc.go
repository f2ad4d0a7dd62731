// Package interp provides interpolation primitives used to repair rejected
// samples.
//
//   - [Linear2]:  2-point linear interpolation
//   - [LinearAt]: piecewise-linear interpolation through a set of knots
//   - [Linear]:   [LinearAt] evaluated for a block of query points
//
// Outside the knot range the end values are held constant.
package interp
