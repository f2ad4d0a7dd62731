// Package tangent provides the geometric building blocks of the
// tangent-intersection method: baseline fits over temperature windows, the
// steepest point of a curve, the tangent through it, and line intersections.
package tangent
