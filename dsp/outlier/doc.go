// Package outlier removes spikes and short dropout blocks from a measured
// series.
//
// Detection is iterative. Each pass compares every sample with the centred
// rolling median of the current working values and flags samples whose
// absolute deviation exceeds Threshold times the median absolute deviation
// (MAD) of the remaining samples. Flagged samples are replaced by linear
// interpolation between the original values of the unflagged samples, and
// the next pass runs on the repaired values. Detection stops when a pass
// finds nothing new or after MaxIterations passes.
//
// The rolling window is at least 11 samples and always odd, so that a block
// of up to five consecutive bad samples cannot dominate a window median.
// Samples within max(window/2, 3) of either end are never flagged and do not
// contribute to the MAD, because their truncated windows are unreliable.
package outlier
