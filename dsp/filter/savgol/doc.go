// Package savgol implements Savitzky-Golay smoothing.
//
// Each output sample is the value, at the window centre, of the polynomial
// of the given order that best fits (least squares) the window_length input
// samples around it. Compared to a moving average this keeps the shape of
// steps and shoulders, which matters for locating the steepest point of a
// transformation curve.
//
// Interior samples are a fixed linear combination of their neighbours (the
// [Coefficients]) and are computed as a correlation through dsp/conv. The
// first and last window_length/2 samples have no centred window; they are
// taken from the polynomial fitted to the first / last window_length samples
// instead of being padded.
//
// An even window_length is rounded up to the next odd value.
//
//	smoothed, err := savgol.Smooth(temps, values, 51, 3)
//
// For repeated use with the same parameters build a [Filter] once:
//
//	f, err := savgol.New(51, 3)
//	smoothed, err := f.Apply(values)
package savgol
