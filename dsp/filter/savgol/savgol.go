package savgol

import (
	"fmt"

	"github.com/cwbudde/algo-af/dsp/conv"
	"github.com/cwbudde/algo-af/dsp/core"
	"github.com/cwbudde/algo-af/internal/lstsq"
)

// Filter is a designed Savitzky-Golay smoother. It is immutable and safe for
// concurrent use.
type Filter struct {
	window int
	order  int

	coeffs []float64 // centre-point weights, length window
	design *lstsq.QR // factorisation of the window Vandermonde matrix
	x      []float64 // normalised abscissae of the window positions
}

// OddWindow returns window rounded up to the next odd integer.
func OddWindow(window int) int {
	if window%2 == 0 {
		return window + 1
	}
	return window
}

func validate(window, order int) error {
	if order < 0 {
		return fmt.Errorf("savgol: polynomial order must be >= 0: %d: %w", order, core.ErrInvalidParameter)
	}
	if window <= order {
		return fmt.Errorf("savgol: window_length (%d) must be greater than polyorder (%d): %w",
			window, order, core.ErrInvalidParameter)
	}
	return nil
}

// New designs a filter. An even window is rounded up to the next odd value;
// the (corrected) window must exceed order and order must be >= 0.
func New(window, order int) (*Filter, error) {
	window = OddWindow(window)
	if err := validate(window, order); err != nil {
		return nil, err
	}

	half := window / 2
	scale := 1.0
	if half > 0 {
		scale = float64(half)
	}

	// Abscissae in [-1, 1] keep the Vandermonde matrix well conditioned.
	x := make([]float64, window)
	for j := range x {
		x[j] = float64(j-half) / scale
	}

	design, err := lstsq.Factor(lstsq.Vandermonde(x, order))
	if err != nil {
		return nil, fmt.Errorf("savgol: design (window %d, order %d): %w", window, order, err)
	}

	// The fitted polynomial evaluated at x = 0 is its constant term.
	coeffs, err := design.PseudoInverseRow(0)
	if err != nil {
		return nil, fmt.Errorf("savgol: design (window %d, order %d): %w", window, order, err)
	}

	return &Filter{
		window: window,
		order:  order,
		coeffs: coeffs,
		design: design,
		x:      x,
	}, nil
}

// WindowLength returns the effective (odd) window length.
func (f *Filter) WindowLength() int { return f.window }

// Order returns the polynomial order.
func (f *Filter) Order() int { return f.order }

// Coefficients returns a copy of the centre-point weights.
func (f *Filter) Coefficients() []float64 {
	return core.Clone(f.coeffs)
}

// Apply smooths values and returns a new slice of the same length. Empty
// input yields empty output. The window must not exceed len(values).
func (f *Filter) Apply(values []float64) ([]float64, error) {
	n := len(values)
	if n == 0 {
		return []float64{}, nil
	}

	if f.window > n {
		return nil, fmt.Errorf("savgol: window_length (%d) cannot be larger than data length (%d): %w",
			f.window, n, core.ErrInvalidParameter)
	}

	half := f.window / 2
	out := make([]float64, n)

	interior, err := conv.CorrelateValid(values, f.coeffs)
	if err != nil {
		return nil, fmt.Errorf("savgol: %w", err)
	}
	copy(out[half:n-half], interior)

	if half == 0 {
		return out, nil
	}

	if err := f.fitEdge(out[:half], values[:f.window], 0); err != nil {
		return nil, err
	}

	if err := f.fitEdge(out[n-half:], values[n-f.window:], half+1); err != nil {
		return nil, err
	}

	return out, nil
}

// fitEdge fits the polynomial to the window samples and evaluates it at the
// window positions first, first+1, ... into dst.
func (f *Filter) fitEdge(dst, window []float64, first int) error {
	c, err := f.design.Solve(window)
	if err != nil {
		return fmt.Errorf("savgol: edge fit: %w", err)
	}

	for i := range dst {
		dst[i] = lstsq.PolyVal(c, f.x[first+i])
	}

	return nil
}

// Coefficients returns the centre-point weights for the given window and
// order, after rounding an even window up.
func Coefficients(window, order int) ([]float64, error) {
	f, err := New(window, order)
	if err != nil {
		return nil, err
	}
	return f.coeffs, nil
}

// Smooth applies a Savitzky-Golay filter to values sampled at temps. The
// temperatures are only checked for matching length; the filter assumes the
// samples are the ordered points of a series. Empty input returns an empty
// result without error.
func Smooth(temps, values []float64, window, order int) ([]float64, error) {
	if len(temps) != len(values) {
		return nil, fmt.Errorf("savgol: temps (%d) != values (%d): %w",
			len(temps), len(values), core.ErrLengthMismatch)
	}

	if len(values) == 0 {
		return []float64{}, nil
	}

	f, err := New(window, order)
	if err != nil {
		return nil, err
	}

	return f.Apply(values)
}
