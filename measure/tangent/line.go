package tangent

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-af/dsp/core"
)

// Line is value = Slope*t + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at temperature t.
func (l Line) At(t float64) float64 {
	return l.Slope*t + l.Intercept
}

func (l Line) String() string {
	return fmt.Sprintf("y = %.4g*x %+.4g", l.Slope, l.Intercept)
}

// Intersect returns the temperature at which a and b cross. ok is false and
// the temperature is NaN when the slopes are parallel within
// core.DefaultRelTol and core.DefaultAbsTol.
func Intersect(a, b Line) (t float64, ok bool) {
	if core.IsClose(a.Slope, b.Slope, core.DefaultRelTol, core.DefaultAbsTol) {
		return math.NaN(), false
	}

	return (b.Intercept - a.Intercept) / (a.Slope - b.Slope), true
}
