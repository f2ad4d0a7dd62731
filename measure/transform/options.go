package transform

import (
	"fmt"

	"github.com/cwbudde/algo-af/dsp/core"
	"github.com/cwbudde/algo-af/dsp/filter/savgol"
	"github.com/cwbudde/algo-af/dsp/outlier"
)

const (
	defaultSmoothingWindow = 51
	defaultSmoothingOrder  = 3
)

// Config holds the analysis parameters.
type Config struct {
	Outlier         outlier.Config
	SmoothingWindow int // Savitzky-Golay window; even values are rounded up
	SmoothingOrder  int // Savitzky-Golay polynomial order
	SlopeOffset     int // shift applied to the steepest-point index
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default analysis parameters: outlier window 11,
// threshold 5 and 3 passes, smoothing window 51 with order 3, no slope
// offset.
func DefaultConfig() Config {
	return Config{
		Outlier:         outlier.DefaultConfig(),
		SmoothingWindow: defaultSmoothingWindow,
		SmoothingOrder:  defaultSmoothingOrder,
	}
}

// Validate checks the parameters that do not depend on the data length.
func (c Config) Validate() error {
	if err := c.Outlier.Validate(); err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	if c.SmoothingOrder < 0 {
		return fmt.Errorf("transform: smoothing order must be >= 0: %d: %w", c.SmoothingOrder, core.ErrInvalidParameter)
	}
	if c.SmoothingWindow < 1 {
		return fmt.Errorf("transform: smoothing window must be >= 1: %d: %w", c.SmoothingWindow, core.ErrInvalidParameter)
	}
	if savgol.OddWindow(c.SmoothingWindow) <= c.SmoothingOrder {
		return fmt.Errorf("transform: smoothing window (%d) must be greater than order (%d): %w",
			c.SmoothingWindow, c.SmoothingOrder, core.ErrInvalidParameter)
	}
	return nil
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithSmoothing sets the Savitzky-Golay window length and polynomial order.
func WithSmoothing(window, order int) Option {
	return func(c *Config) {
		c.SmoothingWindow = window
		c.SmoothingOrder = order
	}
}

// WithSlopeOffset shifts the steepest-point index by n samples.
func WithSlopeOffset(n int) Option {
	return func(c *Config) {
		c.SlopeOffset = n
	}
}

// WithOutlierWindow sets the rolling median window of the outlier detector.
func WithOutlierWindow(n int) Option {
	return func(c *Config) {
		c.Outlier.Window = n
	}
}

// WithOutlierThreshold sets the MAD multiplier of the outlier detector.
func WithOutlierThreshold(x float64) Option {
	return func(c *Config) {
		c.Outlier.Threshold = x
	}
}

// WithOutlierIterations sets the maximum number of detection passes.
func WithOutlierIterations(n int) Option {
	return func(c *Config) {
		c.Outlier.MaxIterations = n
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
