// Package config reads analysis parameter files.
//
// A parameter file is YAML:
//
//	outlier:
//	  window: 11
//	  threshold: 5.0
//	  max_iterations: 3
//	smoothing:
//	  window_length: 51
//	  polyorder: 3
//	slope_offset: 0
//	low_range: [0, 5]
//	high_range: [25, 30]
//
// Keys that are left out keep their defaults. Baseline ranges are optional;
// when absent the caller derives them from the data.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-af/dsp/outlier"
	"github.com/cwbudde/algo-af/dsp/series"
	"github.com/cwbudde/algo-af/measure/transform"
)

// ErrInvalid is returned for parameter files with invalid values.
var ErrInvalid = errors.New("config: invalid value")

// File is the content of a parameter file.
type File struct {
	Outlier     Outlier   `json:"outlier" yaml:"outlier"`
	Smoothing   Smoothing `json:"smoothing" yaml:"smoothing"`
	SlopeOffset int       `json:"slope_offset" yaml:"slope_offset"`
	LowRange    []float64 `json:"low_range,omitempty" yaml:"low_range,omitempty"`   // [start, end]
	HighRange   []float64 `json:"high_range,omitempty" yaml:"high_range,omitempty"` // [start, end]
	Channel     string    `json:"channel,omitempty" yaml:"channel,omitempty"`       // e.g. Space1; empty analyzes every valid channel
	Encoding    string    `json:"encoding,omitempty" yaml:"encoding,omitempty"`     // text encoding of the data file
}

// Outlier holds the outlier detector parameters.
type Outlier struct {
	Window        int     `json:"window" yaml:"window"`
	Threshold     float64 `json:"threshold" yaml:"threshold"`
	MaxIterations int     `json:"max_iterations" yaml:"max_iterations"`
}

// Smoothing holds the Savitzky-Golay parameters.
type Smoothing struct {
	WindowLength int `json:"window_length" yaml:"window_length"`
	Polyorder    int `json:"polyorder" yaml:"polyorder"`
}

// Default returns a File holding the default analysis parameters.
func Default() File {
	return FromAnalysis(transform.DefaultConfig())
}

// FromAnalysis converts an analysis configuration into a File.
func FromAnalysis(cfg transform.Config) File {
	return File{
		Outlier: Outlier{
			Window:        cfg.Outlier.Window,
			Threshold:     cfg.Outlier.Threshold,
			MaxIterations: cfg.Outlier.MaxIterations,
		},
		Smoothing: Smoothing{
			WindowLength: cfg.SmoothingWindow,
			Polyorder:    cfg.SmoothingOrder,
		},
		SlopeOffset: cfg.SlopeOffset,
	}
}

// Load reads and validates the parameter file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return f, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	f := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Marshal encodes f as YAML.
func Marshal(f File) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return buf.Bytes(), nil
}

// Validate checks the parameters that can be checked without data.
func (f *File) Validate() error {
	if err := f.Analysis().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	for name, r := range map[string][]float64{"low_range": f.LowRange, "high_range": f.HighRange} {
		if _, _, err := toRange(r); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, name, err)
		}
	}

	return nil
}

// Analysis returns the analysis configuration.
func (f *File) Analysis() transform.Config {
	return transform.Config{
		Outlier: outlier.Config{
			Window:        f.Outlier.Window,
			Threshold:     f.Outlier.Threshold,
			MaxIterations: f.Outlier.MaxIterations,
		},
		SmoothingWindow: f.Smoothing.WindowLength,
		SmoothingOrder:  f.Smoothing.Polyorder,
		SlopeOffset:     f.SlopeOffset,
	}
}

// Ranges returns the configured baseline windows. ok is false unless both
// are set.
func (f *File) Ranges() (low, high series.Range, ok bool) {
	low, lowSet, err := toRange(f.LowRange)
	if err != nil {
		return series.Range{}, series.Range{}, false
	}

	high, highSet, err := toRange(f.HighRange)
	if err != nil {
		return series.Range{}, series.Range{}, false
	}

	return low, high, lowSet && highSet
}

// SetRanges stores low and high as [start, end] pairs.
func (f *File) SetRanges(low, high series.Range) {
	f.LowRange = []float64{low.Start, low.End}
	f.HighRange = []float64{high.Start, high.End}
}

func toRange(v []float64) (r series.Range, set bool, err error) {
	switch len(v) {
	case 0:
		return series.Range{}, false, nil
	case 2:
		if !(v[0] <= v[1]) {
			return series.Range{}, false, fmt.Errorf("start %g is not below end %g", v[0], v[1])
		}
		return series.Range{Start: v[0], End: v[1]}, true, nil
	default:
		return series.Range{}, false, fmt.Errorf("want [start, end], got %d values", len(v))
	}
}
