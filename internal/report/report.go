// Package report exports analysis results: a summary of parameters and
// transformation temperatures (YAML or JSON) and the processed curves
// (CSV).
package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-af/internal/config"
	"github.com/cwbudde/algo-af/measure/tangent"
	"github.com/cwbudde/algo-af/measure/transform"
	"github.com/cwbudde/algo-af/stats/describe"
)

// ErrUnknownFormat is returned for an unsupported summary format.
var ErrUnknownFormat = errors.New("report: unknown format")

// Summary is the exported description of one analysis.
type Summary struct {
	ID          string    `json:"id" yaml:"id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Source      string    `json:"source,omitempty" yaml:"source,omitempty"`
	Channel     string    `json:"channel,omitempty" yaml:"channel,omitempty"`
	Complete    bool      `json:"complete" yaml:"complete"`

	Results    Results     `json:"results" yaml:"results"`
	Lines      Lines       `json:"lines" yaml:"lines"`
	Parameters config.File `json:"parameters" yaml:"parameters"`
}

// Results holds the temperatures. Undefined values are nil.
type Results struct {
	As            *float64 `json:"as" yaml:"as"`
	AfTan         *float64 `json:"af_tan" yaml:"af_tan"`
	Interval      *float64 `json:"interval" yaml:"interval"`
	MaxSlopeTemp  float64  `json:"max_slope_temp" yaml:"max_slope_temp"`
	MaxSlope      float64  `json:"max_slope" yaml:"max_slope"`
	OutlierCount  int      `json:"outlier_count" yaml:"outlier_count"`
	Samples       int      `json:"samples" yaml:"samples"`
	MaxSlopeIndex int      `json:"max_slope_index" yaml:"max_slope_index"`
	NoiseStd      float64  `json:"noise_std" yaml:"noise_std"` // std of cleaned - smoothed
}

// Line is a fitted line.
type Line struct {
	Slope     float64 `json:"slope" yaml:"slope"`
	Intercept float64 `json:"intercept" yaml:"intercept"`
}

// Lines holds the three lines of the construction.
type Lines struct {
	LowBaseline  Line `json:"low_baseline" yaml:"low_baseline"`
	HighBaseline Line `json:"high_baseline" yaml:"high_baseline"`
	Tangent      Line `json:"tangent" yaml:"tangent"`
}

// Meta identifies the analyzed data.
type Meta struct {
	Source  string
	Channel string
	Now     func() time.Time // defaults to time.Now
}

// New builds the summary of res. params should hold the parameters and
// baseline windows the analysis ran with.
func New(res transform.Result, params config.File, meta Meta) Summary {
	now := time.Now
	if meta.Now != nil {
		now = meta.Now
	}

	return Summary{
		ID:          uuid.NewString(),
		GeneratedAt: now().UTC(),
		Source:      meta.Source,
		Channel:     meta.Channel,
		Complete:    res.Complete(),
		Results: Results{
			As:            temperature(res.Start),
			AfTan:         temperature(res.Finish),
			Interval:      temperature(res.Interval()),
			MaxSlopeTemp:  res.MaxSlopeTemp,
			MaxSlope:      res.MaxSlope,
			OutlierCount:  res.OutlierCount,
			Samples:       res.Raw.Len(),
			MaxSlopeIndex: res.MaxSlopeIndex,
			NoiseStd:      describe.Calculate(describe.Residuals(res.Cleaned.Values, res.Smoothed.Values)).Std,
		},
		Lines: Lines{
			LowBaseline:  line(res.LowBaseline),
			HighBaseline: line(res.HighBaseline),
			Tangent:      line(res.Tangent),
		},
		Parameters: params,
	}
}

func temperature(t transform.Temperature) *float64 {
	if !t.Valid {
		return nil
	}
	v := t.Value
	return &v
}

func line(l tangent.Line) Line {
	return Line{Slope: l.Slope, Intercept: l.Intercept}
}

// Format is a summary encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Write encodes s to w in the given format.
func Write(w io.Writer, s Summary, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// DataHeader is the header row written by WriteData.
var DataHeader = []string{"Temperature", "Raw", "Cleaned", "Smoothed", "Derivative", "Outlier"}

// WriteData writes the processed curves of res as CSV, one row per sample.
func WriteData(w io.Writer, res transform.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(DataHeader); err != nil {
		return fmt.Errorf("report: csv: %w", err)
	}

	row := make([]string, len(DataHeader))
	for i, t := range res.Raw.Temps {
		row[0] = formatFloat(t)
		row[1] = formatFloat(res.Raw.Values[i])
		row[2] = formatFloat(res.Cleaned.Values[i])
		row[3] = formatFloat(res.Smoothed.Values[i])
		row[4] = formatFloat(res.Derivative[i])
		row[5] = strconv.FormatBool(res.OutlierMask[i])

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: csv: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: csv: %w", err)
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
