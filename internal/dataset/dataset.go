// Package dataset loads temperature/displacement exports of the test rig.
//
// An export is a table with a Temperature column, up to six displacement
// channels Space1..Space6 and an optional DateTimeStr column. Missing or
// unparseable channel values (including the literal "NaN") are stored as
// NaN.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-af/dsp/series"
)

const (
	// TemperatureColumn names the temperature column.
	TemperatureColumn = "Temperature"
	// TimestampColumn names the optional timestamp column.
	TimestampColumn = "DateTimeStr"
)

// Channels lists the displacement columns in display order.
var Channels = []string{"Space1", "Space2", "Space3", "Space4", "Space5", "Space6"}

var (
	ErrUnsupportedFormat  = errors.New("dataset: unsupported file format")
	ErrEmpty              = errors.New("dataset: no data rows")
	ErrMissingTemperature = errors.New("dataset: missing Temperature column")
	ErrNoChannels         = errors.New("dataset: no Space channel columns")
	ErrUnknownChannel     = errors.New("dataset: unknown channel")
)

// Table is a loaded export. Columns maps every channel present in the file
// to a slice of the same length as Temps.
type Table struct {
	Temps      []float64
	Timestamps []string // nil when the export has no timestamp column
	Columns    map[string][]float64
}

func newTable(rows int) *Table {
	return &Table{
		Temps:   make([]float64, 0, rows),
		Columns: make(map[string][]float64, len(Channels)),
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Temps)
}

// ChannelNames returns the channel columns present in the table, in
// display order.
func (t *Table) ChannelNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, name := range Channels {
		if _, ok := t.Columns[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// ValidChannels returns the present channels with at least one finite value.
func (t *Table) ValidChannels() []string {
	var valid []string
	for _, name := range t.ChannelNames() {
		if slices.ContainsFunc(t.Columns[name], isFinite) {
			valid = append(valid, name)
		}
	}
	return valid
}

// Channel returns the series of one channel: values recorded at the same
// temperature are averaged, missing values dropped, and the result sorted
// by temperature.
func (t *Table) Channel(name string) (series.Series, error) {
	col, ok := t.Columns[name]
	if !ok {
		return series.Series{}, fmt.Errorf("%w: %q (have %v)", ErrUnknownChannel, name, t.ChannelNames())
	}

	s, err := series.GroupByTemperature(t.Temps, col)
	if err != nil {
		return series.Series{}, fmt.Errorf("dataset: channel %s: %w", name, err)
	}

	return s, nil
}

func (t *Table) validate() error {
	if t.Len() == 0 {
		return ErrEmpty
	}
	if len(t.Columns) == 0 {
		return ErrNoChannels
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
