package dataset

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Format identifies an export file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatCSV
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// FormatFromPath derives the format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	default:
		return FormatUnknown
	}
}

// Options controls decoding.
type Options struct {
	// Encoding is the WHATWG name of the text encoding ("utf-8", "gbk",
	// "gb18030", ...). Empty means UTF-8.
	Encoding string
}

// Option mutates Options.
type Option func(*Options)

// WithEncoding sets the text encoding of the export.
func WithEncoding(name string) Option {
	return func(o *Options) {
		o.Encoding = name
	}
}

func applyOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Load reads an export from path. The format is taken from the extension.
func Load(path string, opts ...Option) (*Table, error) {
	format := FormatFromPath(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: %q (supported: .json, .csv)", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Read(f, format, opts...)
}

// Read decodes an export in the given format from r.
func Read(r io.Reader, format Format, opts ...Option) (*Table, error) {
	o := applyOptions(opts)

	r, err := decodeText(r, o.Encoding)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		return readJSON(r)
	case FormatCSV:
		return readCSV(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

// ReadJSON decodes a JSON array of row objects.
func ReadJSON(r io.Reader, opts ...Option) (*Table, error) {
	return Read(r, FormatJSON, opts...)
}

// ReadCSV decodes a CSV export with a header row.
func ReadCSV(r io.Reader, opts ...Option) (*Table, error) {
	return Read(r, FormatCSV, opts...)
}

// decodeText wraps r so that it yields UTF-8 and strips a UTF-8 byte order
// mark.
func decodeText(r io.Reader, name string) (io.Reader, error) {
	var enc encoding.Encoding = unicode.UTF8BOM

	if name != "" && !strings.EqualFold(name, "utf-8") && !strings.EqualFold(name, "utf8") {
		e, err := htmlindex.Get(name)
		if err != nil {
			return nil, fmt.Errorf("dataset: encoding %q: %w", name, err)
		}
		enc = e
	}

	return transform.NewReader(r, enc.NewDecoder()), nil
}

func readJSON(r io.Reader) (*Table, error) {
	var rows []map[string]any

	if err := json.NewDecoder(bufio.NewReader(r)).Decode(&rows); err != nil {
		return nil, fmt.Errorf("dataset: json: %w", err)
	}

	t := newTable(len(rows))
	present := make(map[string]bool, len(Channels))
	hasTemp, hasStamp := false, false

	for _, row := range rows {
		if _, ok := row[TemperatureColumn]; ok {
			hasTemp = true
		}
		if _, ok := row[TimestampColumn]; ok {
			hasStamp = true
		}
		for _, name := range Channels {
			if _, ok := row[name]; ok {
				present[name] = true
			}
		}
	}

	if len(rows) > 0 && !hasTemp {
		return nil, ErrMissingTemperature
	}

	for _, name := range Channels {
		if present[name] {
			t.Columns[name] = make([]float64, 0, len(rows))
		}
	}
	if hasStamp {
		t.Timestamps = make([]string, 0, len(rows))
	}

	for _, row := range rows {
		t.Temps = append(t.Temps, jsonNumber(row[TemperatureColumn]))
		if hasStamp {
			s, _ := row[TimestampColumn].(string)
			t.Timestamps = append(t.Timestamps, s)
		}
		for name := range t.Columns {
			t.Columns[name] = append(t.Columns[name], jsonNumber(row[name]))
		}
	}

	if err := t.validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// jsonNumber converts a decoded JSON value to a float. Strings are parsed;
// anything else that is not a number becomes NaN.
func jsonNumber(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		return parseNumber(x)
	default:
		return math.NaN()
	}
}

func readCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: csv header: %w", err)
	}

	tempIdx, stampIdx := -1, -1
	channelIdx := make(map[string]int, len(Channels))

	for i, name := range header {
		name = strings.TrimSpace(name)
		switch {
		case name == TemperatureColumn:
			tempIdx = i
		case name == TimestampColumn:
			stampIdx = i
		default:
			for _, ch := range Channels {
				if name == ch {
					channelIdx[ch] = i
				}
			}
		}
	}

	if tempIdx < 0 {
		return nil, ErrMissingTemperature
	}

	t := newTable(0)
	for name := range channelIdx {
		t.Columns[name] = nil
	}
	if stampIdx >= 0 {
		t.Timestamps = []string{}
	}

	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: csv line %d: %w", line, err)
		}

		t.Temps = append(t.Temps, field(record, tempIdx))
		if stampIdx >= 0 {
			s := ""
			if stampIdx < len(record) {
				s = record[stampIdx]
			}
			t.Timestamps = append(t.Timestamps, s)
		}
		for name, idx := range channelIdx {
			t.Columns[name] = append(t.Columns[name], field(record, idx))
		}
	}

	if err := t.validate(); err != nil {
		return nil, err
	}

	return t, nil
}

func field(record []string, idx int) float64 {
	if idx >= len(record) {
		return math.NaN()
	}
	return parseNumber(record[idx])
}

// parseNumber parses s as a float. Blank or invalid text is NaN.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
