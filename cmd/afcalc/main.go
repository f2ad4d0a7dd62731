// Command afcalc determines austenite transformation temperatures (As and
// Af-tan) from a test rig export with the tangent-intersection method.
//
// Usage:
//
//	afcalc [flags] file.{json,csv}
//
// Without -channel every channel holding data is analyzed. Parameters come
// from the defaults, then the -config file, then explicit flags.
//
// Examples:
//
//	afcalc run.json
//	afcalc -channel Space2 -window 31 -order 2 run.csv
//	afcalc -low 20,30 -high 90,100 -offset -3 run.json
//	afcalc -config af.yaml -report out/ run.json
//	afcalc -list run.json
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-af/dsp/series"
	"github.com/cwbudde/algo-af/internal/config"
	"github.com/cwbudde/algo-af/internal/dataset"
	"github.com/cwbudde/algo-af/internal/report"
	"github.com/cwbudde/algo-af/measure/transform"
	"github.com/cwbudde/algo-af/stats/describe"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	channel    string
	list       bool
	encoding   string
	reportDir  string
	format     string

	outlierWindow     int
	outlierThreshold  float64
	outlierIterations int
	window            int
	order             int
	offset            int
	low, high         rangeFlag
}

// rangeFlag parses "start,end".
type rangeFlag struct {
	r   series.Range
	set bool
}

func (f *rangeFlag) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprintf("%g,%g", f.r.Start, f.r.End)
}

func (f *rangeFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return fmt.Errorf("want start,end: %q", s)
	}

	start, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return err
	}
	end, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return err
	}
	if !(start <= end) {
		return fmt.Errorf("start %g is not below end %g", start, end)
	}

	f.r = series.Range{Start: start, End: end}
	f.set = true
	return nil
}

func newFlagSet(stderr io.Writer, o *options) *flag.FlagSet {
	def := transform.DefaultConfig()

	fs := flag.NewFlagSet("afcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.configPath, "config", "", "YAML parameter file")
	fs.StringVar(&o.channel, "channel", "", "channel to analyze, e.g. Space1 (default: all channels with data)")
	fs.BoolVar(&o.list, "list", false, "list channels with data and exit")
	fs.StringVar(&o.encoding, "encoding", "", "text encoding of the data file, e.g. gbk (default: utf-8)")
	fs.StringVar(&o.reportDir, "report", "", "directory for the summary and processed data of each channel")
	fs.StringVar(&o.format, "format", string(report.FormatYAML), "summary format: yaml or json")

	fs.IntVar(&o.outlierWindow, "outlier-window", def.Outlier.Window, "outlier rolling median window (raised to at least 11)")
	fs.Float64Var(&o.outlierThreshold, "outlier-threshold", def.Outlier.Threshold, "outlier MAD multiplier")
	fs.IntVar(&o.outlierIterations, "outlier-iterations", def.Outlier.MaxIterations, "maximum outlier detection passes")
	fs.IntVar(&o.window, "window", def.SmoothingWindow, "Savitzky-Golay window length")
	fs.IntVar(&o.order, "order", def.SmoothingOrder, "Savitzky-Golay polynomial order")
	fs.IntVar(&o.offset, "offset", def.SlopeOffset, "shift of the steepest point in samples")
	fs.Var(&o.low, "low", "low temperature baseline window start,end (default: first 15% of the span)")
	fs.Var(&o.high, "high", "high temperature baseline window start,end (default: last 15% of the span)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: afcalc [flags] file.{json,csv}\n\n")
		fmt.Fprintf(stderr, "Determines As and Af-tan with the tangent-intersection method.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  afcalc run.json\n")
		fmt.Fprintf(stderr, "  afcalc -channel Space2 -window 31 -order 2 run.csv\n")
		fmt.Fprintf(stderr, "  afcalc -config af.yaml -report out/ run.json\n")
	}

	return fs
}

func run(args []string, stdout, stderr io.Writer) int {
	var o options

	fs := newFlagSet(stderr, &o)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	path := fs.Arg(0)

	if f := report.Format(o.format); f != report.FormatYAML && f != report.FormatJSON {
		fmt.Fprintf(stderr, "error: unknown -format %q (use yaml or json)\n", o.format)
		return 2
	}

	params, err := resolveParams(fs, &o)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	tbl, err := dataset.Load(path, dataset.WithEncoding(params.Encoding))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if o.list {
		if err := printChannels(stdout, tbl); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	channels := tbl.ValidChannels()
	if params.Channel != "" {
		channels = []string{params.Channel}
	}
	if len(channels) == 0 {
		fmt.Fprintf(stderr, "error: %s holds no channel data\n", path)
		return 1
	}

	analyzer, err := transform.NewAnalyzer(transform.WithConfig(params.Analysis()))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	var rows []row
	status := 0

	for _, name := range channels {
		r, err := analyzeChannel(tbl, name, analyzer, params)
		if err != nil {
			fmt.Fprintf(stderr, "error: channel %s: %v\n", name, err)
			status = 1
			continue
		}

		if !r.res.Complete() {
			fmt.Fprintf(stderr, "warning: channel %s: analysis incomplete (tangent parallel to a baseline)\n", name)
		}

		if o.reportDir != "" {
			if err := writeReport(o.reportDir, path, name, r, report.Format(o.format)); err != nil {
				fmt.Fprintf(stderr, "error: channel %s: %v\n", name, err)
				status = 1
			}
		}

		rows = append(rows, r)
	}

	if err := printResults(stdout, rows); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return status
}

// resolveParams layers the -config file and explicitly set flags over the
// defaults.
func resolveParams(fs *flag.FlagSet, o *options) (*config.File, error) {
	params := config.Default()

	if o.configPath != "" {
		f, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		params = *f
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "channel":
			params.Channel = o.channel
		case "encoding":
			params.Encoding = o.encoding
		case "outlier-window":
			params.Outlier.Window = o.outlierWindow
		case "outlier-threshold":
			params.Outlier.Threshold = o.outlierThreshold
		case "outlier-iterations":
			params.Outlier.MaxIterations = o.outlierIterations
		case "window":
			params.Smoothing.WindowLength = o.window
		case "order":
			params.Smoothing.Polyorder = o.order
		case "offset":
			params.SlopeOffset = o.offset
		case "low":
			params.LowRange = []float64{o.low.r.Start, o.low.r.End}
		case "high":
			params.HighRange = []float64{o.high.r.Start, o.high.r.End}
		}
	})

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &params, nil
}

type row struct {
	channel   string
	low, high series.Range
	res       transform.Result
	params    config.File
}

func analyzeChannel(tbl *dataset.Table, name string, analyzer *transform.Analyzer, params *config.File) (row, error) {
	s, err := tbl.Channel(name)
	if err != nil {
		return row{}, err
	}

	low, high, ok := params.Ranges()
	if !ok {
		defLow, defHigh, err := transform.DefaultRanges(s.Temps)
		if err != nil {
			return row{}, err
		}
		if len(params.LowRange) == 0 {
			low = defLow
		}
		if len(params.HighRange) == 0 {
			high = defHigh
		}
	}

	res, err := analyzer.Analyze(s, low, high)
	if err != nil {
		return row{}, err
	}

	used := *params
	used.Channel = name
	used.SetRanges(low, high)

	return row{channel: name, low: low, high: high, res: res, params: used}, nil
}

func writeReport(dir, source, channel string, r row, format report.Format) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)) + "_" + channel
	summary := report.New(r.res, r.params, report.Meta{Source: filepath.Base(source), Channel: channel})

	if err := writeFile(filepath.Join(dir, base+"."+string(format)), func(w io.Writer) error {
		return report.Write(w, summary, format)
	}); err != nil {
		return err
	}

	return writeFile(filepath.Join(dir, base+".csv"), func(w io.Writer) error {
		return report.WriteData(w, r.res)
	})
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}

// printChannels lists the channels holding data with an overview of their
// raw values.
func printChannels(w io.Writer, tbl *dataset.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Channel\tValues\tMissing\tMin\tMax\tMean\tStd\n")
	fmt.Fprintf(tw, "-------\t------\t-------\t---\t---\t----\t---\n")

	for _, name := range tbl.ValidChannels() {
		s := describe.Calculate(tbl.Columns[name])
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.6g\t%.6g\t%.6g\t%.4g\n",
			name, s.Count, s.Missing, s.Min, s.Max, s.Mean, s.Std)
	}

	return tw.Flush()
}

func printResults(w io.Writer, rows []row) error {
	if len(rows) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Channel\tAs [°C]\tAf-tan [°C]\tdT [°C]\tMax slope [°C]\tOutliers\tSamples\tLow\tHigh\n")
	fmt.Fprintf(tw, "-------\t-------\t-----------\t-------\t--------------\t--------\t-------\t---\t----\n")

	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%d\t%d\t%v\t%v\n",
			r.channel,
			r.res.Start,
			r.res.Finish,
			r.res.Interval(),
			r.res.MaxSlopeTemp,
			r.res.OutlierCount,
			r.res.Raw.Len(),
			r.low,
			r.high,
		)
	}

	fmt.Fprintf(tw, "\nChannel\tLine\tSlope\tIntercept\n")
	fmt.Fprintf(tw, "-------\t----\t-----\t---------\n")

	for _, r := range rows {
		fmt.Fprintf(tw, "%s\tlow baseline\t%.6g\t%.6g\n", r.channel, r.res.LowBaseline.Slope, r.res.LowBaseline.Intercept)
		fmt.Fprintf(tw, "%s\ttangent\t%.6g\t%.6g\n", r.channel, r.res.Tangent.Slope, r.res.Tangent.Intercept)
		fmt.Fprintf(tw, "%s\thigh baseline\t%.6g\t%.6g\n", r.channel, r.res.HighBaseline.Slope, r.res.HighBaseline.Intercept)
	}

	return tw.Flush()
}
