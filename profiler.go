// Package profstat aggregates profiler output into per-function runtime statistics.
//
// A profiler output file holds one timed invocation per line, `<function>:<runtime ms>`.
// The Profiler loads such a file, computes the mean and the population standard
// deviation of every function's runtime and renders them slowest function first:
//
//	profiler, err := profstat.NewProfiler()
//	if err != nil {
//		return err
//	}
//
//	err = profstat.Run(ctx, profiler, "profile.log", os.Stdout)
package profstat

import (
	"context"
	"io"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/profstat/internal/constants"
	"github.com/hyp3rd/profstat/internal/sentinel"
	"github.com/hyp3rd/profstat/pkg/report"
	"github.com/hyp3rd/profstat/pkg/sample"
	"github.com/hyp3rd/profstat/pkg/stats"
)

// Profiler is the default Service implementation.
type Profiler struct {
	delimiter rune
	nameWidth int
	precision int
	unit      string
	progress  stats.ProgressFunc
	table     *report.Table
}

// NewProfiler returns a Profiler with the default settings, overridden by options.
func NewProfiler(options ...Option) (*Profiler, error) {
	profiler := &Profiler{
		delimiter: constants.DefaultDelimiter,
		nameWidth: constants.DefaultNameWidth,
		precision: constants.DefaultPrecision,
		unit:      constants.DefaultUnit,
	}

	ApplyOptions(profiler, options...)

	if !sample.ValidDelimiter(profiler.delimiter) {
		return nil, ewrap.Wrapf(sentinel.ErrInvalidOption, "delimiter %q", profiler.delimiter)
	}

	table, err := report.NewTable(
		report.WithNameWidth(profiler.nameWidth),
		report.WithPrecision(profiler.precision),
		report.WithUnit(profiler.unit),
	)
	if err != nil {
		return nil, err
	}

	profiler.table = table

	return profiler, nil
}

// Load reads every sample from the profiler output at path.
func (p *Profiler) Load(ctx context.Context, path string) ([]sample.Sample, error) {
	return sample.ReadFile(ctx, path, sample.WithDelimiter(p.delimiter))
}

// Aggregate groups the samples per function and returns their stats, slowest function first.
func (p *Profiler) Aggregate(ctx context.Context, samples []sample.Sample) ([]stats.FunctionStats, error) {
	collector := stats.NewCollector()
	collector.AddAll(samples)

	results, err := collector.GetStats(ctx, p.progress)
	if err != nil {
		return nil, err
	}

	stats.SortByMeanDesc(results)

	return results, nil
}

// Render writes the report of results to w, in the order given.
func (p *Profiler) Render(ctx context.Context, w io.Writer, results []stats.FunctionStats) error {
	if err := ctx.Err(); err != nil {
		return ewrap.Wrap(err, "rendering report")
	}

	return p.table.Render(w, results)
}
