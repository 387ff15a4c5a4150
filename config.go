package profstat

import (
	"github.com/hyp3rd/profstat/pkg/stats"
)

// Option is a function type that can be used to configure the `Profiler` struct.
type Option func(*Profiler)

// ApplyOptions applies the given options to the given profiler.
func ApplyOptions(profiler *Profiler, options ...Option) {
	for _, option := range options {
		option(profiler)
	}
}

// WithDelimiter is an option that sets the rune separating the function name from the runtime.
// It defaults to ':' as written by the instrumented profiler.
func WithDelimiter(delimiter rune) Option {
	return func(profiler *Profiler) {
		profiler.delimiter = delimiter
	}
}

// WithNameWidth is an option that sets the width of the function name column of the report.
func WithNameWidth(width int) Option {
	return func(profiler *Profiler) {
		profiler.nameWidth = width
	}
}

// WithPrecision is an option that sets the number of decimals printed for the mean and the standard deviation.
func WithPrecision(precision int) Option {
	return func(profiler *Profiler) {
		profiler.precision = precision
	}
}

// WithUnit is an option that sets the unit printed after every row of the report.
func WithUnit(unit string) Option {
	return func(profiler *Profiler) {
		profiler.unit = unit
	}
}

// WithProgress is an option that sets the callback notified while functions are aggregated.
// The callback never affects the results or their order.
func WithProgress(progress stats.ProgressFunc) Option {
	return func(profiler *Profiler) {
		profiler.progress = progress
	}
}
