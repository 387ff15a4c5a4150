// Package constants defines the default layout and parsing settings for profstat.
// The defaults reproduce the report format of the original profiling script and
// the line format written by the instrumented profiler.
package constants

const (
	// DefaultDelimiter separates the function name from the runtime on each line.
	DefaultDelimiter = ':'
	// DefaultNameWidth is the width the function name column is left-justified to.
	// Longer names are never truncated, they push the second column to the right.
	DefaultNameWidth = 30
	// DefaultPrecision is the number of decimals printed for the mean and the standard deviation.
	DefaultPrecision = 4
	// DefaultUnit is appended to every row. Runtimes are recorded in milliseconds.
	DefaultUnit = "ms"
	// FunctionHeader labels the first column.
	FunctionHeader = "Function"
	// MeanHeader labels the second column.
	MeanHeader = "Mean execution time"
	// RecorderPrecision is the number of significant digits the recorder writes runtimes with.
	RecorderPrecision = 14
)
