// Package stats groups profiler samples per function and computes their runtime statistics.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FunctionStats contains the runtime statistics of a single function.
type FunctionStats struct {
	Function string  // name of the profiled function
	Mean     float64 // arithmetic mean of the runtimes
	StdDev   float64 // population standard deviation of the runtimes
	Count    int     // number of samples
	Min      float64 // fastest runtime
	Max      float64 // slowest runtime
}

// ProgressFunc is notified after each function is summarized.
// done counts the functions summarized so far, out of total.
type ProgressFunc func(done, total int)

// summarize computes the statistics of a non-empty set of runtimes.
// The standard deviation divides by the number of samples, not by n-1.
func summarize(function string, runtimes []float64) FunctionStats {
	mean, stdDev := stat.PopMeanStdDev(runtimes, nil)

	return FunctionStats{
		Function: function,
		Mean:     mean,
		StdDev:   stdDev,
		Count:    len(runtimes),
		Min:      floats.Min(runtimes),
		Max:      floats.Max(runtimes),
	}
}
