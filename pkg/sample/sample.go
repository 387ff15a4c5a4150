// Package sample reads and writes profiler output.
//
// Profiler output is a plain text log with one timed function invocation per line:
//
//	<function>:<runtime in milliseconds>
//
// The instrumented profiler quotes the function name and pads the runtime,
// so lines like `"draw_scene": 1.2345` are accepted as well.
package sample

// Sample is a single timed invocation of a function.
type Sample struct {
	Function string  // name of the profiled function
	Runtime  float64 // runtime in milliseconds
}
