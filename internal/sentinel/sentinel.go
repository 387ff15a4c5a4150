// Package sentinel provides standardized error definitions for profstat.
// This package centralizes the errors returned across the parsing, aggregation
// and rendering components, so callers can match them with errors.Is regardless
// of the context added at each call site.
//
// The errors defined here cover:
// - Invocation errors (missing or extra command line arguments)
// - I/O failures (unreadable profiler output, failed report writes)
// - Parse failures (malformed lines, non-numeric runtimes)
// - Configuration errors (invalid option values)
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrUsage is returned when the command is invoked without the profiler output path.
	ErrUsage = ewrap.New("provide profiler output file")

	// ErrReadProfile is returned when the profiler output cannot be opened or read.
	ErrReadProfile = ewrap.New("failed to read profiler output")

	// ErrWriteReport is returned when the report cannot be written to its destination.
	ErrWriteReport = ewrap.New("failed to write report")

	// ErrMalformedLine is returned when a line does not split into a function name and a runtime.
	ErrMalformedLine = ewrap.New("malformed profiler line")

	// ErrInvalidRuntime is returned when the runtime field is not a finite number.
	ErrInvalidRuntime = ewrap.New("invalid runtime")

	// ErrInvalidOption is returned when an option is given a value outside its domain.
	ErrInvalidOption = ewrap.New("invalid option")

	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")

	// ErrFunctionNotFound is returned when stats are requested for a function with no samples.
	ErrFunctionNotFound = ewrap.New("function not found")
)
