// Package attrs provides reusable OpenTelemetry attribute key constants
// to avoid duplication across middlewares.
package attrs

const (
	// AttrPath represents the telemetry attribute key for the profiler output path being loaded.
	AttrPath = "profile.path"
	// AttrSamplesCount represents the telemetry attribute key for the number of samples
	// loaded or aggregated in a stage.
	AttrSamplesCount = "samples.count"
	// AttrFunctionsCount represents the telemetry attribute key for the number of distinct
	// functions produced by aggregation or rendered in the report.
	AttrFunctionsCount = "functions.count"
	// AttrStage represents the telemetry attribute key naming the pipeline stage.
	AttrStage = "stage"
	// AttrFailed flags a stage that returned an error.
	AttrFailed = "failed"
)
