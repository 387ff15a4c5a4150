package profstat

import (
	"context"
	"io"

	"github.com/hyp3rd/profstat/pkg/sample"
	"github.com/hyp3rd/profstat/pkg/stats"
)

// Service is the service interface for the profile aggregator.
// It enables middleware to be added to the service.
type Service interface {
	// Load reads every sample from the profiler output at path
	Load(ctx context.Context, path string) ([]sample.Sample, error)
	// Aggregate groups the samples per function and returns their stats, slowest function first
	Aggregate(ctx context.Context, samples []sample.Sample) ([]stats.FunctionStats, error)
	// Render writes the report of the aggregated stats to w
	Render(ctx context.Context, w io.Writer, results []stats.FunctionStats) error
}

// Middleware describes a service middleware.
type Middleware func(Service) Service

// ApplyMiddleware applies middlewares to a service.
func ApplyMiddleware(svc Service, mw ...Middleware) Service {
	// Apply each middleware in the chain
	for _, m := range mw {
		svc = m(svc)
	}
	// Return the decorated service
	return svc
}

// Run loads the profiler output at path, aggregates it and writes the report to w.
// The first failing stage aborts the run.
func Run(ctx context.Context, svc Service, path string, w io.Writer) error {
	samples, err := svc.Load(ctx, path)
	if err != nil {
		return err
	}

	results, err := svc.Aggregate(ctx, samples)
	if err != nil {
		return err
	}

	return svc.Render(ctx, w, results)
}
