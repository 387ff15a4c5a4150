// Package middleware provides various middleware implementations for the profstat service.
// This package includes logging middleware that wraps the profstat service to provide
// execution time logging and stage tracing for debugging and monitoring purposes.
package middleware

import (
	"context"
	"io"
	"time"

	"github.com/hyp3rd/profstat"
	"github.com/hyp3rd/profstat/pkg/sample"
	"github.com/hyp3rd/profstat/pkg/stats"
)

// Logger describes a logging interface allowing to implement different external, or custom logger.
// Tested with Uber's Zap sugared logger, but should work with any other logger that matches the interface.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

// LoggingMiddleware is a middleware that logs the time it takes to execute the next middleware.
// Must implement the profstat.Service interface.
type LoggingMiddleware struct {
	next   profstat.Service
	logger Logger
}

// NewLoggingMiddleware returns a new LoggingMiddleware.
func NewLoggingMiddleware(next profstat.Service, logger Logger) profstat.Service {
	return &LoggingMiddleware{next: next, logger: logger}
}

// Load logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Load(ctx context.Context, path string) ([]sample.Sample, error) {
	defer func(begin time.Time) {
		mw.logger.Infof("method Load took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Infof("Load method invoked with path: %s", path)

	samples, err := mw.next.Load(ctx, path)
	if err != nil {
		mw.logger.Errorf("Load failed: %v", err)

		return nil, err
	}

	mw.logger.Infof("Load read %d samples", len(samples))

	return samples, nil
}

// Aggregate logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Aggregate(ctx context.Context, samples []sample.Sample) ([]stats.FunctionStats, error) {
	defer func(begin time.Time) {
		mw.logger.Infof("method Aggregate took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Infof("Aggregate method invoked with %d samples", len(samples))

	results, err := mw.next.Aggregate(ctx, samples)
	if err != nil {
		mw.logger.Errorf("Aggregate failed: %v", err)

		return nil, err
	}

	mw.logger.Infof("Aggregate found %d functions", len(results))

	return results, nil
}

// Render logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Render(ctx context.Context, w io.Writer, results []stats.FunctionStats) error {
	defer func(begin time.Time) {
		mw.logger.Infof("method Render took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Infof("Render method invoked with %d functions", len(results))

	err := mw.next.Render(ctx, w, results)
	if err != nil {
		mw.logger.Errorf("Render failed: %v", err)
	}

	return err
}
