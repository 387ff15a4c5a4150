package middleware

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hyp3rd/profstat"
	"github.com/hyp3rd/profstat/internal/telemetry/attrs"
	"github.com/hyp3rd/profstat/pkg/sample"
	"github.com/hyp3rd/profstat/pkg/stats"
)

// OTelMetricsMiddleware emits OpenTelemetry metrics for service methods.
type OTelMetricsMiddleware struct {
	next  profstat.Service
	meter metric.Meter

	// instruments
	calls     metric.Int64Counter
	durations metric.Float64Histogram
}

// NewOTelMetricsMiddleware constructs a metrics middleware using the provided meter.
func NewOTelMetricsMiddleware(next profstat.Service, meter metric.Meter) (profstat.Service, error) {
	calls, err := meter.Int64Counter("profstat.calls")
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	durations, err := meter.Float64Histogram("profstat.duration.ms", metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("create histogram: %w", err)
	}

	return &OTelMetricsMiddleware{next: next, meter: meter, calls: calls, durations: durations}, nil
}

// Load implements Service.Load with metrics.
func (mw *OTelMetricsMiddleware) Load(ctx context.Context, path string) ([]sample.Sample, error) {
	start := time.Now()
	samples, err := mw.next.Load(ctx, path)
	mw.rec(ctx, "Load", start, err, attribute.Int(attrs.AttrSamplesCount, len(samples)))

	return samples, err
}

// Aggregate implements Service.Aggregate with metrics.
func (mw *OTelMetricsMiddleware) Aggregate(ctx context.Context, samples []sample.Sample) ([]stats.FunctionStats, error) {
	start := time.Now()
	results, err := mw.next.Aggregate(ctx, samples)
	mw.rec(ctx, "Aggregate", start, err, attribute.Int(attrs.AttrFunctionsCount, len(results)))

	return results, err
}

// Render implements Service.Render with metrics.
func (mw *OTelMetricsMiddleware) Render(ctx context.Context, w io.Writer, results []stats.FunctionStats) error {
	start := time.Now()
	err := mw.next.Render(ctx, w, results)
	mw.rec(ctx, "Render", start, err, attribute.Int(attrs.AttrFunctionsCount, len(results)))

	return err
}

// rec records call count and duration with attributes.
func (mw *OTelMetricsMiddleware) rec(ctx context.Context, stage string, start time.Time, err error, attributes ...attribute.KeyValue) {
	base := []attribute.KeyValue{
		attribute.String(attrs.AttrStage, stage),
		attribute.Bool(attrs.AttrFailed, err != nil),
	}
	if len(attributes) > 0 {
		base = append(base, attributes...)
	}

	mw.calls.Add(ctx, 1, metric.WithAttributes(base...))
	mw.durations.Record(ctx, float64(time.Since(start).Microseconds())/1000, metric.WithAttributes(base...))
}
