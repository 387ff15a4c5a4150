package middleware

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyp3rd/profstat"
	"github.com/hyp3rd/profstat/internal/telemetry/attrs"
	"github.com/hyp3rd/profstat/pkg/sample"
	"github.com/hyp3rd/profstat/pkg/stats"
)

// OTelTracingMiddleware wraps profstat.Service methods with OpenTelemetry spans.
type OTelTracingMiddleware struct {
	next   profstat.Service
	tracer trace.Tracer
	// static attributes applied to all spans
	commonAttrs []attribute.KeyValue
}

// OTelTracingOption allows configuring the tracing middleware.
type OTelTracingOption func(*OTelTracingMiddleware)

// WithCommonAttributes sets attributes applied to all spans.
func WithCommonAttributes(attributes ...attribute.KeyValue) OTelTracingOption {
	return func(m *OTelTracingMiddleware) { m.commonAttrs = append(m.commonAttrs, attributes...) }
}

// NewOTelTracingMiddleware creates a tracing middleware.
func NewOTelTracingMiddleware(next profstat.Service, tracer trace.Tracer, opts ...OTelTracingOption) profstat.Service {
	mw := &OTelTracingMiddleware{next: next, tracer: tracer}
	for _, o := range opts {
		o(mw)
	}

	return mw
}

// Load implements Service.Load with tracing.
func (mw OTelTracingMiddleware) Load(ctx context.Context, path string) ([]sample.Sample, error) {
	ctx, span := mw.startSpan(ctx, "profstat.Load", attribute.String(attrs.AttrPath, path))
	defer span.End()

	samples, err := mw.next.Load(ctx, path)
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	span.SetAttributes(attribute.Int(attrs.AttrSamplesCount, len(samples)))

	return samples, nil
}

// Aggregate implements Service.Aggregate with tracing.
func (mw OTelTracingMiddleware) Aggregate(ctx context.Context, samples []sample.Sample) ([]stats.FunctionStats, error) {
	ctx, span := mw.startSpan(ctx, "profstat.Aggregate", attribute.Int(attrs.AttrSamplesCount, len(samples)))
	defer span.End()

	results, err := mw.next.Aggregate(ctx, samples)
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	span.SetAttributes(attribute.Int(attrs.AttrFunctionsCount, len(results)))

	return results, nil
}

// Render implements Service.Render with tracing.
func (mw OTelTracingMiddleware) Render(ctx context.Context, w io.Writer, results []stats.FunctionStats) error {
	ctx, span := mw.startSpan(ctx, "profstat.Render", attribute.Int(attrs.AttrFunctionsCount, len(results)))
	defer span.End()

	err := mw.next.Render(ctx, w, results)
	if err != nil {
		recordError(span, err)
	}

	return err
}

func (mw OTelTracingMiddleware) startSpan(ctx context.Context, name string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := mw.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	if len(mw.commonAttrs) > 0 {
		span.SetAttributes(mw.commonAttrs...)
	}

	if len(attributes) > 0 {
		span.SetAttributes(attributes...)
	}

	return ctx, span
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
