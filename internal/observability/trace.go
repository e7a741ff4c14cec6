package observability

import (
	"context"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Tracer exports one span per action invocation to an OTLP endpoint. Spans
// are recorded retroactively at invocation end, with explicit timestamps, so
// no tracing state threads through the handlers.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewTracer creates an OTLP tracer if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil when the endpoint is not configured; a nil Tracer is safe to
// use and records nothing.
func NewTracer(ctx context.Context) (*Tracer, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "hodos-demo"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer("hodos/actions"),
	}, nil
}

func (t *Tracer) start(context.Context, string, string) {}

func (t *Tracer) end(name, requestID string, d time.Duration, err error) {
	if t == nil {
		return
	}
	now := time.Now()
	_, span := t.tracer.Start(context.Background(), name,
		oteltrace.WithTimestamp(now.Add(-d)),
	)
	span.SetAttributes(
		attribute.String("hodos.action", name),
		attribute.String("hodos.request_id", requestID),
	)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	span.End(oteltrace.WithTimestamp(now))
}

// Shutdown flushes and closes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
