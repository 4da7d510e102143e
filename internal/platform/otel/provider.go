// Package otel configures OpenTelemetry tracing for portfolio.space services.
package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/portfolio.space/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName is the tracer name used by portfolio.space packages.
const InstrumentationName = "github.com/louisbranch/portfolio.space"

type tracingEnv struct {
	Endpoint string `env:"OTEL_ENDPOINT"`
	Enabled  string `env:"OTEL_ENABLED"`
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when PORTFOLIO_SPACE_OTEL_ENDPOINT is empty or
// PORTFOLIO_SPACE_OTEL_ENABLED is "false", Setup returns a no-op shutdown
// function and leaves the global no-op provider in place.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	var raw tracingEnv
	if err := config.ParseEnv(&raw); err != nil {
		return noop, err
	}
	if strings.EqualFold(strings.TrimSpace(raw.Enabled), "false") {
		return noop, nil
	}
	endpoint := strings.TrimSpace(raw.Endpoint)
	if endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return noop, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, fmt.Errorf("build otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns the portfolio.space tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}
