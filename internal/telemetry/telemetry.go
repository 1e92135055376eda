// Package telemetry provides OpenTelemetry tracing for terrain synthesis.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "terrain-synth"
	serviceVersion = "0.1.0"
)

// Resource attribute keys describing the terrain run.
const (
	AlgorithmKey = attribute.Key("terrain.noise.algorithm")
	SeedKey      = attribute.Key("terrain.seed")
	LayersKey    = attribute.Key("terrain.layers")
)

// Options describes the terrain run that owns the tracer provider.
type Options struct {
	Algorithm   string  // Noise algorithm name
	Seed        int64   // Resolved run seed
	Layers      int     // Requested layer count
	SampleRatio float64 // Fraction of root traces kept; >= 1 keeps all
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter.
// Exporter endpoint and headers come from the standard OTEL_* environment
// variables (OTEL_EXPORTER_OTLP_ENDPOINT, OTEL_EXPORTER_OTLP_HEADERS).
//
// Returns a shutdown function that should be called on application exit.
// Until Setup is called, Tracer returns tracers from the global no-op provider.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx, resource.WithAttributes(Attributes(opts)...))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(Sampler(opts.SampleRatio)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Attributes returns the resource attributes for a run: service identity,
// host details and the terrain parameters that make a bake reproducible.
func Attributes(opts Options) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("host.name", hostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.version", runtime.Version()),
		SeedKey.Int64(opts.Seed),
		LayersKey.Int(opts.Layers),
	}
	if opts.Algorithm != "" {
		attrs = append(attrs, AlgorithmKey.String(opts.Algorithm))
	}
	return attrs
}

// Sampler keeps a ratio of root traces and follows the parent decision
// otherwise. A ratio of 1 or more samples everything; 0 or less samples
// nothing.
func Sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.AlwaysSample()
	case ratio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("terrain-synth/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("terrain-synth/noop")
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
