package otel

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config controls the OTLP exporter. It is read from the environment with
// caarlos0/env; exporting is on by default once an endpoint is set.
type Config struct {
	Endpoint string `env:"LAMBDATRACE_OTEL_ENDPOINT"`
	Enabled  bool   `env:"LAMBDATRACE_OTEL_ENABLED" envDefault:"true"`
}

// Setup registers a global OTLP/HTTP tracer provider for serviceName. The
// resource names the Lambda function when running inside one.
//
// When the endpoint is empty or Enabled is false, Setup returns a no-op
// shutdown function and leaves the global provider alone. Recorders built
// from the registered provider flush after every invocation; shutdown only
// matters for processes that exit.
func Setup(ctx context.Context, serviceName string, cfg Config) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if !cfg.Enabled || cfg.Endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx, resource.WithAttributes(resourceAttributes(serviceName)...))
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

func resourceAttributes(serviceName string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{semconv.ServiceName(serviceName)}
	if lambdacontext.FunctionName != "" {
		attrs = append(attrs,
			semconv.CloudProviderAWS,
			semconv.FaaSName(lambdacontext.FunctionName),
			semconv.FaaSVersion(lambdacontext.FunctionVersion),
		)
	}
	return attrs
}
