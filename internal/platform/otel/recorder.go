package otel

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/lambdatrace/pkg/handlertrace"
)

const instrumentationName = "github.com/louisbranch/lambdatrace/internal/platform/otel"

// flushTimeout bounds the export performed after each invocation.
const flushTimeout = 2 * time.Second

// Attribute keys written by span scopes.
const (
	NamespaceKey    = "namespace"
	AWSKeyPrefix    = "aws."
	InvocationIDKey = "faas.invocation_id"
)

// flusher is implemented by SDK tracer providers.
type flusher interface {
	ForceFlush(ctx context.Context) error
}

// Recorder traces handler invocations as OpenTelemetry spans.
type Recorder struct {
	tracer  trace.Tracer
	flusher flusher
}

// NewRecorder returns a recorder using tp, or the global provider when tp is
// nil. Providers that can flush are flushed after every capture, since a
// Lambda sandbox may be frozen before a batching processor exports.
func NewRecorder(tp trace.TracerProvider) *Recorder {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	rec := &Recorder{tracer: tp.Tracer(instrumentationName)}
	if f, ok := tp.(flusher); ok {
		rec.flusher = f
	}
	return rec
}

// Capture runs fn inside a server span named name. Errors returned by fn are
// recorded on the span and returned unchanged; panics end the span and are
// re-raised. The span is exported before Capture returns.
func (r *Recorder) Capture(ctx context.Context, name string, fn func(context.Context) error) (err error) {
	opts := []trace.SpanStartOption{trace.WithSpanKind(trace.SpanKindServer)}
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		opts = append(opts, trace.WithAttributes(attribute.String(InvocationIDKey, lc.AwsRequestID)))
	}
	ctx, span := r.tracer.Start(ctx, name, opts...)
	defer func() {
		if p := recover(); p != nil {
			span.SetStatus(codes.Error, fmt.Sprint(p))
			span.End()
			r.flush(ctx)
			panic(p)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		r.flush(ctx)
	}()
	return fn(ctx)
}

func (r *Recorder) flush(ctx context.Context) {
	if r.flusher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	defer cancel()
	if err := r.flusher.ForceFlush(ctx); err != nil {
		otel.Handle(err)
	}
}

// Current returns the recording span carried by ctx, or nil.
func (r *Recorder) Current(ctx context.Context) handlertrace.Scope {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return nil
	}
	return spanScope{span: span}
}

type spanScope struct {
	span trace.Span
}

func (s spanScope) SetName(name string) {
	s.span.SetName(name)
}

func (s spanScope) SetNamespace(namespace string) {
	s.span.SetAttributes(attribute.String(NamespaceKey, namespace))
}

func (s spanScope) SetAWS(key string, value any) {
	s.span.SetAttributes(attributeOf(AWSKeyPrefix+key, value))
}

func attributeOf(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case bool:
		return attribute.Bool(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case fmt.Stringer:
		return attribute.String(key, v.String())
	default:
		return attribute.String(key, fmt.Sprint(v))
	}
}
