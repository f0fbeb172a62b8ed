// Package handlertrace wraps Lambda-style handlers so each invocation is
// traced and attributed to the resource that triggered it.
//
// Wrap opens one capture per invocation through a Recorder, labels the
// active scope and records the classified event source before delegating to
// the handler. The handler's result and error are returned untouched.
package handlertrace

import (
	"context"

	"github.com/louisbranch/lambdatrace/pkg/eventsource"
)

// Scope labels written on every annotated invocation.
const (
	ScopeName      = "Lambda Handler Context"
	Namespace      = "AWS"
	EventSourceKey = "event_source"
)

// DefaultCaptureName names the capture opened around each invocation.
const DefaultCaptureName = "handler"

// Recorder is the tracing collaborator.
//
// Capture brackets fn in a new scope that is closed when fn returns, panics
// or fails, and returns fn's error. Current returns the active scope carried
// by ctx, or nil when there is none.
type Recorder interface {
	Capture(ctx context.Context, name string, fn func(context.Context) error) error
	Current(ctx context.Context) Scope
}

// Scope is the mutable annotation target of an open capture.
type Scope interface {
	SetName(name string)
	SetNamespace(namespace string)
	// SetAWS stores a free-form attribute in the scope's AWS namespace.
	SetAWS(key string, value any)
}

// Handler is the signature accepted by lambda.Start.
type Handler[E, R any] func(ctx context.Context, event E) (R, error)

type options struct {
	classifier  *eventsource.Classifier
	captureName string
}

// Option configures Wrap.
type Option func(*options)

// WithClassifier sets the classifier used to derive the event source.
func WithClassifier(c *eventsource.Classifier) Option {
	return func(o *options) {
		if c != nil {
			o.classifier = c
		}
	}
}

// WithCaptureName overrides DefaultCaptureName.
func WithCaptureName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.captureName = name
		}
	}
}

// Wrap returns a handler that traces each call to handler through rec. A nil
// rec returns handler unchanged.
func Wrap[E, R any](rec Recorder, handler Handler[E, R], opts ...Option) Handler[E, R] {
	o := options{
		classifier:  eventsource.New(nil),
		captureName: DefaultCaptureName,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if rec == nil || handler == nil {
		return handler
	}

	return func(ctx context.Context, event E) (R, error) {
		var (
			result     R
			handlerErr error
			called     bool
		)
		_ = rec.Capture(ctx, o.captureName, func(ctx context.Context) error {
			ctx = annotate(ctx, rec, o.classifier, event)
			called = true
			result, handlerErr = handler(ctx, event)
			return handlerErr
		})
		if !called {
			// The recorder never ran the capture body.
			return handler(ctx, event)
		}
		return result, handlerErr
	}
}

type eventSourceKey struct{}

// EventSourceFromContext returns the event source Wrap recorded for the
// invocation carried by ctx. It reports false when the invocation was not
// annotated.
func EventSourceFromContext(ctx context.Context) (string, bool) {
	source, ok := ctx.Value(eventSourceKey{}).(string)
	return source, ok
}

// annotate labels the active scope and returns ctx carrying the event source.
func annotate(ctx context.Context, rec Recorder, classifier *eventsource.Classifier, event any) context.Context {
	scope := rec.Current(ctx)
	if scope == nil {
		return ctx
	}
	source := classifier.Classify(event)
	scope.SetName(ScopeName)
	scope.SetNamespace(Namespace)
	scope.SetAWS(EventSourceKey, source)
	return context.WithValue(ctx, eventSourceKey{}, source)
}
