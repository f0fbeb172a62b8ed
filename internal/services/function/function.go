// Package function is the reference Lambda function served by cmd/handler.
package function

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"

	"github.com/louisbranch/lambdatrace/pkg/eventsource"
	"github.com/louisbranch/lambdatrace/pkg/handlertrace"
)

// Response reports how an invocation was attributed.
type Response struct {
	RequestID   string `json:"request_id,omitempty"`
	EventSource string `json:"event_source"`
}

// Function answers each invocation with its classified event source.
type Function struct {
	log        *zap.Logger
	classifier *eventsource.Classifier
}

// New returns a Function logging to log.
func New(log *zap.Logger, classifier *eventsource.Classifier) *Function {
	if log == nil {
		log = zap.NewNop()
	}
	if classifier == nil {
		classifier = eventsource.New(log)
	}
	return &Function{log: log, classifier: classifier}
}

// Handle implements the Lambda handler. The event source recorded by the
// tracing wrapper is reused; untraced invocations are classified here.
func (f *Function) Handle(ctx context.Context, event json.RawMessage) (Response, error) {
	source, ok := handlertrace.EventSourceFromContext(ctx)
	if !ok {
		source = f.classifier.Classify(event)
	}
	resp := Response{EventSource: source}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		resp.RequestID = lc.AwsRequestID
	}
	f.log.Info("handled invocation",
		zap.String("request_id", resp.RequestID),
		zap.String("event_source", resp.EventSource))
	return resp, nil
}
