// Package eventsource derives the resource that triggered a handler
// invocation from its event payload.
//
// Classification is total: payloads of any shape produce either an ARN-style
// identifier or Unknown, and failures are logged rather than returned.
package eventsource

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/louisbranch/lambdatrace/internal/platform/lookup"
)

// Unknown is reported when the event source cannot be determined.
const Unknown = "Unknown"

// DefaultHost stands in for a missing API gateway Host header.
const DefaultHost = "a.b.us-east-1.amazonaws.com"

// Error is the class of structural classification failures.
var Error = errs.Class("eventsource")

var (
	pathAPIID       = lookup.Path("requestContext", "apiId")
	pathAccountID   = lookup.Path("requestContext", "accountId")
	pathHTTPMethod  = lookup.Path("requestContext", "httpMethod")
	pathRequestPath = lookup.Path("requestContext", "path")
	pathHost        = lookup.Path("multiValueHeaders", "Host", 0)

	pathEventSource      = lookup.Path("Records", 0, "eventSource")
	pathEventSourceUpper = lookup.Path("Records", 0, "EventSource")
	pathTopicARN         = lookup.Path("Records", 0, "Sns", "TopicArn")
	pathEventSourceARN   = lookup.Path("Records", 0, "eventSourceARN")
	pathBucketARN        = lookup.Path("Records", 0, "s3", "bucket", "arn")
)

// Classifier maps event payloads to event source identifiers.
type Classifier struct {
	log *zap.Logger
}

// New returns a classifier logging to log. A nil log discards output.
func New(log *zap.Logger) *Classifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Classifier{log: log}
}

var defaultClassifier = New(nil)

// Classify classifies event with a classifier that discards its logs.
func Classify(event any) string {
	return defaultClassifier.Classify(event)
}

// Classify returns the identifier of the resource that produced event, or
// Unknown. Typed events and raw JSON are normalized first; see Normalize.
func (c *Classifier) Classify(event any) string {
	if c == nil {
		c = defaultClassifier
	}
	source, err := c.classify(event)
	if err != nil {
		stack := zap.Stack("stack")
		var p *panicError
		if errors.As(err, &p) {
			stack = zap.ByteString("stack", p.stack)
		}
		c.log.Error("error getting event source details", zap.Error(err), stack)
		return Unknown
	}
	return source
}

// panicError carries a recovered panic and the stack of the panicking
// goroutine at the point of recovery.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("recovered while classifying: %v", e.value)
}

func (c *Classifier) classify(event any) (source string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = Error.Wrap(&panicError{value: r, stack: debug.Stack()})
		}
	}()

	tree, err := Normalize(event)
	if err != nil {
		return "", err
	}

	if apiID := lookup.Get(tree, pathAPIID, nil); truthy(apiID) {
		return apiGatewayARN(tree, apiID)
	}
	return c.recordSource(tree), nil
}

func apiGatewayARN(tree, apiID any) (string, error) {
	account := lookup.Get(tree, pathAccountID, nil)
	host := lookup.Get(tree, pathHost, DefaultHost)
	hostname, ok := host.(string)
	if !ok {
		return "", Error.New("host header has type %T, want string", host)
	}
	segments := strings.Split(hostname, ".")
	if len(segments) < 3 {
		return "", Error.New("host header %q has no region segment", hostname)
	}
	region := segments[2]
	method := lookup.Get(tree, pathHTTPMethod, nil)
	// The resource segment of an execute-api ARN has no leading slash.
	path := strings.TrimPrefix(render(lookup.Get(tree, pathRequestPath, nil)), "/")

	return fmt.Sprintf("arn:aws:execute-api:%s:%s:%s/*/%s/%s",
		region, render(account), render(apiID), render(method), path), nil
}

// recordSource classifies record-batch events from queues, streams, topics
// and buckets. Producers disagree on the casing of the eventSource key.
func (c *Classifier) recordSource(tree any) string {
	source := renderPresent(lookup.Get(tree, pathEventSource, nil))
	if source == "" {
		source = renderPresent(lookup.Get(tree, pathEventSourceUpper, nil))
	}

	switch {
	case strings.Contains(source, "sns"):
		return identifier(lookup.Get(tree, pathTopicARN, nil))
	case strings.Contains(source, "dynamodb"), strings.Contains(source, "kinesis"):
		return identifier(lookup.Get(tree, pathEventSourceARN, nil))
	case strings.Contains(source, "s3"):
		return identifier(lookup.Get(tree, pathBucketARN, nil))
	default:
		c.log.Warn("could not get detailed event source details", zap.String("event_source", source))
		return Unknown
	}
}

// identifier renders a resolved resource value. Results are never empty.
func identifier(value any) string {
	id := render(value)
	if id == "" {
		return Unknown
	}
	return id
}
