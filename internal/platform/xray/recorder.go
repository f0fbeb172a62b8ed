// Package xray adapts the AWS X-Ray SDK to the handlertrace recorder.
package xray

import (
	"context"
	"fmt"

	"github.com/aws/aws-xray-sdk-go/strategy/ctxmissing"
	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/aws/aws-xray-sdk-go/xraylog"
	"go.uber.org/zap"

	"github.com/louisbranch/lambdatrace/pkg/handlertrace"
)

// Config controls the X-Ray SDK.
type Config struct {
	DaemonAddr     string `env:"LAMBDATRACE_XRAY_DAEMON_ADDR"`
	ServiceVersion string `env:"LAMBDATRACE_XRAY_SERVICE_VERSION"`
}

// Configure applies cfg to the global X-Ray recorder. A missing segment is
// logged instead of panicking, and SDK logs are routed to log.
func Configure(cfg Config, log *zap.Logger) error {
	if log != nil {
		xray.SetLogger(zapLogger{log: log.Named("xray")})
	}
	err := xray.Configure(xray.Config{
		DaemonAddr:             cfg.DaemonAddr,
		ServiceVersion:         cfg.ServiceVersion,
		ContextMissingStrategy: ctxmissing.NewDefaultLogErrorStrategy(),
	})
	if err != nil {
		return fmt.Errorf("configure xray: %w", err)
	}
	return nil
}

// Recorder traces handler invocations as X-Ray subsegments.
type Recorder struct{}

// NewRecorder returns an X-Ray backed recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Capture runs fn in a new subsegment of the segment carried by ctx.
func (Recorder) Capture(ctx context.Context, name string, fn func(context.Context) error) error {
	return xray.Capture(ctx, name, fn)
}

// Current returns the segment or subsegment carried by ctx, or nil.
func (Recorder) Current(ctx context.Context) handlertrace.Scope {
	seg := xray.GetSegment(ctx)
	if seg == nil {
		return nil
	}
	return segmentScope{seg: seg}
}

type segmentScope struct {
	seg *xray.Segment
}

func (s segmentScope) SetName(name string) {
	s.seg.Lock()
	defer s.seg.Unlock()
	s.seg.Name = name
}

func (s segmentScope) SetNamespace(namespace string) {
	s.seg.Lock()
	defer s.seg.Unlock()
	s.seg.Namespace = namespace
}

func (s segmentScope) SetAWS(key string, value any) {
	s.seg.Lock()
	defer s.seg.Unlock()
	if s.seg.AWS == nil {
		s.seg.AWS = map[string]any{}
	}
	s.seg.AWS[key] = value
}

type zapLogger struct {
	log *zap.Logger
}

func (l zapLogger) Log(level xraylog.LogLevel, msg fmt.Stringer) {
	switch level {
	case xraylog.LogLevelDebug:
		l.log.Debug(msg.String())
	case xraylog.LogLevelInfo:
		l.log.Info(msg.String())
	case xraylog.LogLevelWarn:
		l.log.Warn(msg.String())
	default:
		l.log.Error(msg.String())
	}
}
