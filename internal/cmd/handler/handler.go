// Package handler parses handler command configuration and starts the traced
// Lambda function.
package handler

import (
	"context"
	"encoding/json"
	"flag"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	entrypoint "github.com/louisbranch/lambdatrace/internal/platform/cmd"
	"github.com/louisbranch/lambdatrace/internal/platform/logging"
	"github.com/louisbranch/lambdatrace/internal/services/function"
	"github.com/louisbranch/lambdatrace/pkg/eventsource"
	"github.com/louisbranch/lambdatrace/pkg/handlertrace"
)

// Config holds handler command configuration.
type Config struct {
	ServiceName string `env:"LAMBDATRACE_SERVICE_NAME" envDefault:"lambdatrace"`
	LogLevel    string `env:"LAMBDATRACE_LOG_LEVEL" envDefault:"info"`
	CaptureName string `env:"LAMBDATRACE_CAPTURE_NAME" envDefault:"handler"`
	Telemetry   entrypoint.TelemetryConfig
}

// ParseConfig parses environment and flags into a Config. Flags override the
// environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.ServiceName, "service-name", "", "Service name reported to the tracing backend")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.CaptureName, "capture-name", "", "Name of the capture opened around each invocation")
	fs.StringVar(&cfg.Telemetry.Tracer, "tracer", "", "Tracing backend (xray, otel, none)")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Start is the function that serves the wrapped handler; lambda.StartWithOptions
// outside tests.
type Start func(ctx context.Context, handler handlertrace.Handler[json.RawMessage, function.Response]) error

// Run starts the traced Lambda function.
func Run(ctx context.Context, cfg Config) error {
	return RunWith(ctx, cfg, startLambda)
}

// RunWith builds the traced handler and hands it to start.
func RunWith(ctx context.Context, cfg Config, start Start) error {
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	return entrypoint.RunWithTelemetry(ctx, cfg.ServiceName, cfg.Telemetry, log, func(ctx context.Context, rec handlertrace.Recorder) error {
		classifier := eventsource.New(log.Named("eventsource"))
		fn := function.New(log.Named("function"), classifier)
		wrapped := handlertrace.Wrap(rec, fn.Handle,
			handlertrace.WithClassifier(classifier),
			handlertrace.WithCaptureName(cfg.CaptureName))
		log.Info("starting function",
			zap.String("service", cfg.ServiceName),
			zap.String("tracer", cfg.Telemetry.Tracer))
		return start(ctx, wrapped)
	})
}

func startLambda(ctx context.Context, handler handlertrace.Handler[json.RawMessage, function.Response]) error {
	lambda.StartWithOptions(handler, lambda.WithContext(ctx))
	return nil
}
