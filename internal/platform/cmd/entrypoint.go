package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/louisbranch/lambdatrace/internal/platform/config"
	"github.com/louisbranch/lambdatrace/internal/platform/otel"
	"github.com/louisbranch/lambdatrace/internal/platform/xray"
	"github.com/louisbranch/lambdatrace/pkg/handlertrace"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// Service identifiers for command startup telemetry and CLI naming consistency.
const (
	ServiceClassify = "classify"
	ServiceHandler  = "handler"
)

// Tracing backends selectable with LAMBDATRACE_TRACER.
const (
	TracerXRay = "xray"
	TracerOTel = "otel"
	TracerNone = "none"
)

// TelemetryConfig selects and configures the tracing backend.
type TelemetryConfig struct {
	Tracer string `env:"LAMBDATRACE_TRACER" envDefault:"xray"`
	OTel   otel.Config
	XRay   xray.Config
}

// RunOptions controls shared entrypoint behavior for service commands.
type RunOptions struct {
	// ShutdownTimeout sets the timeout used when stopping telemetry.
	ShutdownTimeout time.Duration
}

// ParseConfig loads .env files and environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if err := config.LoadDotEnv(config.DefaultDotEnv); err != nil {
		return err
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// ParseConfigFromArgs loads defaults from env and then parses flags.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string) error {
	if err := ParseConfig(cfg); err != nil {
		return err
	}
	return ParseArgs(fs, args)
}

// RunWithTelemetry configures the selected tracing backend and executes a
// service run loop with its recorder.
func RunWithTelemetry(ctx context.Context, service string, telemetry TelemetryConfig, log *zap.Logger, run func(context.Context, handlertrace.Recorder) error) error {
	return RunWithTelemetryAndOptions(ctx, service, telemetry, log, RunOptions{}, run)
}

// RunWithTelemetryAndOptions configures the selected tracing backend and
// executes a service run loop with its recorder.
func RunWithTelemetryAndOptions(ctx context.Context, service string, telemetry TelemetryConfig, log *zap.Logger, options RunOptions, run func(context.Context, handlertrace.Recorder) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	switch strings.ToLower(strings.TrimSpace(telemetry.Tracer)) {
	case TracerNone:
		return run(ctx, nil)
	case TracerXRay, "":
		if err := xray.Configure(telemetry.XRay, log); err != nil {
			return err
		}
		return run(ctx, xray.NewRecorder())
	case TracerOTel:
		shutdown, err := otel.Setup(ctx, service, telemetry.OTel)
		if err != nil {
			return err
		}
		defer func() {
			shutdownTimeout := options.ShutdownTimeout
			if shutdownTimeout <= 0 {
				shutdownTimeout = defaultOTelShutdownTimeout
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				log.Warn("otel shutdown", zap.String("service", service), zap.Error(err))
			}
		}()
		return run(ctx, otel.NewRecorder(nil))
	default:
		return fmt.Errorf("unknown tracer %q", telemetry.Tracer)
	}
}
