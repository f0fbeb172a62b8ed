// Package classify implements the command that reports the event source of
// recorded event payloads.
package classify

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	entrypoint "github.com/louisbranch/lambdatrace/internal/platform/cmd"
	"github.com/louisbranch/lambdatrace/internal/platform/logging"
	"github.com/louisbranch/lambdatrace/pkg/eventsource"
)

// Config holds classify command configuration.
type Config struct {
	LogLevel string `env:"LAMBDATRACE_LOG_LEVEL" envDefault:"warn"`
}

const stdinName = "-"

// NewCommand returns the classify root command.
func NewCommand() *cobra.Command {
	var cfg Config
	cmd := &cobra.Command{
		Use:   entrypoint.ServiceClassify + " [file...]",
		Short: "Print the event source of each JSON event payload",
		Long: "Reads each file (or standard input when no file or \"-\" is given), " +
			"classifies the JSON event it contains and prints \"<name>\\t<event source>\".",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flagLevel := cfg.LogLevel
			if err := entrypoint.ParseConfig(&cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = flagLevel
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args)
		},
	}
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	return cmd
}

func run(cmd *cobra.Command, cfg Config, args []string) error {
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	classifier := eventsource.New(log)

	if len(args) == 0 {
		args = []string{stdinName}
	}
	out := cmd.OutOrStdout()
	for _, name := range args {
		payload, err := readPayload(cmd.InOrStdin(), name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s\t%s\n", name, classifier.Classify(json.RawMessage(payload))); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}

func readPayload(stdin io.Reader, name string) ([]byte, error) {
	if name == stdinName {
		payload, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return payload, nil
	}
	payload, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read event: %w", err)
	}
	return payload, nil
}
