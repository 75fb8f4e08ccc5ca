// Package commands wires the CLI surface around the parsing core. Every
// command is thin: read input, call the domain packages, print.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/sms-ingest/pkg/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "smsparse",
		Short: "Parse bank SMS into structured, categorized transactions",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newCategorizeCommand())
	rootCmd.AddCommand(newRecurringCommand())
	rootCmd.AddCommand(newCategoriesCommand())

	return rootCmd
}

// loadEnv returns the config and a logger built from it.
func loadEnv() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	return cfg, slog.New(handler), nil
}
