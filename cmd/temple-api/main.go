// Package main implements the temple-api command: the admin API server plus
// the operational subcommands that run against its database.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"temple-admin/internal/config"
)

var (
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "temple-api",
	Short: "Temple community administration API",
	Long: `temple-api serves the temple administration REST API and provides
commands for database migrations and seeding.

Configuration is read from the environment (and a .env file when present).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedAdminCmd)
	rootCmd.AddCommand(seedDemoCmd)
	rootCmd.AddCommand(purgeAuditCmd)
}

// setup loads configuration and installs the process logger
func setup(out io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := newLogger(cfg, out)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// newLogger logs JSON in production and text everywhere else
func newLogger(cfg *config.Config, out io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler).With("service", "temple-api")
}
