// Package main is the entry point for ArenaHunt.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/arenahunt/internal/game"
	"github.com/samdwyer/arenahunt/internal/logger"
	"github.com/samdwyer/arenahunt/internal/telemetry"
)

func main() {
	// Exit only after start's deferred log sync has run.
	os.Exit(start())
}

func start() int {
	// Load .env file for local development
	// This makes HONEYCOMB_ARENAHUNT_API_KEY and ARENAHUNT_* available
	envErr := godotenv.Load()

	// Set up OTEL environment variables from our .env variables
	telemetry.ApplyHoneycombEnv()

	// tcell owns stdout, so logs go to a file.
	log, err := logger.New(logger.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.Debug(".env file not loaded", zap.Error(envErr))
	}

	if err := run(log); err != nil {
		return reportError(log, os.Stderr, err)
	}
	return 0
}

// reportError logs err, flushes the log file and returns the exit code.
func reportError(log *zap.Logger, w io.Writer, err error) int {
	log.Error("game exited with error", zap.Error(err))
	_ = log.Sync()
	fmt.Fprintf(w, "arenahunt: %v\n", err)
	return 1
}

func run(log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if telemetry.Configured() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry - game still works
			log.Warn("telemetry setup failed, running without traces", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Warn("error shutting down telemetry", zap.Error(err))
				}
			}()
		}
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	g, err := game.New(cfg, logger.NewComponent(log, "game"))
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	defer g.Close()

	return g.Run(ctx)
}
