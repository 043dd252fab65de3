package logger

import (
	"os"
	"strings"
)

// Config defines logging configuration.
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json or console
	File        string // Output path; the terminal UI owns stdout, so this defaults to a file
	Development bool
}

// DefaultConfig returns the configuration used when nothing is set in the environment.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "json",
		File:   "arenahunt.log",
	}
}

// ConfigFromEnv builds a Config from ARENAHUNT_LOG_* environment variables.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if strings.ToLower(os.Getenv("ARENAHUNT_ENV")) == "development" {
		cfg.Development = true
		cfg.Level = "debug"
		cfg.Format = "console"
	}
	if level := os.Getenv("ARENAHUNT_LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv("ARENAHUNT_LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	if file := os.Getenv("ARENAHUNT_LOG_FILE"); file != "" {
		cfg.File = file
	}
	return cfg
}
