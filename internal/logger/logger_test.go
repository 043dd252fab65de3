package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	log, err := New(Config{Level: "debug", Format: "json", File: path})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	log.Info("match started", zap.String("match_id", "abc"))
	_ = log.Sync()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "match started") {
		t.Errorf("log file = %q, want it to contain %q", content, "match started")
	}
	if !strings.Contains(string(content), `"match_id":"abc"`) {
		t.Errorf("log file = %q, want match_id field", content)
	}
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	log, err := New(Config{Level: "chatty", File: path})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug enabled, want info level fallback")
	}
	if !log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info disabled, want info level fallback")
	}
}

func TestNewComponent(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	log := NewComponent(zap.New(core), "match")
	log.Info("hello")

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["component"]; got != "match" {
		t.Errorf("component = %v, want %q", got, "match")
	}

	// nil base must not panic
	NewComponent(nil, "x").Info("dropped")
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ARENAHUNT_ENV", "development")
	t.Setenv("ARENAHUNT_LOG_LEVEL", "warn")
	t.Setenv("ARENAHUNT_LOG_FILE", "other.log")

	cfg := ConfigFromEnv()
	if !cfg.Development {
		t.Error("Development = false, want true")
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %q, want %q", cfg.Level, "warn")
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want %q", cfg.Format, "console")
	}
	if cfg.File != "other.log" {
		t.Errorf("File = %q, want %q", cfg.File, "other.log")
	}
}
