package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samdwyer/arenahunt/internal/logger"
)

func TestReportErrorFlushesLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arenahunt.log")
	cfg := logger.DefaultConfig()
	cfg.File = path

	log, err := logger.New(cfg)
	if err != nil {
		t.Fatalf("logger.New() error: %v", err)
	}

	var stderr bytes.Buffer
	code := reportError(log, &stderr, errors.New("screen init failed"))

	if code != 1 {
		t.Errorf("reportError() = %d, want 1", code)
	}
	if got := stderr.String(); got != "arenahunt: screen init failed\n" {
		t.Errorf("stderr = %q", got)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(content), "game exited with error") ||
		!strings.Contains(string(content), "screen init failed") {
		t.Errorf("log file missing the error entry:\n%s", content)
	}
}
