package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jask/widgetdeck/internal/config"
)

func TestDisabledIsNop(t *testing.T) {
	logger, err := New(config.LogConfig{Enabled: false, Path: "/nonexistent/x.log"}, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.Core().Enabled(-1) {
		t.Fatal("nop logger should not be enabled")
	}
}

func TestWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "widgetdeck.log")
	logger, err := New(config.LogConfig{Enabled: true, Path: path, Level: "warn"}, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "dropped") || !strings.Contains(out, `"msg":"kept"`) {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := New(config.LogConfig{Enabled: true, Path: path, Level: "error"}, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !logger.Core().Enabled(-1) {
		t.Fatal("verbose logger should enable debug")
	}
}
