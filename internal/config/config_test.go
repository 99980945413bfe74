package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Calculator.Precision != 8 || cfg.Calculator.MaxEntry != 16 || cfg.Calculator.TapeSize != 10 {
		t.Fatalf("calculator defaults = %+v", cfg.Calculator)
	}
	if cfg.Calculator.ErrorText != "Error" || cfg.Clock.Locale != "en" || cfg.UI.StartTab != "calc" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if filepath.Base(cfg.Database.Path) != "widgetdeck.db" {
		t.Fatalf("database path = %q", cfg.Database.Path)
	}
}

func TestLoadFileAndNormalize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[calculator]
precision = 40
max_entry = 0
error_text = "错误"
tape_size = 500

[clock]
hour12 = true
locale = "ZH"

[ui]
start_tab = "board"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c := cfg.Calculator
	if c.Precision != 12 || c.MaxEntry != 1 || c.TapeSize != 100 || c.ErrorText != "错误" {
		t.Fatalf("calculator = %+v", c)
	}
	if !cfg.Clock.Hour12 || cfg.Clock.Locale != "zh" {
		t.Fatalf("clock = %+v", cfg.Clock)
	}
	if cfg.UI.StartTab != "board" {
		t.Fatalf("start tab = %q", cfg.UI.StartTab)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("WIDGETDECK_CALCULATOR_PRECISION", "3")
	t.Setenv("WIDGETDECK_UI_START_TAB", "nowhere")
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Calculator.Precision != 3 {
		t.Fatalf("precision = %d", cfg.Calculator.Precision)
	}
	if cfg.UI.StartTab != "calc" {
		t.Fatalf("unknown start tab should fall back, got %q", cfg.UI.StartTab)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Calculator.Precision = 4
	cfg.Clock.Hour12 = true
	cfg.Gallery.Dir = "/srv/pictures"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Calculator.Precision != 4 || !got.Clock.Hour12 || got.Gallery.Dir != "/srv/pictures" {
		t.Fatalf("round trip = %+v", got)
	}
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[calculator\nprecision = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
