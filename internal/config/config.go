package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Tab names accepted by ui.start_tab, in tab-bar order.
var Tabs = []string{"calc", "counter", "notes", "board", "calendar", "clock", "gallery"}

// Config holds application configuration.
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database" toml:"database"`
	Log        LogConfig        `mapstructure:"log" toml:"log"`
	Calculator CalculatorConfig `mapstructure:"calculator" toml:"calculator"`
	Clock      ClockConfig      `mapstructure:"clock" toml:"clock"`
	Gallery    GalleryConfig    `mapstructure:"gallery" toml:"gallery"`
	UI         UIConfig         `mapstructure:"ui" toml:"ui"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// LogConfig controls the file logger. The terminal belongs to the UI, so logs
// never go to stderr.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled"`
	Path    string `mapstructure:"path" toml:"path"`
	Level   string `mapstructure:"level" toml:"level"`
}

type CalculatorConfig struct {
	Precision int    `mapstructure:"precision" toml:"precision"`
	MaxEntry  int    `mapstructure:"max_entry" toml:"max_entry"`
	ErrorText string `mapstructure:"error_text" toml:"error_text"`
	TapeSize  int    `mapstructure:"tape_size" toml:"tape_size"`
}

type ClockConfig struct {
	Hour12 bool   `mapstructure:"hour12" toml:"hour12"`
	Locale string `mapstructure:"locale" toml:"locale"`
}

type GalleryConfig struct {
	Dir string `mapstructure:"dir" toml:"dir"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartTab string `mapstructure:"start_tab" toml:"start_tab"`
}

func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "widgetdeck")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "widgetdeck")
}

// Path returns the config file location: $WIDGETDECK_CONFIG, else
// $XDG_CONFIG_HOME/widgetdeck/config.toml.
func Path() string {
	if p := os.Getenv("WIDGETDECK_CONFIG"); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, "widgetdeck", "config.toml")
}

func setDefaults(v *viper.Viper) {
	data := dataDir()
	v.SetDefault("database.path", filepath.Join(data, "widgetdeck.db"))
	v.SetDefault("log.enabled", true)
	v.SetDefault("log.path", filepath.Join(data, "widgetdeck.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("calculator.precision", 8)
	v.SetDefault("calculator.max_entry", 16)
	v.SetDefault("calculator.error_text", "Error")
	v.SetDefault("calculator.tape_size", 10)
	v.SetDefault("clock.hour12", false)
	v.SetDefault("clock.locale", "en")
	v.SetDefault("gallery.dir", filepath.Join(os.Getenv("HOME"), "Pictures"))
	v.SetDefault("ui.start_tab", "calc")
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return Normalize(c)
}

// Load reads configuration from path (or Path() when empty) and env.
// Env var overrides use prefix WIDGETDECK_. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = Path()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("WIDGETDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return Normalize(c), nil
}

// Normalize clamps numeric settings into range and falls back to defaults for
// unknown enum values.
func Normalize(c Config) Config {
	c.Calculator.Precision = clamp(c.Calculator.Precision, 0, 12)
	c.Calculator.MaxEntry = clamp(c.Calculator.MaxEntry, 1, 32)
	c.Calculator.TapeSize = clamp(c.Calculator.TapeSize, 1, 100)
	if strings.TrimSpace(c.Calculator.ErrorText) == "" {
		c.Calculator.ErrorText = "Error"
	}
	switch strings.ToLower(strings.TrimSpace(c.Clock.Locale)) {
	case "zh":
		c.Clock.Locale = "zh"
	default:
		c.Clock.Locale = "en"
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "error":
		c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	default:
		c.Log.Level = "info"
	}
	c.UI.StartTab = strings.ToLower(strings.TrimSpace(c.UI.StartTab))
	if TabIndex(c.UI.StartTab) < 0 {
		c.UI.StartTab = Tabs[0]
	}
	return c
}

// TabIndex returns the position of a tab name, or -1.
func TabIndex(name string) int {
	for i, t := range Tabs {
		if t == name {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Save writes cfg to path (or Path() when empty), creating the directory.
func Save(path string, cfg Config) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.enabled", cfg.Log.Enabled)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("calculator.precision", cfg.Calculator.Precision)
	v.Set("calculator.max_entry", cfg.Calculator.MaxEntry)
	v.Set("calculator.error_text", cfg.Calculator.ErrorText)
	v.Set("calculator.tape_size", cfg.Calculator.TapeSize)
	v.Set("clock.hour12", cfg.Clock.Hour12)
	v.Set("clock.locale", cfg.Clock.Locale)
	v.Set("gallery.dir", cfg.Gallery.Dir)
	v.Set("ui.start_tab", cfg.UI.StartTab)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
