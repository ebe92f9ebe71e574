package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ActiveTitle   string `mapstructure:"active_title"`
	FinishedTitle string `mapstructure:"finished_title"`
	AccentColor   string `mapstructure:"accent_color"`
}

// LoggingConfig holds debug log settings. The TUI owns the terminal, so
// logs go to a file.
type LoggingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Level   string `mapstructure:"level"`
}

// Load reads configuration from file and env. Env var overrides use prefix LANEBOARD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.active_title", "Active Projects")
	v.SetDefault("ui.finished_title", "Finished Projects")
	v.SetDefault("ui.accent_color", "#89b4fa")
	v.SetDefault("logging.enabled", false)
	v.SetDefault("logging.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "laneboard", "laneboard.log"))
	v.SetDefault("logging.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LANEBOARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "laneboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LANEBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// EnsureFile writes the config file with the provided values when none
// exists yet, giving users something to edit. An existing file is left
// untouched.
func EnsureFile(cfg Config) error {
	if _, err := os.Stat(configPath()); err == nil {
		return nil
	}
	return Save(cfg)
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.active_title", cfg.UI.ActiveTitle)
	v.Set("ui.finished_title", cfg.UI.FinishedTitle)
	v.Set("ui.accent_color", cfg.UI.AccentColor)
	v.Set("logging.enabled", cfg.Logging.Enabled)
	v.Set("logging.path", cfg.Logging.Path)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func configPath() string {
	if path := os.Getenv("LANEBOARD_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "laneboard", "config.toml")
}
