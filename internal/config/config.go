package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete rowkit configuration
type Config struct {
	Render  RenderConfig  `mapstructure:"render"`
	Viewer  ViewerConfig  `mapstructure:"viewer"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// RenderConfig controls how tables are drawn
type RenderConfig struct {
	// Width is the line width rows are aligned to (0 = terminal width, or no alignment when not a terminal)
	Width int `mapstructure:"width"`
	// Theme is the color theme (default: "default")
	// Options: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme"`
	// HeaderPrecedence decides what a section with both a header title and a header view shows
	// Options: "view", "title"
	HeaderPrecedence string `mapstructure:"header_precedence"`
	// ShowEmptySections draws sections that have no rows
	ShowEmptySections bool `mapstructure:"show_empty_sections"`
	// ShowIndex prefixes each row with its position in the section
	ShowIndex bool `mapstructure:"show_index"`
}

// ViewerConfig controls the interactive viewer
type ViewerConfig struct {
	// ReloadOnChange rebuilds the table when its definition file changes on disk
	ReloadOnChange bool `mapstructure:"reload_on_change"`
	// AltScreen runs the viewer in the terminal's alternate screen buffer
	AltScreen bool `mapstructure:"alt_screen"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled turns logging on (default: false)
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum level written: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// File is the log destination; empty writes rowkit.log in the config directory
	File string `mapstructure:"file"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:             0,
			Theme:             "default",
			HeaderPrecedence:  "view",
			ShowEmptySections: true,
			ShowIndex:         false,
		},
		Viewer: ViewerConfig{
			ReloadOnChange: true,
			AltScreen:      true,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			File:    "",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Render defaults
	viper.SetDefault("render.width", defaults.Render.Width)
	viper.SetDefault("render.theme", defaults.Render.Theme)
	viper.SetDefault("render.header_precedence", defaults.Render.HeaderPrecedence)
	viper.SetDefault("render.show_empty_sections", defaults.Render.ShowEmptySections)
	viper.SetDefault("render.show_index", defaults.Render.ShowIndex)

	// Viewer defaults
	viper.SetDefault("viewer.reload_on_change", defaults.Viewer.ReloadOnChange)
	viper.SetDefault("viewer.alt_screen", defaults.Viewer.AltScreen)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rowkit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rowkit"
	}
	return filepath.Join(home, ".config", "rowkit")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogLevel returns the logging level in the form the logging package expects.
func (c *LoggingConfig) LogLevel() string {
	return strings.ToUpper(c.Level)
}
