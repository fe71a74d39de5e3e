package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/rowkit/internal/render"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	// Verify default render config
	if cfg.Render.Width != 0 {
		t.Errorf("Render.Width = %d, want 0", cfg.Render.Width)
	}
	if cfg.Render.Theme != "default" {
		t.Errorf("Render.Theme = %q, want %q", cfg.Render.Theme, "default")
	}
	if cfg.Render.HeaderPrecedence != "view" {
		t.Errorf("Render.HeaderPrecedence = %q, want %q", cfg.Render.HeaderPrecedence, "view")
	}
	if !cfg.Render.ShowEmptySections {
		t.Error("Render.ShowEmptySections should be true by default")
	}
	if cfg.Render.ShowIndex {
		t.Error("Render.ShowIndex should be false by default")
	}

	// Verify default viewer config
	if !cfg.Viewer.ReloadOnChange {
		t.Error("Viewer.ReloadOnChange should be true by default")
	}
	if !cfg.Viewer.AltScreen {
		t.Error("Viewer.AltScreen should be true by default")
	}

	// Verify default logging config
	if cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		result := ConfigDir()
		expected := "/custom/config/rowkit"
		if result != expected {
			t.Errorf("ConfigDir() = %q, want %q", result, expected)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		result := ConfigDir()

		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, ".config", "rowkit")
		if result != expected {
			t.Errorf("ConfigDir() = %q, want %q", result, expected)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	result := ConfigFile()
	expected := "/custom/config/rowkit/config.yaml"
	if result != expected {
		t.Errorf("ConfigFile() = %q, want %q", result, expected)
	}
}

func TestGet(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg := Get()
	if cfg == nil {
		t.Fatal("Get() returned nil")
	}
	if cfg.Render.Theme != "default" {
		t.Errorf("Get().Render.Theme = %q, want %q", cfg.Render.Theme, "default")
	}
}

func TestLoad_OverridesAndInvalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	viper.Set("render.width", 60)
	viper.Set("render.theme", "nord")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Render.Width != 60 || cfg.Render.Theme != "nord" {
		t.Errorf("Load() = %+v, want width 60 theme nord", cfg.Render)
	}

	viper.Set("render.theme", "neon")
	if _, err := Load(); err == nil {
		t.Error("Load() with invalid theme should fail")
	}
	if got := Get(); got.Render.Theme != "default" {
		t.Errorf("Get() should fall back to defaults, got theme %q", got.Render.Theme)
	}
}

func TestLoggingConfig_LogLevel(t *testing.T) {
	c := LoggingConfig{Level: "warn"}
	if got := c.LogLevel(); got != "WARN" {
		t.Errorf("LogLevel() = %q, want %q", got, "WARN")
	}
}

func TestRenderOptions(t *testing.T) {
	cfg := Default()
	cfg.Render.Theme = "dracula"
	cfg.Render.HeaderPrecedence = "title"
	cfg.Render.ShowIndex = true

	opts := cfg.RenderOptions(80)
	if opts.Width != 80 {
		t.Errorf("Width = %d, want fallback 80", opts.Width)
	}
	if opts.Theme != render.ThemeDracula {
		t.Errorf("Theme = %q, want dracula", opts.Theme)
	}
	if opts.HeaderPrecedence != render.PreferTitle {
		t.Errorf("HeaderPrecedence = %q, want title", opts.HeaderPrecedence)
	}
	if !opts.ShowIndex || !opts.ShowEmptySections {
		t.Errorf("flags not carried over: %+v", opts)
	}

	cfg.Render.Width = 40
	if got := cfg.RenderOptions(80).Width; got != 40 {
		t.Errorf("Width = %d, want configured 40", got)
	}
}
