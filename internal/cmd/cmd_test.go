package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/rowkit/internal/config"
)

const tableYAML = `title: Settings
sections:
  - header: General
    items:
      - title: Name
        accessory: ">"
      - kind: toggle
        title: Wi-Fi
        on: true
  - header: Empty
  - header: Fruit
    sort: true
    items:
      - title: cherry
      - title: apple
`

// setupCLI isolates the global viper state and config directory for one test.
func setupCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

// resetFlags clears values left on the shared command tree by earlier runs.
func resetFlags(c *cobra.Command) {
	for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the root command with args and returns captured output
func executeCommand(args ...string) (string, error) {
	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return ansi.Strip(buf.String()), err
}

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "rowkit" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "rowkit")
	}

	cmdMap := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		cmdMap[c.Name()] = true
	}
	for _, name := range []string{"render", "view", "validate", "config"} {
		if !cmdMap[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestRender(t *testing.T) {
	setupCLI(t)
	path := writeTable(t, tableYAML)

	out, err := executeCommand("render", path)
	if err != nil {
		t.Fatalf("render error = %v\n%s", err, out)
	}
	for _, want := range []string{"Settings", "General", "Name >", "Wi-Fi [on]", "Empty", "(empty)", "apple\n  cherry"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_Flags(t *testing.T) {
	setupCLI(t)
	path := writeTable(t, tableYAML)

	out, err := executeCommand("render", path, "--hide-empty", "--index", "--width", "30")
	if err != nil {
		t.Fatalf("render error = %v\n%s", err, out)
	}
	if strings.Contains(out, "Empty") {
		t.Errorf("--hide-empty should skip the empty section:\n%s", out)
	}
	if !strings.Contains(out, "0. Name") || !strings.Contains(out, "1. Wi-Fi") {
		t.Errorf("--index should number rows:\n%s", out)
	}
	for line := range strings.SplitSeq(out, "\n") {
		if w := ansi.StringWidth(line); w > 30 {
			t.Errorf("line %q is %d wide, want <= 30", line, w)
		}
	}
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		args func(path string) []string
		want string
	}{
		{name: "unknown theme", args: func(p string) []string { return []string{"render", p, "--theme", "neon"} }, want: "theme"},
		{name: "unknown header", args: func(p string) []string { return []string{"render", p, "--header", "both"} }, want: "header"},
		{name: "negative width", args: func(p string) []string { return []string{"render", p, "--width", "-3"} }, want: "width"},
		{name: "missing file", args: func(p string) []string { return []string{"render", p + ".missing"} }, want: "not found"},
		{name: "no args", args: func(string) []string { return []string{"render"} }, want: "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLI(t)
			path := writeTable(t, tableYAML)
			_, err := executeCommand(tt.args(path)...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestRender_UsesConfigFile(t *testing.T) {
	dir := setupCLI(t)
	if err := os.MkdirAll(filepath.Join(dir, "rowkit"), 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := "render:\n  show_index: true\n  show_empty_sections: false\n"
	if err := os.WriteFile(filepath.Join(dir, "rowkit", "config.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand("render", writeTable(t, tableYAML))
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if strings.Contains(out, "Empty") || !strings.Contains(out, "0. Name") {
		t.Errorf("config file not applied:\n%s", out)
	}
}

func TestValidate(t *testing.T) {
	setupCLI(t)
	good := writeTable(t, tableYAML)
	bad := writeTable(t, "sections:\n  - items:\n      - kind: slider\n")

	out, err := executeCommand("validate", good)
	if err != nil {
		t.Fatalf("validate error = %v", err)
	}
	if !strings.Contains(out, "ok") || !strings.Contains(out, "3 sections, 4 items") {
		t.Errorf("output = %q", out)
	}

	out, err = executeCommand("validate", good, bad)
	if err == nil || !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("validate error = %v, want 1 of 2 invalid", err)
	}
	if !strings.Contains(out, "FAIL "+bad) || !strings.Contains(out, "title") || !strings.Contains(out, "kind") {
		t.Errorf("output should list every problem:\n%s", out)
	}
}

func TestConfigSetAndShow(t *testing.T) {
	setupCLI(t)

	out, err := executeCommand("config", "set", "render.theme", "nord")
	if err != nil {
		t.Fatalf("config set error = %v", err)
	}
	if !strings.Contains(out, "Set render.theme = nord") {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(config.ConfigFile()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	out, err = executeCommand("config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(out, "theme: nord") || !strings.Contains(out, config.ConfigFile()) {
		t.Errorf("config show did not read the saved file:\n%s", out)
	}
}

func TestParseConfigValue(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    any
		wantErr bool
	}{
		{key: "render.width", value: "72", want: 72},
		{key: "render.width", value: "wide", wantErr: true},
		{key: "render.width", value: "5", wantErr: true},
		{key: "render.theme", value: "dracula", want: "dracula"},
		{key: "render.theme", value: "neon", wantErr: true},
		{key: "render.header_precedence", value: "title", want: "title"},
		{key: "render.header_precedence", value: "both", wantErr: true},
		{key: "render.show_index", value: "true", want: true},
		{key: "render.show_index", value: "yes", wantErr: true},
		{key: "logging.level", value: "debug", want: "debug"},
		{key: "logging.level", value: "loud", wantErr: true},
		{key: "logging.file", value: "/tmp/rowkit.log", want: "/tmp/rowkit.log"},
		{key: "render.colour", value: "red", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			setupCLI(t)
			config.SetDefaults()
			got, err := parseConfigValue(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseConfigValue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseConfigValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigInit(t *testing.T) {
	setupCLI(t)

	if _, err := executeCommand("config", "init"); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	data, err := os.ReadFile(config.ConfigFile())
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// The generated file must load cleanly.
	viper.Reset()
	config.SetDefaults()
	viper.SetConfigType("yaml")
	if err := viper.ReadConfig(bytes.NewReader(data)); err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}
	if _, err := config.Load(); err != nil {
		t.Errorf("generated config invalid: %v", err)
	}

	if _, err := executeCommand("config", "init"); err == nil {
		t.Error("second config init should fail")
	}
}

func TestConfigThemes(t *testing.T) {
	setupCLI(t)
	out, err := executeCommand("config", "themes")
	if err != nil {
		t.Fatalf("config themes error = %v", err)
	}
	for _, want := range []string{"* default", "monokai", "dracula", "nord"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	logger, err := newLogger(cfg)
	if err != nil || logger == nil {
		t.Fatalf("newLogger(disabled) = %v, %v", logger, err)
	}

	path := filepath.Join(t.TempDir(), "logs", "rowkit.log")
	cfg.Logging.Enabled = true
	cfg.Logging.Level = "debug"
	cfg.Logging.File = path
	logger, err = newLogger(cfg)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Debug("hello")
	if err := logger.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log = %q, want it to contain hello", data)
	}
}
