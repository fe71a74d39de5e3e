package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/rowkit/internal/config"
	"github.com/Iron-Ham/rowkit/internal/render"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify rowkit configuration",
	Long: `View or modify rowkit configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  rowkit config set render.theme nord
  rowkit config set render.width 72
  rowkit config set viewer.reload_on_change false

Valid keys:
  render.width                - Line width (0 = terminal width)
  render.theme                - Color theme
                                Options: default, monokai, dracula, nord
  render.header_precedence    - What a section with a title and a view shows
                                Options: view, title
  render.show_empty_sections  - Draw sections without rows (true/false)
  render.show_index           - Prefix rows with their index (true/false)
  viewer.reload_on_change     - Rebuild the table when its file changes (true/false)
  viewer.alt_screen           - Use the alternate screen buffer (true/false)
  logging.enabled             - Write a debug log (true/false)
  logging.level               - Options: debug, info, warn, error
  logging.file                - Log file path`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/rowkit/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configThemesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in color themes",
	RunE:  runConfigThemes,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configThemesCmd)
}

// configKeys maps each settable key to its value type.
var configKeys = map[string]string{
	"render.width":               "int",
	"render.theme":               "string",
	"render.header_precedence":   "string",
	"render.show_empty_sections": "bool",
	"render.show_index":          "bool",
	"viewer.reload_on_change":    "bool",
	"viewer.alt_screen":          "bool",
	"logging.enabled":            "bool",
	"logging.level":              "string",
	"logging.file":               "string",
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := config.Get()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "render:")
	fmt.Fprintf(out, "  width: %d\n", cfg.Render.Width)
	fmt.Fprintf(out, "  theme: %s\n", cfg.Render.Theme)
	fmt.Fprintf(out, "  header_precedence: %s\n", cfg.Render.HeaderPrecedence)
	fmt.Fprintf(out, "  show_empty_sections: %v\n", cfg.Render.ShowEmptySections)
	fmt.Fprintf(out, "  show_index: %v\n", cfg.Render.ShowIndex)

	fmt.Fprintln(out, "viewer:")
	fmt.Fprintf(out, "  reload_on_change: %v\n", cfg.Viewer.ReloadOnChange)
	fmt.Fprintf(out, "  alt_screen: %v\n", cfg.Viewer.AltScreen)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  file: %s\n", cfg.Logging.File)

	return nil
}

// parseConfigValue converts value to the type key holds and checks it the
// same way a loaded config file is checked.
func parseConfigValue(key, value string) (any, error) {
	keyType, ok := configKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'rowkit config set --help' to see valid keys", key)
	}

	var typed any
	switch keyType {
	case "string":
		typed = value
	case "bool":
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typed = value == "true"
	case "int":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		typed = n
	}

	cfg := config.Get()
	switch key {
	case "render.width":
		cfg.Render.Width = typed.(int)
	case "render.theme":
		cfg.Render.Theme = value
	case "render.header_precedence":
		cfg.Render.HeaderPrecedence = value
	case "logging.level":
		cfg.Logging.Level = value
	}
	for _, e := range cfg.Validate() {
		if e.Field == key {
			return nil, fmt.Errorf("invalid value for %s: %s", key, e.Message)
		}
	}
	return typed, nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typedValue, err := parseConfigValue(key, args[1])
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(config.ConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)

	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

const defaultConfigContent = `# rowkit configuration

# How tables are drawn
render:
  # Line width rows are aligned to (0 = terminal width)
  width: 0
  # Options: default, monokai, dracula, nord
  theme: default
  # What a section with both a header title and a header view shows
  # Options: view, title
  header_precedence: view
  # Draw sections that have no rows
  show_empty_sections: true
  # Prefix each row with its position in the section
  show_index: false

# Interactive viewer
viewer:
  # Rebuild the table when its definition file changes
  reload_on_change: true
  # Use the terminal's alternate screen buffer
  alt_screen: true

# Debug logging
logging:
  enabled: false
  # Options: debug, info, warn, error
  level: info
  # Empty writes rowkit.log next to this file
  file: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'rowkit config set' to modify values", configFile)
	}

	if err := os.MkdirAll(config.ConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", config.ConfigFile())
	}
	fmt.Fprintln(out, "\nEnvironment variables: ROWKIT_* (e.g., ROWKIT_RENDER_THEME)")
	return nil
}

func runConfigThemes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	current := config.Get().Render.Theme
	for _, name := range render.BuiltinThemes() {
		marker := "  "
		if name == current {
			marker = "* "
		}
		swatch := render.NewStyles(render.GetPalette(render.ThemeName(name))).Header.Render(name)
		fmt.Fprintf(out, "%s%s\n", marker, swatch)
	}
	fmt.Fprintln(out, "\nUse 'rowkit config set render.theme <name>' to switch.")
	return nil
}
