package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Iron-Ham/rowkit/internal/config"
	"github.com/Iron-Ham/rowkit/internal/logging"
	"github.com/Iron-Ham/rowkit/internal/render"
)

var rootCmd = &cobra.Command{
	Use:   "rowkit",
	Short: "Render and edit sectioned tables",
	Long: `Rowkit draws tables made of ordered sections, each with an optional
header and footer, from YAML definition files.

Use 'rowkit render' to print a table, 'rowkit view' to browse and edit it
interactively, and 'rowkit validate' to check a definition.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/rowkit/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("ROWKIT")
	// e.g., ROWKIT_RENDER_THEME for render.theme
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// newLogger builds the logger described by cfg. Logging is off unless
// enabled, and defaults to a file next to the config.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	path := cfg.Logging.File
	if path == "" {
		path = filepath.Join(config.ConfigDir(), "rowkit.log")
	}
	return logging.NewLogger(path, cfg.Logging.LogLevel())
}

// terminalWidth returns the width of w when it is a terminal, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// addRenderFlags registers the flags that override render configuration.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("width", "w", 0, "line width (default: terminal width)")
	cmd.Flags().StringP("theme", "t", "", "color theme: "+strings.Join(render.BuiltinThemes(), ", "))
	cmd.Flags().Bool("index", false, "prefix rows with their index")
	cmd.Flags().Bool("hide-empty", false, "skip sections without rows")
	cmd.Flags().String("header", "", "header precedence when a section has a title and a view: view, title")
}

// renderOptions merges configuration and command-line flags.
func renderOptions(cmd *cobra.Command, cfg *config.Config) (render.Options, error) {
	opts := cfg.RenderOptions(terminalWidth(cmd.OutOrStdout()))
	flags := cmd.Flags()

	if flags.Changed("width") {
		width, _ := flags.GetInt("width")
		if width < 0 {
			return opts, config.ValidationError{Field: "width", Value: width, Message: "must be non-negative"}
		}
		opts.Width = width
	}
	if flags.Changed("theme") {
		theme, _ := flags.GetString("theme")
		if !render.IsValidTheme(theme) {
			return opts, config.ValidationError{
				Field:   "theme",
				Value:   theme,
				Message: "must be one of: " + strings.Join(render.BuiltinThemes(), ", "),
			}
		}
		opts.Theme = render.ThemeName(theme)
	}
	if flags.Changed("header") {
		p, _ := flags.GetString("header")
		switch render.HeaderPrecedence(p) {
		case render.PreferView, render.PreferTitle:
			opts.HeaderPrecedence = render.HeaderPrecedence(p)
		default:
			return opts, config.ValidationError{
				Field:   "header",
				Value:   p,
				Message: "must be one of: " + strings.Join(render.ValidHeaderPrecedences(), ", "),
			}
		}
	}
	if flags.Changed("index") {
		opts.ShowIndex, _ = flags.GetBool("index")
	}
	if flags.Changed("hide-empty") {
		hide, _ := flags.GetBool("hide-empty")
		opts.ShowEmptySections = !hide
	}
	return opts, nil
}
