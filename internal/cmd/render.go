package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/rowkit/internal/config"
	"github.com/Iron-Ham/rowkit/internal/errors"
	"github.com/Iron-Ham/rowkit/internal/render"
	"github.com/Iron-Ham/rowkit/internal/tabledef"
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Print a table",
	Long: `Print the table described by a YAML definition file.

Examples:
  rowkit render settings.yaml
  rowkit render settings.yaml --width 60 --theme nord
  rowkit render settings.yaml --index --hide-empty`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addRenderFlags(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	opts, err := renderOptions(cmd, cfg)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	def, err := tabledef.Load(args[0])
	if err != nil {
		return err
	}
	m, err := tabledef.Build(def, tabledef.BuildOptions{Logger: logger})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if def.Title != "" {
		fmt.Fprintln(out, render.StylesFor(opts.Theme).Header.Render(def.Title))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, render.Render(m, opts))
	return nil
}
