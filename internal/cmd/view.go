package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/rowkit/internal/config"
	"github.com/Iron-Ham/rowkit/internal/errors"
	"github.com/Iron-Ham/rowkit/internal/tabledef"
	"github.com/Iron-Ham/rowkit/internal/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse and edit a table interactively",
	Long: `Open the table described by a YAML definition file in an interactive view.

Keys:
  j/k, down/up   move the cursor
  g/G            jump to the first or last row
  space, enter   flip a toggle row
  d, x           delete the row
  K/J            swap the row with the one above or below
  s              sort the section by title
  q, ctrl+c      quit

Edits are not written back to the file. When viewer.reload_on_change is
set, the table is rebuilt whenever the file is saved.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	addRenderFlags(viewCmd)
	viewCmd.Flags().Bool("no-watch", false, "do not reload the table when the file changes")
}

func runView(cmd *cobra.Command, args []string) error {
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

	noWatch, _ := cmd.Flags().GetBool("no-watch")
	app := viewer.New(m, viewer.Config{
		Source:    args[0],
		Title:     def.Title,
		Options:   opts,
		Watch:     cfg.Viewer.ReloadOnChange && !noWatch,
		AltScreen: cfg.Viewer.AltScreen,
		Logger:    logger,
	})
	return app.Run()
}
