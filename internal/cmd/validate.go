package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/rowkit/internal/tabledef"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check table definition files",
	Long: `Check that each file is a well-formed table definition.

Every problem in a file is reported, not just the first one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		def, err := tabledef.Load(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s\n  %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s (%d sections, %d items)\n", path, len(def.Sections), def.ItemCount())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d definitions invalid", failed, len(args))
	}
	return nil
}
