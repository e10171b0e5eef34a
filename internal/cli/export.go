package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/clueboard/pkg/workflow"
)

// exportCommand creates the export command writing a workflow snapshot.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [board]",
		Short: "Write a board as a workflow snapshot",
		Long: `Export reads a board file (.toml manifest or .json workflow) and writes
it as a JSON workflow snapshot. Without --output the snapshot goes to
workflow-<date>.json in the current directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(args[0])
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = workflow.Filename(time.Now())
			}
			if err := workflow.ExportFile(b, path); err != nil {
				return err
			}

			printSuccess("Exported board")
			printFile(path)
			printBoardStats(b.CategoryCount(), b.ClueCount(), len(b.Connections()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	return cmd
}
