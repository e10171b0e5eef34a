package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the browse command for terminal board inspection.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [board]",
		Short: "Inspect a board interactively in the terminal",
		Long: `Browse loads a board file (.toml manifest or .json workflow) and opens
a read-only terminal browser: categories as tabs, clues as a list with
their media tags, and the connections touching the selected category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(args[0])
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewBoardModel(b), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("browser: %w", err)
			}
			return nil
		},
	}
}
