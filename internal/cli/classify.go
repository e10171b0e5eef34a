package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/clueboard/pkg/media"
)

// classifyCommand creates the classify command showing media types.
func (c *CLI) classifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [content...]",
		Short: "Show the media type of content strings",
		Long: `Classify applies the clue media classification to each argument and
prints the resulting type (text, image, video, or audio). The same rules
decide how a clue card is previewed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, content := range args {
				printKeyValue(string(media.Classify(content)), content)
			}
			return nil
		},
	}
}
