package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/clueboard/pkg/media"
)

// attachCommand creates the attach command fetching media into a data URI.
func (c *CLI) attachCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "attach [source]",
		Short: "Fetch a file or URL into a data URI attachment",
		Long: `Attach reads a local file or fetches an http(s) URL and encodes it as
a data URI, the form clue content takes when media is attached to a card.
Fetched URLs are cached; use --no-cache to bypass the cache.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fetcher, err := newFetcher(noCache)
			if err != nil {
				return err
			}

			sp := newSpinnerWithContext(cmd.Context(), "Fetching attachment...")
			sp.Start()
			uri, err := fetcher.DataURI(cmd.Context(), args[0])
			if err != nil {
				sp.StopWithError("Fetch failed")
				return err
			}
			sp.Stop()

			if output == "" || output == "-" {
				fmt.Println(uri)
			} else {
				if err := os.WriteFile(output, []byte(uri), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				printFile(output)
			}
			printKeyValue("media type", string(media.Classify(uri)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the data URI to a file instead of stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the attachment cache")

	return cmd
}
