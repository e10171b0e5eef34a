package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/clueboard/pkg/errors"
	"github.com/matzehuels/clueboard/pkg/render"
)

const (
	formatSVG = "svg"
	formatPNG = "png"
	formatDOT = "dot"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path (extension picks the format)
	detailed bool   // list every clue with its media tag inside each box
	pinned   bool   // fix categories at their canvas positions
}

// renderCommand creates the render command generating board diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [board]",
		Short: "Render a board as an SVG, PNG, or DOT diagram",
		Long: `Render reads a board file (.toml manifest or .json workflow) and draws
it as a diagram: categories become boxes, connections become edges. The
output format follows the --output extension (.svg, .png, or .dot).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
				opts.output = base + ".svg"
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.svg, .png, or .dot)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "list clues with media tags inside each box")
	cmd.Flags().BoolVar(&opts.pinned, "pinned", false, "fix categories at their canvas positions")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	b, err := loadBoard(input)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	dot := render.ToDOT(b, render.Options{Detailed: opts.detailed, Pinned: opts.pinned})

	var out []byte
	switch strings.ToLower(filepath.Ext(opts.output)) {
	case "." + formatSVG:
		out, err = render.SVG(cmd.Context(), dot)
	case "." + formatPNG:
		out, err = render.PNG(cmd.Context(), dot)
	case "." + formatDOT:
		out = []byte(dot)
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"unsupported output format %q (want .svg, .png, or .dot)", filepath.Ext(opts.output))
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", input, err)
	}

	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	prog.done("Rendered board")
	printFile(opts.output)
	printBoardStats(b.CategoryCount(), b.ClueCount(), len(b.Connections()))
	return nil
}
