package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/clueboard/pkg/board"
	"github.com/matzehuels/clueboard/pkg/media"
)

// Options configures board diagram rendering.
type Options struct {
	// Detailed lists each clue inside its category box with a media tag.
	// When false, only the category title and clue count are shown.
	Detailed bool

	// Pinned fixes every category at its canvas position instead of letting
	// Graphviz lay the boxes out. Pinned output should be rendered with the
	// neato engine, which honors pos attributes.
	Pinned bool
}

// maxClueLabelLen caps how much clue content appears in a label; data URIs
// and long URLs would otherwise dominate the diagram.
const maxClueLabelLen = 40

// ToDOT converts a board to Graphviz DOT format. The resulting string can
// be rendered with [SVG] or [PNG].
func ToDOT(b *board.Board, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph board {\n")
	if opts.Pinned {
		buf.WriteString("  layout=neato;\n")
	}
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, c := range b.Categories() {
		attrs := []string{fmt.Sprintf("label=%q", categoryLabel(c, opts.Detailed))}
		if opts.Pinned {
			// Canvas y grows downward, Graphviz y upward. Scale pixels to
			// points so boxes do not pile onto each other.
			attrs = append(attrs, fmt.Sprintf("pos=\"%.0f,%.0f!\"", c.Position.X/2, -c.Position.Y/2))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", c.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, conn := range b.Connections() {
		attrs := portAttrs(conn)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", conn.Source, conn.Target)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", conn.Source, conn.Target, strings.Join(attrs, ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func categoryLabel(c board.Category, detailed bool) string {
	if !detailed {
		return fmt.Sprintf("%s\n%d clues", c.Title, len(c.Clues))
	}

	lines := []string{c.Title}
	for _, cl := range c.Clues {
		lines = append(lines, clueLine(cl))
	}
	return strings.Join(lines, "\n")
}

func clueLine(cl board.Clue) string {
	content := cl.Content
	if strings.HasPrefix(content, "data:") {
		content = "(attached)"
	}
	if r := []rune(content); len(r) > maxClueLabelLen {
		content = string(r[:maxClueLabelLen-3]) + "..."
	}

	switch media.Classify(cl.Content) {
	case media.TypeText:
		return content
	default:
		return fmt.Sprintf("[%s] %s", media.Classify(cl.Content), content)
	}
}

// compass maps connection handle names to Graphviz compass points.
var compass = map[string]string{
	board.HandleTop:    "n",
	board.HandleBottom: "s",
	board.HandleLeft:   "w",
	board.HandleRight:  "e",
}

func portAttrs(conn board.Connection) []string {
	var attrs []string
	if p, ok := compass[conn.SourceHandle]; ok {
		attrs = append(attrs, fmt.Sprintf("tailport=%s", p))
	}
	if p, ok := compass[conn.TargetHandle]; ok {
		attrs = append(attrs, fmt.Sprintf("headport=%s", p))
	}
	return attrs
}
