package workflow

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matzehuels/clueboard/pkg/board"
)

// Filename returns the conventional snapshot filename for the given day,
// workflow-<ISO-date>.json.
func Filename(now time.Time) string {
	return fmt.Sprintf("workflow-%s.json", now.Format("2006-01-02"))
}

// Export reads the board and builds the interchange document. Categories
// appear in the board's insertion order and clue sequences are copied as-is.
func Export(b *board.Board) Document {
	cats := b.Categories()
	doc := Document{
		Categories:  make([]CategoryDoc, len(cats)),
		Connections: make([]ConnectionDoc, 0),
	}

	for i, c := range cats {
		cd := CategoryDoc{
			ID:       ID(c.ID),
			Title:    c.Title,
			Position: PositionDoc{X: c.Position.X, Y: c.Position.Y},
			Clues:    make([]ClueDoc, len(c.Clues)),
		}
		for j, cl := range c.Clues {
			cd.Clues[j] = ClueDoc{
				ID:         ID(cl.ID),
				CategoryID: ID(cl.CategoryID),
				Content:    cl.Content,
			}
		}
		doc.Categories[i] = cd
	}

	for _, conn := range b.Connections() {
		doc.Connections = append(doc.Connections, ConnectionDoc{
			ID:           ID(conn.ID),
			Source:       ID(conn.Source),
			Target:       ID(conn.Target),
			SourceHandle: conn.SourceHandle,
			TargetHandle: conn.TargetHandle,
		})
	}

	return doc
}

// WriteJSON encodes the board as an indented JSON document and writes it
// to w. The output can be re-imported with [ReadJSON] for round-trip
// processing.
func WriteJSON(b *board.Board, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Export(b)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportFile writes the board snapshot to a file at path, creating or
// truncating it.
func ExportFile(b *board.Board, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(b, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
