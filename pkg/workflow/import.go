package workflow

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/clueboard/pkg/board"
	"github.com/matzehuels/clueboard/pkg/errors"
)

// Restore builds a fresh board from a decoded document. It is the precise
// structural inverse of [Export]: categories are inserted in document order
// with their clue sequences intact, then connections are attached.
//
// Restore returns an error if:
//   - A category id is empty or duplicated
//   - A clue id is empty or duplicated anywhere on the board
//   - A connection references a category id not present in the document
//
// Clue back-references are rewritten to the containing category regardless
// of the stored categoryId, since the sequence is authoritative.
func Restore(doc Document) (*board.Board, error) {
	b := board.New()
	clueIDs := make(map[string]struct{})

	for _, cd := range doc.Categories {
		if cd.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidWorkflow, "category with empty id")
		}
		if _, ok := b.Category(string(cd.ID)); ok {
			return nil, errors.New(errors.ErrCodeInvalidWorkflow, "duplicate category id: %s", cd.ID)
		}

		cat := board.Category{
			ID:       string(cd.ID),
			Title:    cd.Title,
			Position: board.Position{X: cd.Position.X, Y: cd.Position.Y},
			Clues:    make([]board.Clue, len(cd.Clues)),
		}
		for i, cl := range cd.Clues {
			if cl.ID == "" {
				return nil, errors.New(errors.ErrCodeInvalidWorkflow, "category %s: clue with empty id", cd.ID)
			}
			if _, dup := clueIDs[string(cl.ID)]; dup {
				return nil, errors.New(errors.ErrCodeInvalidWorkflow, "duplicate clue id: %s", cl.ID)
			}
			clueIDs[string(cl.ID)] = struct{}{}
			cat.Clues[i] = board.Clue{ID: string(cl.ID), Content: cl.Content}
		}
		b.InsertCategory(cat)
	}

	for _, cn := range doc.Connections {
		if _, ok := b.Category(string(cn.Source)); !ok {
			return nil, errors.New(errors.ErrCodeInvalidWorkflow,
				"connection %s: unknown source category %s", cn.ID, cn.Source)
		}
		if _, ok := b.Category(string(cn.Target)); !ok {
			return nil, errors.New(errors.ErrCodeInvalidWorkflow,
				"connection %s: unknown target category %s", cn.ID, cn.Target)
		}
		b.AddConnection(board.Connection{
			ID:           string(cn.ID),
			Source:       string(cn.Source),
			Target:       string(cn.Target),
			SourceHandle: cn.SourceHandle,
			TargetHandle: cn.TargetHandle,
		})
	}

	return b, nil
}

// ReadJSON decodes a snapshot document from r and restores it into a fresh
// board via [Restore]. The returned board is independent of r and can be
// mutated freely. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*board.Board, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode workflow document")
	}
	return Restore(doc)
}

// ImportFile reads a snapshot file at path and returns the restored board.
// A missing file is reported with ErrCodeFileNotFound so callers can offer
// a clean "start fresh" path.
func ImportFile(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "workflow file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
