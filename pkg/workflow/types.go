package workflow

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is the top-level interchange object. It is sufficient to fully
// reconstruct a board: category node list with nested ordered clues and
// positions, plus the connection list.
type Document struct {
	Categories  []CategoryDoc   `json:"categories"`
	Connections []ConnectionDoc `json:"connections"`
}

// CategoryDoc is one category node with its ordered clue sequence.
type CategoryDoc struct {
	ID       ID          `json:"id"`
	Title    string      `json:"title"`
	Position PositionDoc `json:"position"`
	Clues    []ClueDoc   `json:"clues"`
}

// PositionDoc is a 2D canvas coordinate.
type PositionDoc struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ClueDoc is one clue card. CategoryID is the back-reference to the owning
// category; on import it is rewritten to the containing category regardless
// of the stored value, since the sequence is authoritative for ownership.
type ClueDoc struct {
	ID         ID     `json:"id"`
	CategoryID ID     `json:"categoryId"`
	Content    string `json:"content"`
}

// ConnectionDoc is one edge between two category nodes.
type ConnectionDoc struct {
	ID           ID     `json:"id"`
	Source       ID     `json:"source"`
	Target       ID     `json:"target"`
	SourceHandle string `json:"sourceHandle,omitempty"`
	TargetHandle string `json:"targetHandle,omitempty"`
}

// ID is an entity identifier in its canonical string form. Documents written
// by older tooling carry ids as JSON numbers; ID accepts both on decode and
// always encodes as a string, so "42" and 42 address the same entity.
type ID string

// UnmarshalJSON decodes a JSON string or number into the canonical string form.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty id token")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}
