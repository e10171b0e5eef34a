package board

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryTitle is used when a category is created with an empty title.
const DefaultCategoryTitle = "Nova Categoria"

// Connection handle names. A connection may attach to one of four anchor
// points on each category node; empty means the canvas picks a side.
const (
	HandleTop    = "top"
	HandleBottom = "bottom"
	HandleLeft   = "left"
	HandleRight  = "right"
)

// Position is a raw 2D canvas coordinate. The board stores whatever the
// canvas collaborator supplies; there is no layout logic here.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Clue is a single content card owned by exactly one category.
//
// Content is either literal text or a data-URI/URL string; its media type is
// never stored authoritatively - derive it with media.Classify where needed.
type Clue struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	Content    string `json:"content"`
}

// Category is a titled canvas node holding an ordered list of clues.
// A category with no clues is valid. Clue order is significant: it is the
// display and drag-target order.
type Category struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Position Position `json:"position"`
	Clues    []Clue   `json:"clues"`
}

// Connection is a directed visual edge between two category nodes.
// It is independent of clue data. SourceHandle and TargetHandle name the
// anchor points ("top", "bottom", "left", "right") and may be empty.
type Connection struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	Target       string `json:"target"`
	SourceHandle string `json:"sourceHandle,omitempty"`
	TargetHandle string `json:"targetHandle,omitempty"`
}

// Touches reports whether the connection has categoryID as either endpoint.
func (c Connection) Touches(categoryID string) bool {
	return c.Source == categoryID || c.Target == categoryID
}

// NewCategoryID returns a fresh category ID. IDs compose a creation timestamp
// with a random suffix, so they sort by creation order and collisions are
// improbable within a session. IDs are never reused after deletion.
func NewCategoryID() string { return newID("category") }

// NewClueID returns a fresh clue ID, unique across the whole board.
func NewClueID() string { return newID("clue") }

// NewConnectionID returns a fresh connection ID.
func NewConnectionID() string { return newID("connection") }

func newID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// defaultClueContent fills in for an empty clue content at creation time.
func defaultClueContent() string {
	return fmt.Sprintf("Pista %d", time.Now().UnixMilli())
}
