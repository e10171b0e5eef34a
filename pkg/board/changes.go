package board

import "slices"

// The canvas collaborator reports geometry mutations as generic change
// batches: position updates from node drags, additions, and removals. The
// batch format is oblivious to clue ownership, so a node removal arriving
// here must cascade exactly like DeleteCategory - that cross-cutting cascade
// is applied atomically with the geometry change.

// Change types shared by node and edge change batches.
const (
	ChangePosition = "position"
	ChangeAdd      = "add"
	ChangeRemove   = "remove"
)

// NodeChange is one delta in a canvas node change batch.
//
//   - "position": Position moves the category with ID
//   - "add": Node is inserted as a new category
//   - "remove": the category with ID is deleted, cascading to its clues
//     and touching connections
//
// Unrecognized types (selection, dimension probes, ...) are ignored so the
// board tolerates whatever else the canvas emits.
type NodeChange struct {
	Type     string    `json:"type"`
	ID       string    `json:"id,omitempty"`
	Position *Position `json:"position,omitempty"`
	Node     *Category `json:"node,omitempty"`
}

// EdgeChange is one delta in a canvas edge change batch.
//
//   - "add": Edge is appended as a new connection
//   - "remove": the connection with ID is dropped
type EdgeChange struct {
	Type string      `json:"type"`
	ID   string      `json:"id,omitempty"`
	Edge *Connection `json:"edge,omitempty"`
}

// ApplyNodeChanges applies a batch of canvas node deltas in order.
// Each delta that references an unknown category is skipped; subscribers are
// notified once if any delta changed state.
func (b *Board) ApplyNodeChanges(changes []NodeChange) {
	mutated := false
	for _, ch := range changes {
		switch ch.Type {
		case ChangePosition:
			c, ok := b.categories[ch.ID]
			if !ok || ch.Position == nil {
				continue
			}
			c.Position = *ch.Position
			mutated = true
		case ChangeRemove:
			if _, ok := b.categories[ch.ID]; !ok {
				continue
			}
			b.removeCategory(ch.ID)
			mutated = true
		case ChangeAdd:
			if ch.Node == nil {
				continue
			}
			n := *ch.Node
			if n.ID == "" {
				n.ID = NewCategoryID()
			}
			if _, exists := b.categories[n.ID]; exists {
				continue
			}
			if n.Title == "" {
				n.Title = DefaultCategoryTitle
			}
			n.Clues = slices.Clone(n.Clues)
			for i := range n.Clues {
				n.Clues[i].CategoryID = n.ID
			}
			b.categories[n.ID] = &n
			b.order = append(b.order, n.ID)
			mutated = true
		}
	}
	if mutated {
		b.notify("applyNodeChanges")
	}
}

// ApplyEdgeChanges applies a batch of canvas edge deltas in order.
// Adds with unknown endpoints and removes of unknown IDs are skipped.
func (b *Board) ApplyEdgeChanges(changes []EdgeChange) {
	mutated := false
	for _, ch := range changes {
		switch ch.Type {
		case ChangeAdd:
			if ch.Edge == nil {
				continue
			}
			if b.appendConnection(*ch.Edge) {
				mutated = true
			}
		case ChangeRemove:
			before := len(b.connections)
			b.connections = slices.DeleteFunc(b.connections, func(c Connection) bool { return c.ID == ch.ID })
			if len(b.connections) != before {
				mutated = true
			}
		}
	}
	if mutated {
		b.notify("applyEdgeChanges")
	}
}
