package board

import (
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/clueboard/pkg/observability"
)

// initialSpread is the square region new categories are scattered over,
// matching the canvas collaborator's default viewport.
const initialSpread = 400

// Board is the single source of truth for one editing session.
//
// The zero value is not usable - use [New]. Board is not safe for concurrent
// use without external synchronization.
type Board struct {
	categories  map[string]*Category
	order       []string // category IDs in insertion order
	connections []Connection

	// position produces canvas coordinates for new categories.
	// Defaults to a random scatter; tests may swap it for determinism.
	position func() Position

	subs    map[int]func()
	nextSub int
}

// New creates an empty board.
func New() *Board {
	return &Board{
		categories: make(map[string]*Category),
		subs:       make(map[int]func()),
		position: func() Position {
			return Position{X: rand.Float64() * initialSpread, Y: rand.Float64() * initialSpread}
		},
	}
}

// Subscribe registers fn to run after every state-changing action.
// No-op actions do not notify. The returned cancel func removes the
// subscription; it is safe to call more than once.
func (b *Board) Subscribe(fn func()) (cancel func()) {
	id := b.nextSub
	b.nextSub++
	b.subs[id] = fn
	return func() { delete(b.subs, id) }
}

// notify runs subscribers and records the action. Call only after a
// mutation actually changed state.
func (b *Board) notify(action string) {
	observability.Store().OnAction(action)
	for _, fn := range b.subs {
		fn()
	}
}

// SetPositionFunc replaces the coordinate source for new categories.
// Passing nil restores the default random scatter.
func (b *Board) SetPositionFunc(fn func() Position) {
	if fn == nil {
		b.position = func() Position {
			return Position{X: rand.Float64() * initialSpread, Y: rand.Float64() * initialSpread}
		}
		return
	}
	b.position = fn
}

// ScatterPosition returns a fresh canvas position from the board's
// coordinate source, the same placement AddCategory uses. Seeding paths
// call it for categories defined without an explicit position.
func (b *Board) ScatterPosition() Position { return b.position() }

// =============================================================================
// Category actions
// =============================================================================

// AddCategory creates a category with the given title (or
// [DefaultCategoryTitle] if empty), an empty clue list, and a fresh canvas
// position. It always succeeds and returns the new category's ID.
func (b *Board) AddCategory(title string) string {
	if title == "" {
		title = DefaultCategoryTitle
	}
	c := &Category{
		ID:       NewCategoryID(),
		Title:    title,
		Position: b.position(),
	}
	b.categories[c.ID] = c
	b.order = append(b.order, c.ID)
	b.notify("addCategory")
	return c.ID
}

// InsertCategory adds a fully specified category, preserving its ID, title,
// position, and clue list. It is the restore path used by snapshot import and
// manifest seeding. Clue CategoryID back-references are rewritten to the
// category's ID. Returns false (board unchanged) if the ID is empty or
// already present.
func (b *Board) InsertCategory(c Category) bool {
	if c.ID == "" {
		return false
	}
	if _, exists := b.categories[c.ID]; exists {
		return false
	}
	if c.Title == "" {
		c.Title = DefaultCategoryTitle
	}
	c.Clues = slices.Clone(c.Clues)
	for i := range c.Clues {
		c.Clues[i].CategoryID = c.ID
	}
	b.categories[c.ID] = &c
	b.order = append(b.order, c.ID)
	b.notify("insertCategory")
	return true
}

// DeleteCategory removes the category, discards its clue list, and prunes
// connections touching it, all in one transition. Deleting an unknown ID is
// a no-op.
func (b *Board) DeleteCategory(categoryID string) {
	if _, ok := b.categories[categoryID]; !ok {
		return
	}
	b.removeCategory(categoryID)
	b.notify("deleteCategory")
}

// removeCategory deletes the category from every index without notifying.
// Callers must have checked existence.
func (b *Board) removeCategory(categoryID string) {
	delete(b.categories, categoryID)
	b.order = slices.DeleteFunc(b.order, func(id string) bool { return id == categoryID })
	b.connections = slices.DeleteFunc(b.connections, func(c Connection) bool { return c.Touches(categoryID) })
}

// UpdateCategoryTitle replaces the category's title. Unknown ID is a no-op.
func (b *Board) UpdateCategoryTitle(categoryID, title string) {
	c, ok := b.categories[categoryID]
	if !ok {
		return
	}
	c.Title = title
	b.notify("updateCategoryTitle")
}

// =============================================================================
// Clue actions
// =============================================================================

// AddClue appends a new clue to the named category's list and returns its ID.
// Empty content gets a "Pista <timestamp>" placeholder. Returns "" without
// changing state if the category is unknown.
func (b *Board) AddClue(categoryID, content string) string {
	c, ok := b.categories[categoryID]
	if !ok {
		return ""
	}
	if content == "" {
		content = defaultClueContent()
	}
	clue := Clue{ID: NewClueID(), CategoryID: categoryID, Content: content}
	c.Clues = append(c.Clues, clue)
	b.notify("addClue")
	return clue.ID
}

// UpdateClue replaces a clue's content in place. The clue is looked up within
// the named category only; unknown category or clue is a no-op.
func (b *Board) UpdateClue(categoryID, clueID, content string) {
	c, ok := b.categories[categoryID]
	if !ok {
		return
	}
	i := slices.IndexFunc(c.Clues, func(cl Clue) bool { return cl.ID == clueID })
	if i < 0 {
		return
	}
	c.Clues[i].Content = content
	b.notify("updateClue")
}

// DeleteClue removes the clue from its category's list. Unknown category or
// clue is a no-op, so deletes are idempotent.
func (b *Board) DeleteClue(categoryID, clueID string) {
	c, ok := b.categories[categoryID]
	if !ok {
		return
	}
	before := len(c.Clues)
	c.Clues = slices.DeleteFunc(c.Clues, func(cl Clue) bool { return cl.ID == clueID })
	if len(c.Clues) == before {
		return
	}
	b.notify("deleteClue")
}

// MoveClueToCategory transfers clue ownership: the clue is removed from the
// source category's list, appended to the END of the destination's list, and
// its CategoryID back-reference rewritten, all in one transition.
//
// This is the only path that changes clue ownership. It never duplicates or
// drops the clue: if the source and destination are the same, either category
// is unknown, or the clue is not in the source list, both lists are left
// untouched. Calling it again with a stale source is therefore a no-op.
func (b *Board) MoveClueToCategory(clueID, fromCategoryID, toCategoryID string) {
	if fromCategoryID == toCategoryID {
		return
	}
	from, ok := b.categories[fromCategoryID]
	if !ok {
		return
	}
	to, ok := b.categories[toCategoryID]
	if !ok {
		return
	}
	i := slices.IndexFunc(from.Clues, func(cl Clue) bool { return cl.ID == clueID })
	if i < 0 {
		return
	}
	clue := from.Clues[i]
	from.Clues = slices.Delete(from.Clues, i, i+1)
	clue.CategoryID = toCategoryID
	to.Clues = append(to.Clues, clue)
	b.notify("moveClueToCategory")
}

// ReorderClues moves the clue with clueID to the position currently occupied
// by overClueID within the same category, preserving all other relative
// order. The set of clue IDs in the category never changes. If either clue is
// missing from the category, the list is left unchanged.
func (b *Board) ReorderClues(categoryID, clueID, overClueID string) {
	c, ok := b.categories[categoryID]
	if !ok {
		return
	}
	oldIndex := slices.IndexFunc(c.Clues, func(cl Clue) bool { return cl.ID == clueID })
	newIndex := slices.IndexFunc(c.Clues, func(cl Clue) bool { return cl.ID == overClueID })
	if oldIndex < 0 || newIndex < 0 || oldIndex == newIndex {
		return
	}
	clue := c.Clues[oldIndex]
	c.Clues = slices.Delete(c.Clues, oldIndex, oldIndex+1)
	c.Clues = slices.Insert(c.Clues, newIndex, clue)
	b.notify("reorderClues")
}

// =============================================================================
// Connection actions
// =============================================================================

// AddConnection appends a connection between two existing categories.
// An empty ID is assigned a fresh one. Unknown endpoints are a no-op: the
// board never holds an edge it would immediately have to prune.
// Duplicate connections between the same endpoints are allowed.
func (b *Board) AddConnection(conn Connection) {
	if !b.appendConnection(conn) {
		return
	}
	b.notify("addConnection")
}

// appendConnection validates endpoints and appends, reporting whether the
// connection set changed.
func (b *Board) appendConnection(conn Connection) bool {
	if _, ok := b.categories[conn.Source]; !ok {
		return false
	}
	if _, ok := b.categories[conn.Target]; !ok {
		return false
	}
	if conn.ID == "" {
		conn.ID = NewConnectionID()
	}
	b.connections = append(b.connections, conn)
	return true
}

// RemoveConnection deletes the connection with the given ID. Unknown IDs are
// a no-op.
func (b *Board) RemoveConnection(connectionID string) {
	before := len(b.connections)
	b.connections = slices.DeleteFunc(b.connections, func(c Connection) bool { return c.ID == connectionID })
	if len(b.connections) == before {
		return
	}
	b.notify("removeConnection")
}

// =============================================================================
// Snapshot reads
// =============================================================================

// Category returns a deep copy of the category with the given ID.
func (b *Board) Category(categoryID string) (Category, bool) {
	c, ok := b.categories[categoryID]
	if !ok {
		return Category{}, false
	}
	out := *c
	out.Clues = slices.Clone(c.Clues)
	return out, true
}

// Categories returns deep copies of all categories in insertion order.
// Modifications to the returned values do not affect the board.
func (b *Board) Categories() []Category {
	out := make([]Category, 0, len(b.order))
	for _, id := range b.order {
		c := b.categories[id]
		cp := *c
		cp.Clues = slices.Clone(c.Clues)
		out = append(out, cp)
	}
	return out
}

// Connections returns a copy of all connections in insertion order.
func (b *Board) Connections() []Connection { return slices.Clone(b.connections) }

// CategoryCount returns the number of categories on the board.
func (b *Board) CategoryCount() int { return len(b.categories) }

// ClueCount returns the total number of clues across all categories.
func (b *Board) ClueCount() int {
	n := 0
	for _, c := range b.categories {
		n += len(c.Clues)
	}
	return n
}

// FindClue locates a clue by ID anywhere on the board.
func (b *Board) FindClue(clueID string) (Clue, bool) {
	for _, id := range b.order {
		c := b.categories[id]
		if i := slices.IndexFunc(c.Clues, func(cl Clue) bool { return cl.ID == clueID }); i >= 0 {
			return c.Clues[i], true
		}
	}
	return Clue{}, false
}

// ClueInCategory reports whether the named category's list contains the clue.
// This is the duplicate guard used by the drag resolver's eager move.
func (b *Board) ClueInCategory(categoryID, clueID string) bool {
	c, ok := b.categories[categoryID]
	if !ok {
		return false
	}
	return slices.ContainsFunc(c.Clues, func(cl Clue) bool { return cl.ID == clueID })
}
