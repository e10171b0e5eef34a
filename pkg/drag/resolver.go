// Package drag resolves drag gestures over the board into store mutations.
//
// A pointer-drag collaborator (outside this core) reports three events per
// gesture: Start when a clue card is picked up, Over repeatedly while it
// hovers a target, and End on release. The resolver translates those into
// one of three intents - reorder within a category, move across categories,
// or nothing - and delegates the mutation to the board store.
//
// # Two-phase protocol
//
// Cross-category moves are applied in two phases. While the gesture is still
// in flight, hovering a clue in a DIFFERENT category eagerly moves the
// dragged clue there (the "live preview": the card visibly relocates before
// release). On release, the terminal target decides final placement: a
// same-category clue target becomes a reorder, a category target or
// cross-category clue target becomes a move. The eager phase carries an
// explicit duplicate guard - it never moves a clue into a category that
// already lists it - which is the only thing preventing visible duplication
// during a fast drag.
//
// The split keeps continuous visual feedback while leaving the exact
// insertion index to the terminal event, so the sequence is not thrashed on
// every pointer-move tick.
package drag

import "github.com/matzehuels/clueboard/pkg/board"

// Store is the slice of the board store the resolver mutates and consults.
// *board.Board satisfies it.
type Store interface {
	MoveClueToCategory(clueID, fromCategoryID, toCategoryID string)
	ReorderClues(categoryID, clueID, overClueID string)
	ClueInCategory(categoryID, clueID string) bool
	FindClue(clueID string) (board.Clue, bool)
}

// Target kinds reported by the drag collaborator.
const (
	TargetClue     = "clue"
	TargetCategory = "category"
)

// Target identifies what the pointer is over. For a clue target, CategoryID
// names the category currently listing that clue.
type Target struct {
	Kind       string `json:"kind"`
	ID         string `json:"id"`
	CategoryID string `json:"categoryId,omitempty"`
}

// State is the resolver's position in the gesture lifecycle.
type State int

const (
	// Idle means no drag is in flight.
	Idle State = iota
	// Dragging means a clue has been picked up and not yet released.
	Dragging
)

// Resolver is the state machine over a single in-flight drag.
// It holds at most one active clue; a new Start while Dragging replaces it
// (the collaborator never overlaps gestures, but a stale gesture must not
// wedge the resolver). Resolver is not safe for concurrent use.
type Resolver struct {
	store  Store
	state  State
	active string // active clue ID while Dragging
}

// NewResolver creates a resolver bound to a store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// State returns the current lifecycle state.
func (r *Resolver) State() State { return r.state }

// Active returns the clue being dragged, if any. The caller uses it to
// float a visual proxy of the card under the pointer.
func (r *Resolver) Active() (board.Clue, bool) {
	if r.state != Dragging {
		return board.Clue{}, false
	}
	return r.store.FindClue(r.active)
}

// Start begins a gesture for the given clue. Unknown clues are ignored and
// the resolver stays Idle.
func (r *Resolver) Start(clueID string) {
	if _, ok := r.store.FindClue(clueID); !ok {
		r.reset()
		return
	}
	r.active = clueID
	r.state = Dragging
}

// Over handles a hover tick while Dragging. Only a clue target in a
// different category triggers the eager preview move; hovering a category
// (including an empty one) defers to End, and the duplicate guard skips the
// move when the target category already lists the active clue.
func (r *Resolver) Over(target Target) {
	if r.state != Dragging {
		return
	}
	if target.Kind != TargetClue {
		return
	}
	clue, ok := r.store.FindClue(r.active)
	if !ok {
		return
	}
	if target.CategoryID == clue.CategoryID {
		return
	}
	if r.store.ClueInCategory(target.CategoryID, r.active) {
		return
	}
	r.store.MoveClueToCategory(r.active, clue.CategoryID, target.CategoryID)
}

// End finishes the gesture. A nil target (released over nothing valid)
// mutates nothing. Otherwise the terminal intent is resolved against the
// clue's CURRENT category - eager moves from Over have already been applied,
// so a redundant move degrades to the store's same-category no-op.
// The resolver always returns to Idle.
func (r *Resolver) End(target *Target) {
	defer r.reset()

	if r.state != Dragging || target == nil {
		return
	}
	clue, ok := r.store.FindClue(r.active)
	if !ok {
		return
	}

	switch target.Kind {
	case TargetCategory:
		if target.ID != clue.CategoryID {
			r.store.MoveClueToCategory(r.active, clue.CategoryID, target.ID)
		}
	case TargetClue:
		if target.CategoryID == clue.CategoryID {
			r.store.ReorderClues(clue.CategoryID, r.active, target.ID)
		} else {
			r.store.MoveClueToCategory(r.active, clue.CategoryID, target.CategoryID)
		}
	}
}

// Cancel aborts the gesture without mutating anything.
func (r *Resolver) Cancel() { r.reset() }

func (r *Resolver) reset() {
	r.active = ""
	r.state = Idle
}
