// Package board implements the investigation board state model: titled
// categories placed as nodes on a canvas, each holding an ordered list of
// clue cards, connected by drawable edges.
//
// # Architecture
//
// [Board] is the single source of truth for one editing session. It owns
// three mutually consistent structures:
//
//   - the category set with canvas positions (node placements)
//   - each category's ordered clue list (display and drag-target order)
//   - the connection set (edges between category nodes)
//
// All mutations go through the action methods (AddCategory, MoveClueToCategory,
// ReorderClues, ...). Every action is one atomic state transition executed
// synchronously on the caller's goroutine; readers always observe a consistent
// whole-board snapshot.
//
// # Invariants
//
// The actions maintain, at all times:
//
//   - a clue's CategoryID equals the ID of the one category whose list
//     contains it
//   - deleting a category discards its clue list in the same transition
//     (clues are never orphaned or relocated)
//   - connections never reference a deleted category (touching edges are
//     pruned when a category goes away)
//
// # Error Handling
//
// Actions never fail for well-formed inputs. An unknown ID, a mismatched
// category, or a missing clue degrades to a silent no-op that leaves the
// board unchanged. A user-facing editor should never crash on a stale
// reference from two nearly simultaneous UI events; callers that need to
// distinguish "changed" from "stale" can compare snapshots or use the
// boolean-returning lookups.
//
// # Canvas Change Channel
//
// The presentation layer's canvas collaborator delivers geometry updates as
// generic change batches. [Board.ApplyNodeChanges] and [Board.ApplyEdgeChanges]
// consume them; a node removal arriving through this channel cascades exactly
// like [Board.DeleteCategory].
//
// # Concurrency
//
// Board is not safe for concurrent use without external synchronization.
// There is a single logical writer per session; serving surfaces (see
// internal/server) serialize access themselves.
package board
