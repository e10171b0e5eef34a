package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/clueboard/pkg/board"
	"github.com/matzehuels/clueboard/pkg/drag"
	"github.com/matzehuels/clueboard/pkg/errors"
	"github.com/matzehuels/clueboard/pkg/media"
	"github.com/matzehuels/clueboard/pkg/render"
	"github.com/matzehuels/clueboard/pkg/workflow"
)

// =============================================================================
// Workflow snapshot
// =============================================================================

func (s *Server) handleWorkflow(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	doc := workflow.Export(s.board)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleWorkflowDownload(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	doc := workflow.Export(s.board)
	s.mu.Unlock()

	name := workflow.Filename(time.Now())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleWorkflowRestore(w http.ResponseWriter, r *http.Request) {
	var doc workflow.Document
	if !decode(w, r, &doc) {
		return
	}

	restored, err := workflow.Restore(doc)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, errors.UserMessage(err))
		return
	}

	s.mu.Lock()
	s.board = restored
	s.resolver = drag.NewResolver(restored)
	s.mu.Unlock()

	s.logger.Info("workflow restored",
		"categories", restored.CategoryCount(), "clues", restored.ClueCount())
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Category and clue actions
// =============================================================================

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	id := s.board.AddCategory(req.Title)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleRenameCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	s.board.UpdateCategoryTitle(chi.URLParam(r, "categoryID"), req.Title)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.board.DeleteCategory(chi.URLParam(r, "categoryID"))
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddClue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	id := s.board.AddClue(chi.URLParam(r, "categoryID"), req.Content)
	s.mu.Unlock()

	if id == "" {
		writeError(w, http.StatusNotFound, "unknown category")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleUpdateClue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	s.board.UpdateClue(chi.URLParam(r, "categoryID"), chi.URLParam(r, "clueID"), req.Content)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteClue(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.board.DeleteClue(chi.URLParam(r, "categoryID"), chi.URLParam(r, "clueID"))
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReorderClues(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClueID     string `json:"clueId"`
		OverClueID string `json:"overClueId"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	s.board.ReorderClues(chi.URLParam(r, "categoryID"), req.ClueID, req.OverClueID)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMoveClue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	s.board.MoveClueToCategory(chi.URLParam(r, "clueID"), req.From, req.To)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Connections
// =============================================================================

func (s *Server) handleAddConnection(w http.ResponseWriter, r *http.Request) {
	var conn board.Connection
	if !decode(w, r, &conn) {
		return
	}

	s.mu.Lock()
	s.board.AddConnection(conn)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemoveConnection(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.board.RemoveConnection(chi.URLParam(r, "connectionID"))
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Canvas change channel
// =============================================================================

func (s *Server) handleNodeChanges(w http.ResponseWriter, r *http.Request) {
	var changes []board.NodeChange
	if !decode(w, r, &changes) {
		return
	}

	s.mu.Lock()
	s.board.ApplyNodeChanges(changes)
	s.mu.Unlock()
	// Echo the batch back for the canvas collaborator to re-render from.
	writeJSON(w, http.StatusOK, changes)
}

func (s *Server) handleEdgeChanges(w http.ResponseWriter, r *http.Request) {
	var changes []board.EdgeChange
	if !decode(w, r, &changes) {
		return
	}

	s.mu.Lock()
	s.board.ApplyEdgeChanges(changes)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, changes)
}

// =============================================================================
// Drag protocol
// =============================================================================

func (s *Server) handleDragStart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClueID string `json:"clueId"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	s.resolver.Start(req.ClueID)
	active, dragging := s.resolver.Active()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"dragging": dragging,
		"active":   active,
	})
}

func (s *Server) handleDragOver(w http.ResponseWriter, r *http.Request) {
	var target drag.Target
	if !decode(w, r, &target) {
		return
	}

	s.mu.Lock()
	s.resolver.Over(target)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDragEnd(w http.ResponseWriter, r *http.Request) {
	// A missing or null body means release over nothing valid.
	var target *drag.Target
	if r.ContentLength != 0 {
		if !decode(w, r, &target) {
			return
		}
	}

	s.mu.Lock()
	s.resolver.End(target)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDragCancel(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.resolver.Cancel()
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Media
// =============================================================================

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	content := r.URL.Query().Get("content")
	writeJSON(w, http.StatusOK, map[string]string{
		"mediaType": string(media.Classify(content)),
	})
}

func (s *Server) handleAttach(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Source string `json:"source"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Source == "" {
		writeError(w, http.StatusBadRequest, "source is required")
		return
	}

	// The fetch may hit the network; it runs outside the board lock.
	uri, err := s.fetcher.DataURI(r.Context(), req.Source)
	if err != nil {
		writeError(w, http.StatusBadGateway, errors.UserMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"dataUri":   uri,
		"mediaType": string(media.Classify(uri)),
	})
}

// =============================================================================
// Diagram
// =============================================================================

func (s *Server) handleRenderSVG(w http.ResponseWriter, r *http.Request) {
	s.renderBoard(w, r, "image/svg+xml", render.SVG)
}

func (s *Server) handleRenderPNG(w http.ResponseWriter, r *http.Request) {
	s.renderBoard(w, r, "image/png", render.PNG)
}

func (s *Server) renderBoard(w http.ResponseWriter, r *http.Request, contentType string,
	rasterize func(ctx context.Context, dot string) ([]byte, error)) {
	opts := render.Options{
		Detailed: r.URL.Query().Get("detailed") == "true",
		Pinned:   r.URL.Query().Get("pinned") == "true",
	}

	s.mu.Lock()
	dot := render.ToDOT(s.board, opts)
	s.mu.Unlock()

	out, err := rasterize(r.Context(), dot)
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.UserMessage(err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
