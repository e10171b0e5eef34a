package server

import (
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/clueboard/pkg/board"
	"github.com/matzehuels/clueboard/pkg/drag"
	"github.com/matzehuels/clueboard/pkg/media"
)

// Server owns one board and serves it over HTTP. All access to the board
// and resolver goes through mu, which gives every request the same
// whole-state snapshot semantics as the in-process store.
type Server struct {
	mu       sync.Mutex
	board    *board.Board
	resolver *drag.Resolver
	fetcher  *media.Fetcher
	logger   *log.Logger
}

// New creates a server around an existing board. fetcher may be nil to
// disable the attachment endpoint's caching (a default fetcher is built).
func New(b *board.Board, fetcher *media.Fetcher, logger *log.Logger) *Server {
	if fetcher == nil {
		fetcher = media.NewFetcher(nil)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		board:    b,
		resolver: drag.NewResolver(b),
		fetcher:  fetcher,
		logger:   logger,
	}
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/workflow", s.handleWorkflow)
		r.Get("/workflow/download", s.handleWorkflowDownload)
		r.Put("/workflow", s.handleWorkflowRestore)

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", s.handleAddCategory)
			r.Patch("/{categoryID}", s.handleRenameCategory)
			r.Delete("/{categoryID}", s.handleDeleteCategory)
			r.Post("/{categoryID}/clues", s.handleAddClue)
			r.Patch("/{categoryID}/clues/{clueID}", s.handleUpdateClue)
			r.Delete("/{categoryID}/clues/{clueID}", s.handleDeleteClue)
			r.Post("/{categoryID}/reorder", s.handleReorderClues)
		})

		r.Post("/clues/{clueID}/move", s.handleMoveClue)

		r.Post("/connections", s.handleAddConnection)
		r.Delete("/connections/{connectionID}", s.handleRemoveConnection)

		r.Post("/changes/nodes", s.handleNodeChanges)
		r.Post("/changes/edges", s.handleEdgeChanges)

		r.Route("/drag", func(r chi.Router) {
			r.Post("/start", s.handleDragStart)
			r.Post("/over", s.handleDragOver)
			r.Post("/end", s.handleDragEnd)
			r.Post("/cancel", s.handleDragCancel)
		})

		r.Get("/classify", s.handleClassify)
		r.Post("/attach", s.handleAttach)

		r.Get("/render.svg", s.handleRenderSVG)
		r.Get("/render.png", s.handleRenderPNG)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
