package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/clueboard/internal/server"
	"github.com/matzehuels/clueboard/pkg/board"
	"github.com/matzehuels/clueboard/pkg/httputil"
	"github.com/matzehuels/clueboard/pkg/media"
)

const (
	defaultAddr        = "127.0.0.1:7312"
	shutdownTimeout    = 5 * time.Second
	attachmentCacheTTL = 7 * 24 * time.Hour
)

// serveCommand creates the serve command running the local board service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		seed    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local board HTTP service",
		Long: `Serve owns one in-memory board and exposes it over HTTP for a canvas
front end: store actions, batched canvas changes, the drag protocol, and
workflow snapshot download/restore. State lives only in memory; export a
workflow snapshot to keep it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := board.New()
			if seed != "" {
				loaded, err := loadBoard(seed)
				if err != nil {
					return err
				}
				b = loaded
				c.Logger.Info("board seeded", "file", seed,
					"categories", b.CategoryCount(), "clues", b.ClueCount())
			}

			fetcher, err := newFetcher(noCache)
			if err != nil {
				return err
			}

			return c.runServer(cmd.Context(), addr, b, fetcher)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&seed, "board", "", "seed board from a .toml manifest or .json workflow")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the attachment cache")

	return cmd
}

// runServer blocks until ctx is cancelled, then shuts the listener down.
func (c *CLI) runServer(ctx context.Context, addr string, b *board.Board, fetcher *media.Fetcher) error {
	srv := server.New(b, fetcher, c.Logger)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	c.Logger.Info("server stopped")
	return ctx.Err()
}

// newFetcher builds the media fetcher, backed by the file cache unless
// disabled.
func newFetcher(noCache bool) (*media.Fetcher, error) {
	if noCache {
		return media.NewFetcher(nil), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return media.NewFetcher(nil), nil
	}
	cache, err := httputil.NewCache(dir, attachmentCacheTTL)
	if err != nil {
		return media.NewFetcher(nil), nil
	}
	return media.NewFetcher(cache), nil
}
