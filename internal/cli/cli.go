// Package cli implements the clueboard command-line interface.
//
// This package provides commands for serving a board over HTTP, exporting
// and rendering snapshots, browsing a board in the terminal, and working
// with media attachments. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - serve: Run the local board HTTP service
//   - export: Write a board as a workflow snapshot
//   - render: Generate an SVG or PNG diagram of a board
//   - browse: Inspect a board interactively in the terminal
//   - classify: Show the media type of content strings
//   - attach: Fetch a file or URL into a data URI attachment
//   - cache: Manage the attachment cache
//
// # Board inputs
//
// Commands that read a board accept either a TOML case manifest (seeded
// through the manifest package) or a JSON workflow snapshot (restored
// through the workflow package), chosen by file extension.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/clueboard/pkg/board"
	"github.com/matzehuels/clueboard/pkg/buildinfo"
	"github.com/matzehuels/clueboard/pkg/errors"
	"github.com/matzehuels/clueboard/pkg/manifest"
	"github.com/matzehuels/clueboard/pkg/workflow"
)

// appName is the application name used for directories and display.
const appName = "clueboard"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Clueboard is an investigation board editor",
		Long:         `Clueboard manages investigation boards: titled categories of clue cards connected on a canvas. It serves a board over HTTP for a canvas front end, and exports, renders, and browses board snapshots.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.classifyCommand())
	root.AddCommand(c.attachCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Board Loading
// =============================================================================

// loadBoard reads a board from path, dispatching on extension: .toml goes
// through the manifest seeder, .json through the workflow codec.
func loadBoard(path string) (*board.Board, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return manifest.Load(path)
	case ".json":
		return workflow.ImportFile(path)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported,
			"unsupported board file %q (want .toml manifest or .json workflow)", path)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/clueboard/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
