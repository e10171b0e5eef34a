// Package manifest seeds a board from a TOML definition.
//
// A manifest is a hand-written file describing the starting shape of an
// investigation: categories, their clues, and connections. It is meant for
// checking a case template into a repository, not for snapshot persistence;
// use the workflow package for exact save and reload.
//
//	title = "Hotel Theft"
//
//	[[category]]
//	id = "evidence"
//	title = "Evidence"
//	position = { x = 120, y = 80 }
//	clues = ["Fingerprint", "https://example.com/scene.png"]
//
//	[[category]]
//	id = "suspects"
//	title = "Suspects"
//
//	[[connection]]
//	source = "evidence"
//	target = "suspects"
//	source_handle = "right"
//	target_handle = "left"
//
// Category ids and positions are optional; omitted ids are generated and
// omitted positions are scattered the same way the add-category action
// scatters new nodes. Connections must reference explicit category ids.
package manifest

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/clueboard/pkg/board"
	"github.com/matzehuels/clueboard/pkg/errors"
)

type manifestFile struct {
	Title       string          `toml:"title"`
	Categories  []categoryDef   `toml:"category"`
	Connections []connectionDef `toml:"connection"`
}

type categoryDef struct {
	ID       string       `toml:"id"`
	Title    string       `toml:"title"`
	Position *positionDef `toml:"position"`
	Clues    []string     `toml:"clues"`
}

type positionDef struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

type connectionDef struct {
	ID           string `toml:"id"`
	Source       string `toml:"source"`
	Target       string `toml:"target"`
	SourceHandle string `toml:"source_handle"`
	TargetHandle string `toml:"target_handle"`
}

var validHandles = map[string]bool{
	"":                 true,
	board.HandleTop:    true,
	board.HandleBottom: true,
	board.HandleLeft:   true,
	board.HandleRight:  true,
}

// Parse decodes a TOML manifest and builds a fresh board from it.
//
// Parse returns an error if:
//   - The TOML is malformed
//   - An explicit category id is duplicated or unsafe
//   - A connection references a category id not defined in the manifest
//   - A connection names an unknown handle
func Parse(data []byte) (*board.Board, error) {
	var mf manifestFile
	if err := toml.Unmarshal(data, &mf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}

	b := board.New()
	for _, cd := range mf.Categories {
		id := cd.ID
		if id == "" {
			id = board.NewCategoryID()
		} else if err := errors.ValidateEntityID(id); err != nil {
			return nil, err
		}
		if _, exists := b.Category(id); exists {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "duplicate category id: %s", id)
		}

		cat := board.Category{ID: id, Title: cd.Title}
		if cd.Position != nil {
			cat.Position = board.Position{X: cd.Position.X, Y: cd.Position.Y}
		} else {
			cat.Position = b.ScatterPosition()
		}
		for _, content := range cd.Clues {
			cat.Clues = append(cat.Clues, board.Clue{ID: board.NewClueID(), Content: content})
		}
		b.InsertCategory(cat)
	}

	for _, cn := range mf.Connections {
		if _, ok := b.Category(cn.Source); !ok {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "connection source %q not defined", cn.Source)
		}
		if _, ok := b.Category(cn.Target); !ok {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "connection target %q not defined", cn.Target)
		}
		if !validHandles[cn.SourceHandle] || !validHandles[cn.TargetHandle] {
			return nil, errors.New(errors.ErrCodeInvalidManifest,
				"connection %s-%s: unknown handle", cn.Source, cn.Target)
		}
		b.AddConnection(board.Connection{
			ID:           cn.ID,
			Source:       cn.Source,
			Target:       cn.Target,
			SourceHandle: cn.SourceHandle,
			TargetHandle: cn.TargetHandle,
		})
	}

	return b, nil
}

// Load reads and parses a manifest file at path.
func Load(path string) (*board.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
	}
	return Parse(data)
}
