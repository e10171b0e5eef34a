package manifest

import (
	"testing"

	"github.com/matzehuels/clueboard/pkg/board"
	"github.com/matzehuels/clueboard/pkg/errors"
)

// caseManifest mirrors the example in the package documentation; keep the
// two in sync so the documented manifest stays parseable.
const caseManifest = `
title = "Hotel Theft"

[[category]]
id = "evidence"
title = "Evidence"
position = { x = 120, y = 80 }
clues = ["Fingerprint", "https://example.com/scene.png"]

[[category]]
id = "suspects"
title = "Suspects"

[[connection]]
source = "evidence"
target = "suspects"
source_handle = "right"
target_handle = "left"
`

func TestParse(t *testing.T) {
	b, err := Parse([]byte(caseManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if b.CategoryCount() != 2 {
		t.Fatalf("categories = %d, want 2", b.CategoryCount())
	}

	ev, ok := b.Category("evidence")
	if !ok {
		t.Fatal("evidence category not found")
	}
	if ev.Position.X != 120 || ev.Position.Y != 80 {
		t.Errorf("position = %+v, want {120 80}", ev.Position)
	}
	if len(ev.Clues) != 2 || ev.Clues[0].Content != "Fingerprint" {
		t.Errorf("clues = %+v", ev.Clues)
	}
	if ev.Clues[0].CategoryID != "evidence" {
		t.Errorf("clue back-reference = %q, want evidence", ev.Clues[0].CategoryID)
	}
	if ev.Clues[0].ID == "" || ev.Clues[0].ID == ev.Clues[1].ID {
		t.Errorf("clue ids not generated uniquely: %q, %q", ev.Clues[0].ID, ev.Clues[1].ID)
	}

	conns := b.Connections()
	if len(conns) != 1 {
		t.Fatalf("connections = %d, want 1", len(conns))
	}
	if conns[0].SourceHandle != board.HandleRight || conns[0].TargetHandle != board.HandleLeft {
		t.Errorf("handles = %q/%q", conns[0].SourceHandle, conns[0].TargetHandle)
	}
	if conns[0].ID == "" {
		t.Error("connection id not assigned")
	}
}

func TestParseGeneratesOmittedIDs(t *testing.T) {
	b, err := Parse([]byte("[[category]]\ntitle = \"Leads\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cats := b.Categories()
	if len(cats) != 1 || cats[0].ID == "" {
		t.Fatalf("categories = %+v, want one with generated id", cats)
	}
	if cats[0].Title != "Leads" {
		t.Errorf("title = %q", cats[0].Title)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed toml", "[[category\n"},
		{
			"duplicate id",
			"[[category]]\nid = \"a\"\n[[category]]\nid = \"a\"\n",
		},
		{
			"unsafe id",
			"[[category]]\nid = \"../etc\"\n",
		},
		{
			"unknown source",
			"[[category]]\nid = \"a\"\n[[connection]]\nsource = \"ghost\"\ntarget = \"a\"\n",
		},
		{
			"unknown target",
			"[[category]]\nid = \"a\"\n[[connection]]\nsource = \"a\"\ntarget = \"ghost\"\n",
		},
		{
			"unknown handle",
			"[[category]]\nid = \"a\"\n[[category]]\nid = \"b\"\n" +
				"[[connection]]\nsource = \"a\"\ntarget = \"b\"\nsource_handle = \"middle\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse succeeded, want error")
			}
			if code := errors.GetCode(err); code == "" {
				t.Errorf("error %v carries no code", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir() + "/nope.toml")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}
