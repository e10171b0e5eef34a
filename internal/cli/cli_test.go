package cli

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/clueboard/pkg/errors"
)

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestRootCommand(t *testing.T) {
	root := testCLI().RootCommand()

	if root.Use != "clueboard" {
		t.Errorf("Use = %q", root.Use)
	}

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"serve", "export", "render", "browse", "classify", "attach", "cache", "completion"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing subcommand %q in %v", want, names)
		}
	}
}

func TestServeSeedFlag(t *testing.T) {
	// The seed flag is named --board; examples/board.toml documents it.
	serve, _, err := testCLI().RootCommand().Find([]string{"serve"})
	if err != nil {
		t.Fatal(err)
	}
	if serve.Flags().Lookup("board") == nil {
		t.Error("serve has no --board flag")
	}
}

func TestLoadBoard(t *testing.T) {
	dir := t.TempDir()

	manifestPath := filepath.Join(dir, "case.toml")
	if err := os.WriteFile(manifestPath, []byte("[[category]]\ntitle = \"Evidence\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := loadBoard(manifestPath)
	if err != nil {
		t.Fatalf("loadBoard(toml): %v", err)
	}
	if b.CategoryCount() != 1 {
		t.Errorf("categories = %d, want 1", b.CategoryCount())
	}

	workflowPath := filepath.Join(dir, "snapshot.json")
	snapshot := `{"categories":[{"id":"a","title":"A","position":{"x":0,"y":0},"clues":[]}],"connections":[]}`
	if err := os.WriteFile(workflowPath, []byte(snapshot), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err = loadBoard(workflowPath)
	if err != nil {
		t.Fatalf("loadBoard(json): %v", err)
	}
	if _, ok := b.Category("a"); !ok {
		t.Error("workflow category not restored")
	}

	_, err = loadBoard(filepath.Join(dir, "board.yaml"))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("loadBoard(yaml) code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnsupported)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")
	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/xdg-test/clueboard" {
		t.Errorf("cacheDir = %q", dir)
	}
}

func TestClassifyCommand(t *testing.T) {
	root := testCLI().RootCommand()
	root.SetArgs([]string{"classify", "clip.ogg", "photo.png", "hello"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("classify: %v", err)
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "case.toml")
	content := "[[category]]\nid = \"a\"\ntitle = \"Evidence\"\nclues = [\"Fingerprint\"]\n"
	if err := os.WriteFile(manifestPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.json")
	root := testCLI().RootCommand()
	root.SetArgs([]string{"export", manifestPath, "-o", out})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.Execute(); err != nil {
		t.Fatalf("export: %v", err)
	}

	restored, err := loadBoard(out)
	if err != nil {
		t.Fatalf("reload exported board: %v", err)
	}
	if restored.ClueCount() != 1 {
		t.Errorf("clues = %d, want 1", restored.ClueCount())
	}
}
