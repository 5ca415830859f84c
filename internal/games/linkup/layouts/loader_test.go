package layouts_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-linkup/internal/games/linkup/board"
	"github.com/vovakirdan/tui-linkup/internal/games/linkup/layouts"
)

func TestLoaderLoadAll(t *testing.T) {
	loader := layouts.NewLoader("testdata")

	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// odd.yaml fails validation and notes.txt is not a layout.
	if len(all) != 2 {
		t.Fatalf("expected 2 layouts, got %d", len(all))
	}
	if all[0].ID != "pair" || all[1].ID != "square" {
		t.Errorf("layouts not sorted by ID: %s, %s", all[0].ID, all[1].ID)
	}
}

func TestLoadFile(t *testing.T) {
	layout, err := layouts.LoadFile(filepath.Join("testdata", "square.yml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if layout.Name != "Square" {
		t.Errorf("Name = %q, want %q", layout.Name, "Square")
	}

	g, err := layout.ToGrid()
	if err != nil {
		t.Fatalf("ToGrid failed: %v", err)
	}
	if g.Rows != 2 || g.Cols != 2 {
		t.Errorf("size = %dx%d, want 2x2", g.Rows, g.Cols)
	}
	if cell := g.Get(board.C(1, 2)); !cell.Occupied || cell.Color != board.ColorGreen {
		t.Errorf("cell (1,2) = %+v, want green tile", cell)
	}
}

func TestLoadFileRejectsOddColor(t *testing.T) {
	if _, err := layouts.LoadFile(filepath.Join("testdata", "odd.yaml")); err == nil {
		t.Error("expected validation error for odd color count")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := layouts.LoadFile(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"a/one.yaml": {Data: []byte("id: one\ntiles:\n  - \"GG\"\n")},
		"bad.yaml":   {Data: []byte("id: [unterminated\n")},
		"noid.yaml":  {Data: []byte("tiles:\n  - \"RR\"\n")},
	}

	loader := layouts.NewFSLoader(fsys)
	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != "one" {
		t.Fatalf("ids = %v, want [one]", ids)
	}

	layout, err := loader.LoadByID("one")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if layout.Name != "one" {
		t.Errorf("Name = %q, want name to default to id", layout.Name)
	}

	if _, err := loader.LoadByID("nope"); err == nil {
		t.Error("expected error for unknown layout")
	}
}

func TestBuiltinLayouts(t *testing.T) {
	all, err := layouts.Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 built-in layouts, got %d", len(all))
	}

	for _, layout := range all {
		g, err := layout.ToGrid()
		if err != nil {
			t.Errorf("%s: ToGrid failed: %v", layout.ID, err)
			continue
		}
		if _, _, ok := board.FindMove(g); !ok {
			t.Errorf("%s: built-in layout has no opening move\n%s", layout.ID, g)
		}
	}
}
