// Package layouts loads hand-authored Link Up boards.
// This package depends on board but board does not depend on layouts.
package layouts

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-linkup/internal/games/linkup/board"
	"github.com/vovakirdan/tui-linkup/internal/games/linkup/layouts/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Layout represents a complete board definition.
type Layout struct {
	ID       string
	Name     string
	Tiles    []string
	Metadata map[string]string
	FilePath string
}

// ToGrid creates a Grid from the layout.
func (l *Layout) ToGrid() (*board.Grid, error) {
	return board.FromRows(l.Tiles)
}

// Validate checks that every color appears an even number of times,
// otherwise the board can never be cleared.
func (l *Layout) Validate() error {
	g, err := l.ToGrid()
	if err != nil {
		return err
	}
	if g.OccupiedCount() == 0 {
		return fmt.Errorf("layout %s is empty", l.ID)
	}
	for _, color := range board.AllColors() {
		if n := g.CountByColor()[color]; n%2 != 0 {
			return fmt.Errorf("layout %s has %d %s tiles, want an even count", l.ID, n, color)
		}
	}
	return nil
}

// Loader handles loading layouts from a file tree.
type Loader struct {
	fsys fs.FS
	Root string
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), Root: root}
}

// NewFSLoader creates a loader over an arbitrary file system.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Builtin returns a loader over the layouts shipped with the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	return &Loader{fsys: sub, Root: "builtin"}
}

// LoadAll recursively scans and loads all layout files.
// Invalid files are skipped. Returns layouts sorted by ID.
func (l *Loader) LoadAll() ([]Layout, error) {
	var out []Layout

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			return nil
		}
		layout, err := parse(data, path.Ext(p), filepath.Join(l.Root, filepath.FromSlash(p)))
		if err != nil {
			return nil
		}

		out = append(out, layout)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking layouts %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// LoadByID loads a specific layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}

	for _, layout := range all {
		if layout.ID == id {
			return layout, nil
		}
	}

	return Layout{}, fmt.Errorf("layout not found: %s", id)
}

// ListIDs returns all layout IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(all))
	for i, layout := range all {
		ids[i] = layout.ID
	}
	return ids, nil
}

// LoadFile loads and validates a single layout file from disk.
func LoadFile(p string) (Layout, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return parse(data, filepath.Ext(p), p)
}

func parse(data []byte, ext, filePath string) (Layout, error) {
	var parsed formats.Layout
	var err error

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		parsed, err = formats.ParseYAML(data)
	default:
		return Layout{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", filePath, err)
	}

	layout := Layout{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Tiles:    parsed.Tiles,
		Metadata: parsed.Metadata,
		FilePath: filePath,
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
