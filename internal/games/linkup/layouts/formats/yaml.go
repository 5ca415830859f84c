// Package formats provides layout file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLayout represents the YAML structure for a layout file.
type YAMLLayout struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Tiles    []string          `yaml:"tiles"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Layout represents a parsed layout ready for use.
type Layout struct {
	ID       string
	Name     string
	Tiles    []string // One string per interior row; color chars or '.'
	Metadata map[string]string
}

// ParseYAML parses a YAML layout file.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Layout{}, errors.New("layout id is required")
	}
	if len(yl.Tiles) == 0 {
		return Layout{}, fmt.Errorf("layout %s has no tiles", yl.ID)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	tiles := make([]string, len(yl.Tiles))
	for i, row := range yl.Tiles {
		tiles[i] = strings.TrimRight(row, " ")
	}

	return Layout{
		ID:       yl.ID,
		Name:     name,
		Tiles:    tiles,
		Metadata: yl.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
