// Package board provides the Link Up board model: the bordered tile grid,
// the bounded-turn connectivity solver and the board generator.
// This package is UI-agnostic and deterministic for a given RNG.
package board

import "strings"

// Color identifies a tile color from the fixed palette.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorCount // Sentinel value for iteration
)

// PaletteSize is the number of distinct tile colors.
const PaletteSize = int(ColorCount)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII layouts.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorMagenta:
		return 'M'
	case ColorCyan:
		return 'C'
	default:
		return '?'
	}
}

// ParseColor converts a color name or character to a Color.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "magenta", "m":
		return ColorMagenta, true
	case "cyan", "c":
		return ColorCyan, true
	default:
		return ColorRed, false
	}
}

// AllColors returns the palette in generation order.
func AllColors() []Color {
	return []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorMagenta, ColorCyan}
}

// Cell is a single grid position.
type Cell struct {
	Occupied bool  // Whether the cell holds a visible tile
	Color    Color // Valid only when Occupied is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Tile returns an occupied cell with the given color.
func Tile(c Color) Cell {
	return Cell{Occupied: true, Color: c}
}
