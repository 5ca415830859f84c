// Package config provides YAML-based game configuration loading and
// difficulty presets for Link Up.
package config

import (
	"fmt"
	"strings"
)

// LinkupConfig contains all configuration for the Link Up game.
type LinkupConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timer      TimerConfig      `yaml:"timer"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// BoardConfig defines the board sizes offered by the size selector.
type BoardConfig struct {
	DefaultSize int `yaml:"default_size"`
	MinSize     int `yaml:"min_size"`
	MaxSize     int `yaml:"max_size"`
	SizeStep    int `yaml:"size_step"`
}

// TimerConfig defines the countdown.
type TimerConfig struct {
	TimeLimit int `yaml:"time_limit"` // Seconds
}

// GameplayConfig defines optional gameplay aids.
type GameplayConfig struct {
	Hints bool `yaml:"hints"`
}

// DisplayConfig defines presentation-only parameters.
type DisplayConfig struct {
	PathFlashMs int `yaml:"path_flash_ms"`
}

// Limits applied by Validate.
const (
	minBoardSize = 2
	maxBoardSize = 16
)

// Validate normalizes out-of-range values in place.
// A zero-valued section falls back to the defaults.
func (c *LinkupConfig) Validate() {
	def := DefaultLinkupConfig()

	if c.Board.MinSize < minBoardSize || c.Board.MinSize > maxBoardSize {
		c.Board.MinSize = def.Board.MinSize
	}
	if c.Board.MaxSize < c.Board.MinSize || c.Board.MaxSize > maxBoardSize {
		c.Board.MaxSize = max(c.Board.MinSize, min(def.Board.MaxSize, maxBoardSize))
	}
	if c.Board.SizeStep <= 0 {
		c.Board.SizeStep = def.Board.SizeStep
	}
	if c.Board.DefaultSize <= 0 {
		c.Board.DefaultSize = def.Board.DefaultSize
	}
	c.Board.DefaultSize = min(max(c.Board.DefaultSize, c.Board.MinSize), c.Board.MaxSize)

	if c.Timer.TimeLimit <= 0 {
		c.Timer.TimeLimit = def.Timer.TimeLimit
	}
	if c.Display.PathFlashMs < 0 {
		c.Display.PathFlashMs = 0
	}
	if c.Difficulty != "" {
		if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
			c.Difficulty = DifficultyNormal
		}
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a user-supplied name into a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// TimeLimitForPreset returns the countdown length in seconds for a preset.
func TimeLimitForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 60
	case DifficultyHard:
		return 20
	default:
		return 30
	}
}
