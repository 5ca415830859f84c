package config

import (
	_ "embed"
)

//go:embed defaults/linkup.yaml
var defaultLinkupYAML []byte

// DefaultLinkupConfig returns the default Link Up configuration.
func DefaultLinkupConfig() LinkupConfig {
	return LinkupConfig{
		Board: BoardConfig{
			DefaultSize: 5,
			MinSize:     4,
			MaxSize:     12,
			SizeStep:    2,
		},
		Timer: TimerConfig{
			TimeLimit: 30,
		},
		Gameplay: GameplayConfig{
			Hints: true,
		},
		Display: DisplayConfig{
			PathFlashMs: 400,
		},
		Difficulty: DifficultyNormal,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "linkup":
		return defaultLinkupYAML
	default:
		return nil
	}
}
