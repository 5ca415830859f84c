package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-linkup/internal/config"
	"github.com/vovakirdan/tui-linkup/internal/core"
	"github.com/vovakirdan/tui-linkup/internal/games/linkup"
	"github.com/vovakirdan/tui-linkup/internal/platform/tui"
	"github.com/vovakirdan/tui-linkup/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSize       int
	flagTime       int
	flagLayout     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Link Up",
	Long: `Start a game of Link Up.

The game opens on the size selector; press Enter to start. Select two
tiles of the same color that can be joined by a path with at most two
turns to clear them.

Controls:
  Arrows/WASD/jkl - Move cursor (change size before starting)
  Enter/Space     - Select tile (start game)
  Mouse click     - Select tile
  H               - Show a hint
  B/Esc           - Give up, back to the size selector
  R               - Restart after game over
  Ctrl+S          - Save a screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - 60 second countdown
  normal - 30 second countdown
  hard   - 20 second countdown, no hints

Layouts:
  --layout takes a YAML file or the ID of a built-in layout
  (see 'linkup list').

Examples:
  linkup play
  linkup play --size 8 --time 300
  linkup play --difficulty hard
  linkup play --layout corners
  linkup play --config ./my-linkup.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Initial board size (0 = from config)")
	playCmd.Flags().IntVar(&flagTime, "time", 0, "Countdown in seconds (0 = from config)")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Layout YAML file or built-in layout ID")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagDifficulty != "" {
		if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Set options for the game before creation
	linkup.SetConfigPath(flagConfig)
	linkup.SetDifficultyPreset(flagDifficulty)
	linkup.SetBoardSize(flagSize)
	linkup.SetTimeLimit(flagTime)
	linkup.SetLayout(flagLayout)

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(linkup.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage if it cannot be opened
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
