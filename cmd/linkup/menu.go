package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-linkup/internal/core"
	"github.com/vovakirdan/tui-linkup/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu with games and high scores",
	Long: `Opens the same menu SSH players see: play a game, browse the
high scores, and come back to the menu when done.

Controls:
  Up/Down or W/S - Navigate
  Enter/Space    - Select
  B/Esc          - Back to the menu (from the size selector or scores)
  Q/Ctrl+C       - Quit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
