package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-linkup/internal/games/linkup/layouts"
	"github.com/vovakirdan/tui-linkup/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and built-in layouts",
	Long:  `Shows the registered games and the layouts shipped with linkup.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	all, err := layouts.Builtin().LoadAll()
	if err != nil {
		log.Warn("could not load built-in layouts", "error", err)
	}
	if len(all) > 0 {
		fmt.Println()
		fmt.Println("Built-in layouts:")
		fmt.Println()

		maxIDLen = 2
		for _, l := range all {
			maxIDLen = max(maxIDLen, len(l.ID))
		}

		fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Tiles", "Name")
		fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "-----", "----")
		for _, l := range all {
			tiles := 0
			if g, gridErr := l.ToGrid(); gridErr == nil {
				tiles = g.OccupiedCount()
			}
			fmt.Printf("  %-*s  %-5d  %s\n", maxIDLen, l.ID, tiles, l.Name)
		}
	}

	fmt.Println()
	fmt.Println("Run 'linkup play' to play, or 'linkup play --layout <id>' for a fixed board.")
}
