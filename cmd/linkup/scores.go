package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-linkup/internal/games/linkup"
	"github.com/vovakirdan/tui-linkup/internal/platform/tui"
	"github.com/vovakirdan/tui-linkup/internal/registry"
	"github.com/vovakirdan/tui-linkup/internal/storage"
)

var (
	flagLimit       int
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the best finished games and overall stats.

Examples:
  linkup scores
  linkup scores --limit 20
  linkup scores --interactive
  linkup scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores for the game")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := linkup.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'linkup list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return
	}

	if flagInteractive {
		width, height := terminalSize()
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'linkup play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Result", "Board", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "------", "-----", "----", "----")

	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "cleared"
		}
		boardSize := "-"
		if entry.Rows > 0 && entry.Cols > 0 {
			boardSize = fmt.Sprintf("%dx%d", entry.Rows, entry.Cols)
		}
		fmt.Printf("  %-4d  %-6d  %-8s  %-6s  %-6s  %s\n",
			i+1, entry.Score, result, boardSize,
			fmt.Sprintf("%ds", entry.ElapsedSecs),
			entry.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Games: %d  Cleared: %d (%.0f%%)  Best: %d  Average: %.1f\n",
		stats.GamesCount, stats.Wins, stats.WinRate()*100, stats.HighScore, stats.AvgScore)
	if stats.FastestWin > 0 {
		fmt.Printf("Fastest clear: %ds\n", stats.FastestWin)
	}
}
