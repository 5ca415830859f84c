// linkup is a terminal Link Up puzzle: connect pairs of matching tiles
// with paths of at most two turns before the countdown runs out.
//
// Usage:
//
//	linkup play              - Play a game
//	linkup menu              - Start menu with games and high scores
//	linkup list              - List games and built-in layouts
//	linkup scores [game]     - Show high scores
//	linkup serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set database path (default: ~/.linkup/scores.db)
//	--log-level <level> - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-linkup/internal/games/linkup"
	"github.com/vovakirdan/tui-linkup/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "linkup",
	Short: "Link Up - connect matching tiles in your terminal",
	Long: `Link Up is a terminal puzzle: select two tiles of the same color and
connect them with a path of at most two turns to clear them. Clear the
board before the countdown runs out.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu with games and high scores
  list     - Show games and built-in layouts
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  linkup play
  linkup play --size 6 --difficulty hard
  linkup play --layout corners
  linkup serve --ssh :2222
  linkup scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.linkup/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// openStore opens the scores database, or returns nil so the game can
// still be played without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
