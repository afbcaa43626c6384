// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play [game]       - Play a round (tetris or tetris_fixed)
//	tetris menu              - Start menu to pick mode and difficulty
//	tetris list              - List available modes
//	tetris scores [game]     - Show the best rounds for a mode
//	tetris config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.tetris/scores.db)
//	--log-file <path>   - Set log file (default: ~/.tetris/tetris.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

const defaultGameID = "tetris"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string

	// Game flags shared by play, menu and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "TUI Tetris - stack falling blocks in your terminal",
	Long: `TUI Tetris is a terminal falling-block puzzle.

Available commands:
  play     - Play a round directly
  menu     - Interactive mode and difficulty picker
  list     - Show available game modes
  scores   - View the best rounds
  config   - Print the effective config

Examples:
  tetris play
  tetris play tetris_fixed --difficulty hard
  tetris menu
  tetris scores
  tetris config --config ./my-tetris.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.tetris/tetris.log", "Path to log file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
