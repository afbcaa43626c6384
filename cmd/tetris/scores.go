package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the best rounds for a game mode",
	Long: `Display the top 10 rounds for a game mode (default "tetris").

Examples:
  tetris scores
  tetris scores tetris_fixed
  tetris scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("Cleared rounds for %s.\n", game.Title())
		return
	}

	rounds, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetris play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-6s  %s\n", "Rank", "Score", "Lines", "Blocks", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "-----", "------", "----", "----")
	for i, r := range rounds {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-6s  %s\n",
			i+1, r.Score, r.Lines, r.Blocks, r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Rounds: %d  |  Avg: %.0f  |  Lines: %d  |  Played: %s\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines, stats.PlayTime.Round(time.Second))
	}
}
