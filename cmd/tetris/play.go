package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a round",
	Long: `Start playing. The game defaults to "tetris"; "tetris_fixed" never speeds up.

Controls:
  Left/Right, A/D   - Move
  Down, S           - Move down one row
  Up, W, X          - Rotate clockwise
  Z                 - Rotate anticlockwise
  C                 - Hold
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow fall, speeds up late
  normal - Default speeds
  hard   - Fast fall, speeds up early
  fixed  - Never speeds up

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play tetris_fixed
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that pick the rule set.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available games.")
		os.Exit(1)
	}

	// Without --difficulty the config file's timing is used as is
	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		p, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		preset = p
	}

	logger, closer := openLogger()
	defer closer.Close()

	if err := prepareGame(logger, preset); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	runErr := playGame(gameID, store, logger, runtimeConfig())
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closer.Close()
		os.Exit(1)
	}
}

// prepareGame validates the config up front and hands the CLI choices to the game.
// An empty preset keeps the config's own timing.
func prepareGame(logger *log.Logger, preset config.DifficultyPreset) error {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", cfg.Source, "difficulty", preset)

	tetris.SetLogger(logger)
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(string(preset))
	return nil
}

// playGame creates the game and runs it until the player quits.
func playGame(gameID string, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	logger.Info("session started", "game", gameID, "fps", cfg.TickRate)
	defer logger.Info("session ended", "game", gameID)

	return tui.Run(game, store, logger, cfg)
}
