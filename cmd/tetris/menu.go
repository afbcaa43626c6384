package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and difficulty menu",
	Long: `Start in interactive menu mode.

Pick a mode with Up/Down and a difficulty with Left/Right, then press Enter.
Quitting a game returns to the menu.

Controls:
  Up/Down/j/k     - Choose mode
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Play
  Tab             - High scores
  Q/Esc           - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer := openLogger()
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config
		preset = menuResult.Preset

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		if err := prepareGame(logger, preset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if err := playGame(menuResult.GameID, store, logger, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
	}
}
