package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the config a round would start with, after the search order and the
difficulty preset are applied. The output is valid input for --config.

Search order:
  --config <path>, ~/.tetris/configs/tetris.yaml, ./configs/tetris.yaml, built-in

Examples:
  tetris config
  tetris config --difficulty hard > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addGameFlags(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.ApplyTetrisPreset(&cfg, preset)
	}

	out, err := cfg.YAML()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "# source: %s\n", cfg.Source)
	os.Stdout.Write(out)
}
