package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in tetris configuration.
// It matches defaults/tetris.yaml and is used when that file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 20,
		},
		Timing: TetrisTiming{
			BaseTickMs:     500,
			FastTickMs:     250,
			RestartDelayMs: 3000,
		},
		Scoring: TetrisScoring{
			PointsPerRow: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:   true,
			Threshold: 1000,
		},
		Source: sourceEmbedded,
	}
}
