// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris platform.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// TetrisConfig contains all configuration for a tetris session.
type TetrisConfig struct {
	Board      TetrisBoard      `yaml:"board"`
	Timing     TetrisTiming     `yaml:"timing"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`

	// Source records where the config was loaded from ("embedded" for the built-in default).
	Source string `yaml:"-"`
}

// TetrisBoard defines the well dimensions in cells.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisTiming defines fall periods and the game-over pause.
type TetrisTiming struct {
	BaseTickMs     int `yaml:"base_tick_ms"`
	FastTickMs     int `yaml:"fast_tick_ms"`
	RestartDelayMs int `yaml:"restart_delay_ms"`
}

// TetrisScoring defines how cleared rows are scored.
type TetrisScoring struct {
	PointsPerRow int `yaml:"points_per_row"`
}

// DifficultyConfig defines the speed-up rule.
type DifficultyConfig struct {
	Enabled   bool `yaml:"enabled"`   // Switch to the fast period at Threshold
	Threshold int  `yaml:"threshold"` // Score at which the fast period applies
}

// Params converts the config into engine parameters.
// With difficulty disabled the fast period equals the base one.
func (c TetrisConfig) Params() engine.Params {
	base := time.Duration(c.Timing.BaseTickMs) * time.Millisecond
	fast := time.Duration(c.Timing.FastTickMs) * time.Millisecond
	if !c.Difficulty.Enabled {
		fast = base
	}
	return engine.Params{
		Width:               c.Board.Width,
		Height:              c.Board.Height,
		BaseTickInterval:    base,
		FastTickInterval:    fast,
		DifficultyThreshold: c.Difficulty.Threshold,
		PointsPerRow:        c.Scoring.PointsPerRow,
		RestartDelay:        time.Duration(c.Timing.RestartDelayMs) * time.Millisecond,
	}
}

// Validate reports whether the config describes a playable board.
func (c TetrisConfig) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// YAML returns the config encoded as YAML.
func (c TetrisConfig) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
