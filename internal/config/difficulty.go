package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// presetSpeeds holds the fall periods and threshold of each accelerating preset.
var presetSpeeds = map[DifficultyPreset]struct {
	baseMs, fastMs, threshold int
}{
	DifficultyEasy:   {baseMs: 700, fastMs: 400, threshold: 1500},
	DifficultyNormal: {baseMs: 500, fastMs: 250, threshold: 1000},
	DifficultyHard:   {baseMs: 300, fastMs: 150, threshold: 500},
}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// IsFixedPreset returns true if the preset disables acceleration.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	if IsFixedPreset(p) {
		return "no speed-up"
	}
	s, ok := presetSpeeds[p]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%dms, %dms from %d points", s.baseMs, s.fastMs, s.threshold)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Fixed keeps the configured base period and turns acceleration off.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}

	s, ok := presetSpeeds[preset]
	if !ok {
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.Threshold = s.threshold
	cfg.Timing.BaseTickMs = s.baseMs
	cfg.Timing.FastTickMs = s.fastMs
}
