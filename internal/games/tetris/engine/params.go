// Package engine implements the falling-block state machine: shapes, collision,
// rotation, row clearing, spawn/hold and the tick orchestrator.
// It has no UI or timer dependencies; every transition returns a new State.
package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidParams is returned when a parameter set cannot describe a playable board.
var ErrInvalidParams = errors.New("engine: invalid params")

// Params is the fixed rule set of a session.
type Params struct {
	Width  int // Grid columns
	Height int // Grid rows

	BaseTickInterval time.Duration // Fall period below the difficulty threshold
	FastTickInterval time.Duration // Fall period once the threshold is reached

	DifficultyThreshold int // Score at which the fast interval kicks in
	PointsPerRow        int // Score per cleared row, no multi-row bonus

	RestartDelay time.Duration // How long an ended round stays on screen
}

// DefaultParams returns the classic 10x20 rule set.
func DefaultParams() Params {
	return Params{
		Width:               10,
		Height:              20,
		BaseTickInterval:    500 * time.Millisecond,
		FastTickInterval:    250 * time.Millisecond,
		DifficultyThreshold: 1000,
		PointsPerRow:        100,
		RestartDelay:        3 * time.Second,
	}
}

// Validate reports the first reason the params are unusable.
func (p Params) Validate() error {
	switch {
	case p.Width < 4:
		// Every shape needs up to 4 columns at spawn.
		return fmt.Errorf("%w: width %d < 4", ErrInvalidParams, p.Width)
	case p.Height < 2:
		return fmt.Errorf("%w: height %d < 2", ErrInvalidParams, p.Height)
	case p.BaseTickInterval <= 0:
		return fmt.Errorf("%w: base tick interval %v", ErrInvalidParams, p.BaseTickInterval)
	case p.FastTickInterval <= 0:
		return fmt.Errorf("%w: fast tick interval %v", ErrInvalidParams, p.FastTickInterval)
	case p.FastTickInterval > p.BaseTickInterval:
		return fmt.Errorf("%w: fast tick interval %v slower than base %v",
			ErrInvalidParams, p.FastTickInterval, p.BaseTickInterval)
	case p.DifficultyThreshold < 0:
		return fmt.Errorf("%w: negative difficulty threshold", ErrInvalidParams)
	case p.PointsPerRow < 0:
		return fmt.Errorf("%w: negative points per row", ErrInvalidParams)
	case p.RestartDelay < 0:
		return fmt.Errorf("%w: negative restart delay", ErrInvalidParams)
	}
	return nil
}

// TickInterval returns the fall period for a score.
// It is a step function with exactly two values.
func (p Params) TickInterval(score int) time.Duration {
	if score >= p.DifficultyThreshold {
		return p.FastTickInterval
	}
	return p.BaseTickInterval
}
