package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// GameStateType represents the current round state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Frame        uint64
	Score        int
	HighScore    int
	Lines        int
	Blocks       int
	SettledCells int
	Current      engine.Block
	Next         engine.Shape
	Hold         engine.Shape
	TickInterval time.Duration
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.state.GameEnd:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Frame:        g.frames,
		Score:        g.state.Score,
		HighScore:    g.state.HighScore,
		Lines:        g.state.Lines,
		Blocks:       g.state.Blocks,
		SettledCells: g.state.SettledCount(),
		TickInterval: g.state.TickInterval,
		State:        state,
	}
	if g.state.Current != nil {
		snap.Current = *g.state.Current
	}
	if g.state.Next != nil {
		snap.Next = engine.Identify(*g.state.Next)
	}
	if g.state.Hold != nil {
		snap.Hold = engine.Identify(*g.state.Hold)
	}
	return snap
}
