// Package tetris adapts the falling-block engine to the platform: it turns
// per-frame input into an ordered event queue, drives the fall timer and
// restarts rounds after game over.
package tetris

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode selects the speed rule.
type Mode int

const (
	ModeClassic Mode = iota // Speeds up at the difficulty threshold
	ModeFixed               // Base speed for the whole round
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI or the menu
var difficultyPreset config.DifficultyPreset

// logger receives config fallbacks; silent until SetLogger is called
var logger = log.New(io.Discard)

// SetLogger sets the logger used by every game created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// actionEvents maps platform actions to engine events.
var actionEvents = map[core.Action]engine.Event{
	core.ActionLeft:      engine.EventLeft,
	core.ActionRight:     engine.EventRight,
	core.ActionDown:      engine.EventDown,
	core.ActionRotateCW:  engine.EventRotateClockwise,
	core.ActionRotateCCW: engine.EventRotateAntiClockwise,
	core.ActionHold:      engine.EventHold,
	core.ActionRestart:   engine.EventRestart,
}

// Game implements registry.Game around engine.Engine.
type Game struct {
	mode Mode

	cfg    config.TetrisConfig
	eng    *engine.Engine
	state  engine.State
	queue  []engine.Event
	fall   Scheduler
	frame  time.Duration
	frames uint64

	paused   bool
	elapsed  time.Duration // Round time, pauses excluded
	endedFor time.Duration // Time since the round ended

	err error // Why the last Reset fell back to the built-in config
}

// New creates a classic game that speeds up with score.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewFixed creates a game that never speeds up.
func NewFixed() *Game {
	return &Game{mode: ModeFixed}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_fixed", func() registry.Game {
		return NewFixed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeFixed {
		return "tetris_fixed"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFixed {
		return "Tetris (Fixed Speed)"
	}
	return "Tetris"
}

// Reset loads the config and starts a fresh round.
// The session high score survives resets of the same Game.
// A config that cannot be loaded or is rejected by the engine is logged and
// replaced by the built-in one; Err reports it until the next Reset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.err = nil

	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		logger.Warn("config not loaded, using built-in", "path", configPath, "err", err)
		g.err = err
		cfg = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeFixed {
		config.ApplyTetrisPreset(&cfg, config.DifficultyFixed)
	}

	eng, err := newEngine(cfg, runtime.Seed)
	if err != nil {
		logger.Warn("config rejected, using built-in", "source", cfg.Source, "err", err)
		g.err = errors.Join(g.err, err)
		cfg = config.DefaultTetrisConfig()
		if eng, err = newEngine(cfg, runtime.Seed); err != nil {
			panic(fmt.Sprintf("tetris: built-in config rejected: %v", err))
		}
	}

	highScore := 0
	if g.eng != nil {
		highScore = max(g.state.HighScore, g.state.Score)
	}

	g.cfg = cfg
	g.eng = eng
	g.state = eng.NewState(highScore)
	g.queue = g.queue[:0]
	g.fall = NewScheduler(g.state.TickInterval)
	g.frame = runtime.FrameDuration()
	g.frames = 0
	g.paused = false
	g.elapsed = 0
	g.endedFor = 0
}

// Err returns the error that made the last Reset fall back to the built-in
// config, or nil.
func (g *Game) Err() error {
	return g.err
}

// newEngine builds an engine for cfg with a picker seeded from seed.
func newEngine(cfg config.TetrisConfig, seed int64) (*engine.Engine, error) {
	params := cfg.Params()
	picker := engine.NewRandomPicker(rand.New(rand.NewSource(seed)), params.Width)
	return engine.New(params, picker)
}

// Step advances the game by one platform frame.
//
// The frame's actions are queued in arrival order, followed by a Tick if the fall
// timer fired, and the queue is drained through the engine one event at a time.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frames++

	if input.Has(core.ActionPause) && !g.state.GameEnd {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range input.Actions() {
		if ev, ok := actionEvents[a]; ok {
			g.enqueue(ev)
		}
	}

	if g.state.GameEnd {
		g.endedFor += g.frame
		if g.endedFor >= g.eng.Params().RestartDelay {
			g.enqueue(engine.EventRestart)
		}
	} else {
		g.elapsed += g.frame
		if g.fall.Advance(g.frame) {
			g.enqueue(engine.EventTick)
		}
	}

	g.drain()
	return core.StepResult{State: g.State()}
}

func (g *Game) enqueue(ev engine.Event) {
	g.queue = append(g.queue, ev)
}

// drain applies queued events in order and reacts to what each one changed.
func (g *Game) drain() {
	for _, ev := range g.queue {
		prev := g.state
		g.state = g.eng.Step(g.state, ev)

		switch {
		case !prev.GameEnd && g.state.GameEnd:
			g.endedFor = 0
		case prev.GameEnd && !g.state.GameEnd:
			// New round: time and the fall period start over.
			g.elapsed = 0
			g.endedFor = 0
			g.fall.Rearm(g.state.TickInterval)
			g.fall.Restart()
		default:
			g.fall.Rearm(g.state.TickInterval)
		}
	}
	g.queue = g.queue[:0]
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.state.Score,
		HighScore: g.state.HighScore,
		Lines:     g.state.Lines,
		Blocks:    g.state.Blocks,
		GameOver:  g.state.GameEnd,
		Paused:    g.paused,
		Elapsed:   g.elapsed,
	}
}

// Board returns the engine state for read-only use by views and tests.
func (g *Game) Board() engine.State {
	return g.state
}

// Params returns the rule set of the running session.
func (g *Game) Params() engine.Params {
	return g.eng.Params()
}

// restartIn returns how long until an ended round restarts.
func (g *Game) restartIn() time.Duration {
	return max(g.eng.Params().RestartDelay-g.endedFor, 0)
}
