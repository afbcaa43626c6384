package engine

import "fmt"

// Engine sequences shapes, collision, rotation, clearing and spawn for one session.
// Step is synchronous; the picker is its only side effect.
type Engine struct {
	params Params
	picker ShapePicker
}

// New creates an engine. Invalid params fail here, never mid-game.
func New(p Params, picker ShapePicker) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if picker == nil {
		return nil, fmt.Errorf("%w: nil shape picker", ErrInvalidParams)
	}
	return &Engine{params: p, picker: picker}, nil
}

// Params returns the engine's rule set.
func (e *Engine) Params() Params {
	return e.params
}

// NewState returns a fresh round with current and next blocks spawned.
// highScore is carried in from earlier rounds of the session.
func (e *Engine) NewState(highScore int) State {
	current, next := GenerateBlock(nil, e.picker)
	return State{
		Current:      current,
		Next:         next,
		HighScore:    highScore,
		TickInterval: e.params.TickInterval(0),
	}
}
