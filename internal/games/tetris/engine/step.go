package engine

// handler computes the next state for one event kind.
type handler func(e *Engine, s State) State

// handlers is the event dispatch table.
var handlers = map[Event]handler{
	EventLeft:                func(e *Engine, s State) State { return e.translate(s, Left) },
	EventRight:               func(e *Engine, s State) State { return e.translate(s, Right) },
	EventDown:                func(e *Engine, s State) State { return e.translate(s, Down) },
	EventRotateClockwise:     func(e *Engine, s State) State { return e.rotate(s, Clockwise) },
	EventRotateAntiClockwise: func(e *Engine, s State) State { return e.rotate(s, AntiClockwise) },
	EventHold:                (*Engine).hold,
	EventTick:                (*Engine).tick,
	EventRestart:             (*Engine).restart,
}

// Step applies one event. Ended rounds ignore everything but Restart.
func (e *Engine) Step(s State, ev Event) State {
	if s.GameEnd && ev != EventRestart {
		return s
	}
	h, ok := handlers[ev]
	if !ok {
		return s
	}
	return h(e, s)
}

// translate moves the current block one cell if the move is legal.
func (e *Engine) translate(s State, dir Direction) State {
	if s.Current == nil {
		return s
	}
	if !CanMove(s.Current.Cells(), dir, s.Settled, e.params.Width, e.params.Height) {
		return s
	}
	s.Current = blockPtr(s.Current.Translate(dir))
	return s
}

// rotate turns the current block if the rotated cells are legal.
func (e *Engine) rotate(s State, r Rotation) State {
	if s.Current == nil {
		return s
	}
	rotated, ok := TryRotate(*s.Current, r, s.Settled, e.params.Width, e.params.Height)
	if !ok {
		return s
	}
	s.Current = blockPtr(rotated)
	return s
}

// hold swaps the current block with the held one and refills current from next.
// The hold is rejected if the block that ends up falling would overlap settled cells.
func (e *Engine) hold(s State) State {
	if s.Current == nil {
		return s
	}
	current, held := HoldCurrentBlock(s.Current, s.Hold)
	next := s.Next
	if current == nil {
		current, next = GenerateBlock(s.Next, e.picker)
	}
	if !CanMove(current.Cells(), Stay, s.Settled, e.params.Width, e.params.Height) {
		return s
	}
	s.Current, s.Hold, s.Next = current, held, next
	return s
}

// tick is the gravity step: clear, re-time, check for the end, then land or fall.
func (e *Engine) tick(s State) State {
	settled, score, cleared := ClearFullRows(s.Settled, s.Score, e.params)
	if cleared > 0 {
		s.Settled = settled
		s.Score = score
		s.Lines += cleared
	}

	s.TickInterval = e.params.TickInterval(s.Score)

	if topRowReached(s.Settled) {
		return end(s)
	}

	if !HasLanded(s.Current, s.Settled, e.params) {
		s.Current = blockPtr(s.Current.Translate(Down))
		return s
	}

	if s.Current != nil {
		s.Settled = commit(s.Settled, *s.Current)
		s.Blocks++
	}
	s.Current, s.Next = GenerateBlock(s.Next, e.picker)

	// A spawn into occupied cells would break the no-overlap invariant.
	if WouldCollide(s.Current.Cells(), Stay, s.Settled) {
		return end(s)
	}
	return s
}

// restart replaces an ended round with a fresh one, keeping the session high score.
func (e *Engine) restart(s State) State {
	if !s.GameEnd {
		return s
	}
	return e.NewState(max(s.HighScore, s.Score))
}

// end freezes the board and captures the high score.
func end(s State) State {
	s.GameEnd = true
	s.HighScore = max(s.HighScore, s.Score)
	return s
}

// topRowReached reports whether any settled cell sits on row 0.
func topRowReached(settled []Group) bool {
	for _, g := range settled {
		for _, c := range g {
			if c.Y == 0 {
				return true
			}
		}
	}
	return false
}
