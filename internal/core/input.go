package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - shift block left
	ActionRight            // D, Right arrow - shift block right
	ActionDown             // S, Down arrow - nudge block down
	ActionRotateCW         // W, Up arrow, X - rotate clockwise
	ActionRotateCCW        // Z - rotate anticlockwise
	ActionHold             // C, Shift+Tab - hold current block
	ActionUp               // menu only
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHold:
		return "Hold"
	case ActionUp:
		return "Up"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one frame.
// Actions keep their arrival order so a game can replay them one at a time;
// pressing a key twice between frames yields two entries.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.actions {
		if x == a {
			return true
		}
	}
	return false
}

// Actions returns the frame's actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of actions in the frame.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{actions: make([]Action, len(f.actions))}
	copy(clone.actions, f.actions)
	return clone
}
