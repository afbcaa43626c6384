package engine

// Event is an input to the state machine.
type Event int

const (
	EventLeft Event = iota
	EventRight
	EventDown
	EventRotateClockwise
	EventRotateAntiClockwise
	EventHold
	EventTick
	EventRestart
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventLeft:
		return "Left"
	case EventRight:
		return "Right"
	case EventDown:
		return "Down"
	case EventRotateClockwise:
		return "RotateClockwise"
	case EventRotateAntiClockwise:
		return "RotateAntiClockwise"
	case EventHold:
		return "Hold"
	case EventTick:
		return "Tick"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}
