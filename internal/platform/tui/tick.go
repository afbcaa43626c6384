// Package tui provides the Bubble Tea front end: the frame loop, key mapping,
// the start menu and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after a frame.
func tickCmd(frame time.Duration) tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
