// Package tui provides the Bubble Tea integration for the ambient toolkit.
// It owns the animation clock and the terminal loop, feeding per-frame
// deltas to the patterns and compositing their output onto the screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an animation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(fps int) tea.Cmd {
	if fps < 1 {
		fps = 1
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
