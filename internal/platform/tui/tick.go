// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and screen flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the schedule that produced it.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
