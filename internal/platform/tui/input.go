package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Controller is the part of the engine driven by player input.
type Controller interface {
	Start()
	SetHeading(d snake.Direction) bool
	TogglePause()
	SetDifficulty(level snake.Difficulty) error
	End()
}

// InputAdapter turns keyboard and mouse events into engine operations.
// A mouse drag acts as a swipe: press marks the start, release picks the
// direction along the dominant axis.
type InputAdapter struct {
	ctrl Controller
	keys GameKeyMap

	dragging bool
	startX   int
	startY   int
}

// NewInputAdapter creates an adapter driving ctrl.
func NewInputAdapter(ctrl Controller, keys GameKeyMap) *InputAdapter {
	return &InputAdapter{ctrl: ctrl, keys: keys}
}

// HandleKey applies a game key. It reports whether the key was consumed.
func (a *InputAdapter) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, a.keys.Up):
		a.ctrl.SetHeading(snake.DirUp)
	case key.Matches(msg, a.keys.Down):
		a.ctrl.SetHeading(snake.DirDown)
	case key.Matches(msg, a.keys.Left):
		a.ctrl.SetHeading(snake.DirLeft)
	case key.Matches(msg, a.keys.Right):
		a.ctrl.SetHeading(snake.DirRight)
	case key.Matches(msg, a.keys.Pause):
		a.ctrl.TogglePause()
	case key.Matches(msg, a.keys.Start):
		a.ctrl.Start()
	case key.Matches(msg, a.keys.Easy):
		a.ctrl.SetDifficulty(snake.Easy) //nolint:errcheck // constant level
	case key.Matches(msg, a.keys.Medium):
		a.ctrl.SetDifficulty(snake.Medium) //nolint:errcheck // constant level
	case key.Matches(msg, a.keys.Hard):
		a.ctrl.SetDifficulty(snake.Hard) //nolint:errcheck // constant level
	case key.Matches(msg, a.keys.End):
		a.ctrl.End()
	default:
		return false
	}
	return true
}

// HandleMouse tracks left-button drags and steers on release.
// A release without movement is a tap and does nothing.
func (a *InputAdapter) HandleMouse(msg tea.MouseMsg) bool {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		a.dragging = true
		a.startX, a.startY = msg.X, msg.Y
		return true

	case tea.MouseActionRelease:
		if !a.dragging {
			return false
		}
		a.dragging = false
		d := SwipeDirection(msg.X-a.startX, msg.Y-a.startY)
		if d == snake.DirNone {
			return false
		}
		a.ctrl.SetHeading(d)
		return true
	}
	return false
}

// SwipeDirection maps a drag of dx columns and dy rows to a heading.
// A tile is two columns wide, so dx is halved before the axes are compared.
// Ties go to the horizontal axis; no movement yields DirNone.
func SwipeDirection(dx, dy int) snake.Direction {
	if dx == 0 && dy == 0 {
		return snake.DirNone
	}
	if core.Abs(dx) >= 2*core.Abs(dy) {
		if dx > 0 {
			return snake.DirRight
		}
		return snake.DirLeft
	}
	if dy > 0 {
		return snake.DirDown
	}
	return snake.DirUp
}
