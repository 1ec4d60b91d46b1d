package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Menu entries, top to bottom.
const (
	menuPlay = iota
	menuDifficulty
	menuScores
	menuQuit
	menuItemCount
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the session's start menu.
type MenuModel struct {
	cursor         int
	difficulty     snake.Difficulty
	best           int
	width          int
	height         int
	keyMapper      *KeyMapper
	quitting       bool
	play           bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model. The best score is read once from store.
func NewMenuModel(store *storage.Store, difficulty snake.Difficulty, width, height int) MenuModel {
	if !difficulty.Valid() {
		difficulty = snake.Medium
	}
	best := 0
	if store != nil {
		if v, err := store.Get(storage.HighScoreKey); err == nil {
			best = v
		}
	}
	return MenuModel{
		difficulty: difficulty,
		best:       best,
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < menuItemCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == menuDifficulty {
			m.cycleDifficulty(-1)
		}

	case MenuActionRight:
		if m.cursor == menuDifficulty {
			m.cycleDifficulty(1)
		}

	case MenuActionSelect:
		switch m.cursor {
		case menuPlay:
			m.play = true
		case menuDifficulty:
			m.cycleDifficulty(1)
		case menuScores:
			m.openScoreboard = true
		case menuQuit:
			m.quitting = true
			return m, tea.Quit
		}

	case MenuActionBack:
		m.cursor = menuQuit

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

func (m *MenuModel) cycleDifficulty(step int) {
	n := len(snake.Difficulties)
	m.difficulty = snake.Difficulties[(int(m.difficulty)+step+n)%n]
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
	b.WriteString("\n\n")

	items := [menuItemCount]string{
		menuPlay:       "Play",
		menuDifficulty: fmt.Sprintf("Speed: < %s >", m.difficulty),
		menuScores:     "High Scores",
		menuQuit:       "Quit",
	}
	for i, item := range items {
		line := "  " + item
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Speed  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Play returns true once the user chose to start a game.
func (m MenuModel) Play() bool {
	return m.play
}

// Difficulty returns the selected speed.
func (m MenuModel) Difficulty() snake.Difficulty {
	return m.difficulty
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
