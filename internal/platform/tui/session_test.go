package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func newTestSession(store *storage.Store) SessionModel {
	return NewSessionModel(store, SessionConfig{
		TileCount:  20,
		Difficulty: snake.Medium,
		Intervals:  snake.DefaultIntervals(),
		Width:      80,
		Height:     30,
	})
}

func TestMenuCyclesDifficulty(t *testing.T) {
	m := NewMenuModel(nil, snake.Medium, 80, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if m.Difficulty() != snake.Hard {
		t.Errorf("Expected hard, got %s", m.Difficulty())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if m.Difficulty() != snake.Easy {
		t.Errorf("Expected wrap to easy, got %s", m.Difficulty())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(MenuModel)
	if m.Difficulty() != snake.Hard {
		t.Errorf("Expected wrap back to hard, got %s", m.Difficulty())
	}
	if !strings.Contains(m.View(), "Speed: < hard >") {
		t.Errorf("Menu should show the selected speed:\n%s", m.View())
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store := openStore(t)
	store.SetMax(storage.HighScoreKey, 230)

	m := NewMenuModel(store, snake.Easy, 80, 30)
	if !strings.Contains(m.View(), "Best: 230") {
		t.Errorf("Menu should show the stored best score:\n%s", m.View())
	}
}

func TestSessionPlayAndReturn(t *testing.T) {
	m := newTestSession(nil)

	// Pick hard, then play
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.screen != screenGame {
		t.Fatalf("Expected game screen, got %d", m.screen)
	}
	if m.game.Engine().Difficulty() != snake.Hard {
		t.Errorf("Game should use the menu speed, got %s", m.game.Engine().Difficulty())
	}
	if !strings.Contains(m.View(), "Enter: start") {
		t.Error("New game should start idle")
	}

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game.Engine().Status() != snake.StatusRunning || cmd == nil {
		t.Error("Enter should start the game and its tick loop")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("Expected menu after esc, got %d", m.screen)
	}
	if m.menu.Difficulty() != snake.Hard {
		t.Errorf("Menu should keep the last speed, got %s", m.menu.Difficulty())
	}
}

func TestSessionScoreboard(t *testing.T) {
	store := openStore(t)
	store.SaveScore(70, "easy")
	store.SaveScore(150, "hard")

	m := newTestSession(store)
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("Expected scoreboard, got %d", m.screen)
	}
	if len(m.scoreboard.Scores()) != 2 {
		t.Errorf("All tab should show 2 scores, got %d", len(m.scoreboard.Scores()))
	}

	// All -> Easy
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	scores := m.scoreboard.Scores()
	if len(scores) != 1 || scores[0].Score != 70 {
		t.Errorf("Easy tab should show only the easy game, got %v", scores)
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Easy") {
		t.Errorf("Expected easy title:\n%s", m.View())
	}

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("Expected menu after back, got %d", m.screen)
	}
	if cmd != nil {
		t.Error("Going back inside a session must not quit the program")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(nil)
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := updateSession(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in game should quit the session")
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestSessionResizeCarriesIntoGame(t *testing.T) {
	m := newTestSession(nil)
	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.Contains(m.View(), "Window too small") {
		t.Error("Game should be created with the latest terminal size")
	}
}

func TestSessionDropsTickFromAbandonedGame(t *testing.T) {
	m := newTestSession(nil)

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	inFlight := currentTick(m.game)

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game.Engine().Status() != snake.StatusRunning {
		t.Fatalf("Expected second game running, got %v", m.game.Engine().Status())
	}
	head := m.game.Engine().Snake()[0]

	m, cmd := updateSession(t, m, inFlight)

	if got := m.game.Engine().Snake()[0]; got != head {
		t.Errorf("Tick from abandoned game moved the snake from %v to %v", head, got)
	}
	if cmd != nil {
		t.Error("Tick from abandoned game should not start a second tick loop")
	}

	m, cmd = updateSession(t, m, currentTick(m.game))
	if got := m.game.Engine().Snake()[0]; got == head {
		t.Error("Tick from the running game should move the snake")
	}
	if cmd == nil {
		t.Error("Accepted tick should queue the next one")
	}
}

func TestMenuBackSelectsQuit(t *testing.T) {
	m := NewMenuModel(nil, snake.Medium, 80, 30)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(MenuModel)
	if m.cursor != menuQuit {
		t.Errorf("Expected esc to move the cursor to Quit, got %d", m.cursor)
	}
	if m.IsQuitting() || cmd != nil {
		t.Error("Esc alone should not quit")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if !m.IsQuitting() {
		t.Error("Enter on Quit should quit")
	}
}
