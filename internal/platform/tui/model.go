package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options configures a game Model.
type Options struct {
	TileCount  int
	Difficulty snake.Difficulty
	Intervals  snake.Intervals
	Seed       int64 // 0 means time-based
	Audio      snake.AudioSink
	Logger     *log.Logger

	// Initial terminal size. Zero values use the board's minimum size
	// until the first WindowSizeMsg arrives.
	Width  int
	Height int

	// Embedded enables the back key, returning to the session menu.
	Embedded bool

	// ScreenshotDir defaults to ~/.snake/screenshots.
	ScreenshotDir string
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one snake board.
type Model struct {
	engine    *snake.Engine
	renderer  *render.Renderer
	scheduler *Scheduler
	input     *InputAdapter
	store     *storage.Store
	logger    *log.Logger
	keys      GameKeyMap
	help      help.Model

	width         int
	height        int
	screenshotDir string

	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a game model. store may be nil, in which case the
// high score lives in memory for the lifetime of the model.
func NewModel(store *storage.Store, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		tc := opts.TileCount
		if tc < snake.MinTileCount {
			tc = snake.DefaultTileCount
		}
		width, height = render.RequiredSize(tc)
		height++
	}

	scheduler := NewScheduler()
	renderer := render.New(width, height)
	engine := snake.New(snake.Config{
		TileCount:  opts.TileCount,
		Difficulty: opts.Difficulty,
		Intervals:  opts.Intervals,
		Seed:       opts.Seed,
		Renderer:   renderer,
		Store:      storage.NewHighScores(store, logger),
		Audio:      opts.Audio,
		Scheduler:  scheduler,
	})

	keys := DefaultGameKeyMap()
	keys.Back.SetEnabled(opts.Embedded)

	h := help.New()
	h.Width = width

	m := Model{
		engine:        engine,
		renderer:      renderer,
		scheduler:     scheduler,
		input:         NewInputAdapter(engine, keys),
		store:         store,
		logger:        logger,
		keys:          keys,
		help:          h,
		width:         width,
		height:        height,
		screenshotDir: opts.ScreenshotDir,
	}
	m.layout()
	return m
}

// Init draws the idle board. Ticks start with the first new game.
func (m Model) Init() tea.Cmd {
	m.renderer.RenderFrame(m.engine.Frame())
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.input.HandleMouse(msg)
		return m.afterEngine()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case TickMsg:
		if m.scheduler.Accept(msg) {
			m.engine.Tick()
		}
		return m.afterEngine()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.scheduler.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		m.scheduler.Stop()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	m.input.HandleKey(msg)
	return m.afterEngine()
}

// afterEngine records finished games and hands the pending tick to the runtime.
func (m Model) afterEngine() (tea.Model, tea.Cmd) {
	if m.engine.Status() == snake.StatusOver {
		if !m.scoreSaved {
			m.saveScore()
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}
	return m, m.scheduler.Drain()
}

// saveScore records the finished game in the history table.
func (m Model) saveScore() {
	score := m.engine.Score()
	level := m.engine.Difficulty().String()
	m.logger.Info("game over", "score", score, "difficulty", level, "best", m.engine.HighScore())
	snap := m.engine.Snapshot()
	m.logger.Debug("final state", "ticks", snap.Tick, "length", snap.SnakeLen, "head", snap.Head, "heading", snap.Heading)

	if m.store == nil || score == 0 {
		return
	}
	if _, err := m.store.SaveScore(score, level); err != nil {
		m.logger.Warn("could not record game", "error", err)
	}
}

// layout sizes the board area to leave room for the help bar and redraws.
func (m Model) layout() {
	helpLines := lipgloss.Height(m.help.View(m.keys))
	m.renderer.Resize(m.width, core.Clamp(m.height-helpLines, 0, m.height))
	m.renderer.RenderFrame(m.engine.Frame())
}

// saveScreenshot saves the current board to a text file.
func (m Model) saveScreenshot() {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("could not resolve screenshot directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.renderer.Text()+"\n"), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.renderer.Screen()) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Engine exposes the game engine.
func (m Model) Engine() *snake.Engine { return m.engine }

// Scheduler exposes the tick scheduler.
func (m Model) Scheduler() *Scheduler { return m.scheduler }

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool { return m.backToMenu }

// Run starts the Bubble Tea program with a single game model.
func Run(store *storage.Store, opts Options) error {
	model := NewModel(store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to steer
	)

	_, err := p.Run()
	return err
}
