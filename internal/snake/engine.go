// Package snake implements the snake game engine: a discrete-time state
// machine advanced one Tick at a time by an external Scheduler.
//
// The engine owns the snake body, heading, food, score and status. It has no
// terminal, timer or database dependencies; rendering, persistence, audio and
// scheduling are injected through the interfaces in sinks.go.
package snake

import (
	"math/rand"
	"time"
)

const (
	// DefaultTileCount is the board edge length in cells.
	DefaultTileCount = 20
	// MinTileCount is the smallest board the starting snake fits on.
	MinTileCount = 4
	// ScoreIncrement is added to the score for every food eaten.
	ScoreIncrement = 10
	// StartLength is the number of segments after Start.
	StartLength = 3
)

// Config holds engine settings and collaborators. Nil collaborators are
// replaced with no-op implementations.
type Config struct {
	TileCount  int
	Difficulty Difficulty
	Intervals  Intervals
	Seed       int64 // 0 means time based

	Renderer  Renderer
	Store     HighScoreStore
	Audio     AudioSink
	Scheduler Scheduler
}

// Engine is the snake game state machine.
type Engine struct {
	tileCount int
	intervals Intervals
	rng       *rand.Rand

	renderer  Renderer
	store     HighScoreStore
	audio     AudioSink
	scheduler Scheduler

	snake      []Cell    // Head at index 0
	heading    Direction // Direction of the last move
	pending    Direction // Applied on the next tick
	food       Cell
	score      int
	highScore  int
	status     Status
	difficulty Difficulty
	ticks      uint64
}

// New creates an idle engine. The high score is read from the store here
// and again at the start of every game.
func New(cfg Config) *Engine {
	if cfg.TileCount < MinTileCount {
		cfg.TileCount = DefaultTileCount
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Intervals == nil {
		cfg.Intervals = DefaultIntervals()
	}
	if !cfg.Difficulty.Valid() {
		cfg.Difficulty = Medium
	}
	if cfg.Renderer == nil {
		cfg.Renderer = nopRenderer{}
	}
	if cfg.Store == nil {
		cfg.Store = &MemoryHighScore{}
	}
	if cfg.Audio == nil {
		cfg.Audio = nopAudio{}
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = nopScheduler{}
	}

	e := &Engine{
		tileCount:  cfg.TileCount,
		intervals:  cfg.Intervals,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		renderer:   cfg.Renderer,
		store:      cfg.Store,
		audio:      cfg.Audio,
		scheduler:  cfg.Scheduler,
		difficulty: cfg.Difficulty,
		status:     StatusIdle,
		food:       NoFood,
	}
	e.highScore = max(0, e.store.HighScore())
	return e
}

// Start begins a new game. Called while a game is running or paused it
// restarts from the initial state.
func (e *Engine) Start() {
	e.reset()
	e.status = StatusRunning
	e.scheduler.Schedule(e.Interval())
	e.render()
}

// reset puts the snake back at the centre of the board heading right.
func (e *Engine) reset() {
	e.highScore = max(e.highScore, e.store.HighScore())
	cx, cy := e.tileCount/2, e.tileCount/2
	e.snake = make([]Cell, 0, StartLength)
	for i := 0; i < StartLength; i++ {
		e.snake = append(e.snake, Cell{X: cx - i, Y: cy})
	}
	e.heading = DirRight
	e.pending = DirRight
	e.score = 0
	e.ticks = 0
	e.generateFood()
}

// Tick advances the game by one step. It is a no-op unless running.
func (e *Engine) Tick() {
	if e.status != StatusRunning {
		return
	}
	e.ticks++
	e.heading = e.pending

	dx, dy := e.heading.Delta()
	head := e.snake[0].Add(dx, dy)

	// The tail is still part of the body here: moving into the cell the
	// tail is about to leave counts as a collision.
	if !head.In(e.tileCount) || e.isSnakeAt(head) {
		e.endGame()
		return
	}

	e.snake = append(e.snake, Cell{})
	copy(e.snake[1:], e.snake)
	e.snake[0] = head

	if head == e.food {
		e.score += ScoreIncrement
		e.recordHighScore()
		e.generateFood()
		e.audio.PlayEat()
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	e.render()
}

// SetHeading queues a direction change for the next tick. Requests that
// would reverse the current movement are rejected. Returns whether the
// request was accepted.
func (e *Engine) SetHeading(d Direction) bool {
	if d == DirNone {
		return false
	}
	if e.status != StatusRunning && e.status != StatusPaused {
		return false
	}
	if d == e.heading.Opposite() {
		return false
	}
	e.pending = d
	return true
}

// Pause halts ticking. No-op unless running.
func (e *Engine) Pause() {
	if e.status != StatusRunning {
		return
	}
	e.status = StatusPaused
	e.scheduler.Stop()
	e.render()
}

// Resume restarts ticking at the current difficulty. No-op unless paused.
func (e *Engine) Resume() {
	if e.status != StatusPaused {
		return
	}
	e.status = StatusRunning
	e.scheduler.Schedule(e.Interval())
	e.render()
}

// TogglePause pauses a running game or resumes a paused one.
func (e *Engine) TogglePause() {
	switch e.status {
	case StatusRunning:
		e.Pause()
	case StatusPaused:
		e.Resume()
	}
}

// SetDifficulty changes the tick interval. A running game is rescheduled
// immediately and keeps its state.
func (e *Engine) SetDifficulty(level Difficulty) error {
	if !level.Valid() {
		return ErrUnknownDifficulty
	}
	e.difficulty = level
	if e.status == StatusRunning {
		e.scheduler.Schedule(e.Interval())
	}
	e.render()
	return nil
}

// End finishes a running or paused game.
func (e *Engine) End() {
	if e.status != StatusRunning && e.status != StatusPaused {
		return
	}
	e.endGame()
}

// endGame moves to Over, stops ticking and announces the result.
func (e *Engine) endGame() {
	e.status = StatusOver
	e.scheduler.Stop()
	e.recordHighScore()
	e.audio.PlayGameOver()
	e.render()
}

// recordHighScore persists the score if it beats the best so far. The store
// may be shared, so the best is re-read after writing.
func (e *Engine) recordHighScore() {
	if e.score <= e.highScore {
		return
	}
	e.store.SetHighScore(e.score)
	e.highScore = max(e.score, e.store.HighScore())
}

// generateFood places food on a random free cell, redrawing while the
// candidate hits the snake. A full board gets NoFood.
func (e *Engine) generateFood() {
	if len(e.snake) >= e.tileCount*e.tileCount {
		e.food = NoFood
		return
	}
	for {
		c := Cell{X: e.rng.Intn(e.tileCount), Y: e.rng.Intn(e.tileCount)}
		if !e.isSnakeAt(c) {
			e.food = c
			return
		}
	}
}

// isSnakeAt reports whether any segment occupies c.
func (e *Engine) isSnakeAt(c Cell) bool {
	for _, seg := range e.snake {
		if seg == c {
			return true
		}
	}
	return false
}

func (e *Engine) render() {
	e.renderer.RenderFrame(e.Frame())
}

// Frame returns a copy of the current state for rendering.
func (e *Engine) Frame() Frame {
	return Frame{
		Snake:      e.Snake(),
		Food:       e.food,
		Score:      e.score,
		HighScore:  e.highScore,
		Status:     e.status,
		Difficulty: e.difficulty,
		Heading:    e.heading,
		TileCount:  e.tileCount,
	}
}

// Status returns the lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// HighScore returns the best score known to the engine.
func (e *Engine) HighScore() int { return e.highScore }

// Heading returns the direction of the last move.
func (e *Engine) Heading() Direction { return e.heading }

// Difficulty returns the active level.
func (e *Engine) Difficulty() Difficulty { return e.difficulty }

// Interval returns the tick interval for the active level.
func (e *Engine) Interval() time.Duration { return e.intervals.For(e.difficulty) }

// Food returns the food position.
func (e *Engine) Food() Cell { return e.food }

// TileCount returns the board edge length.
func (e *Engine) TileCount() int { return e.tileCount }

// Snake returns a copy of the body, head first.
func (e *Engine) Snake() []Cell {
	out := make([]Cell, len(e.snake))
	copy(out, e.snake)
	return out
}
