package snake

import "time"

// Frame is an immutable view of the engine handed to a Renderer.
type Frame struct {
	Snake      []Cell // Head at index 0
	Food       Cell
	Score      int
	HighScore  int
	Status     Status
	Difficulty Difficulty
	Heading    Direction
	TileCount  int
}

// Renderer draws a frame. Called after every tick and on every status change.
type Renderer interface {
	RenderFrame(f Frame)
}

// HighScoreStore persists the best score across sessions.
// Implementations are best-effort and must not fail gameplay. SetHighScore
// never lowers the stored value.
type HighScoreStore interface {
	HighScore() int
	SetHighScore(score int)
}

// AudioSink plays fire-and-forget sound effects.
type AudioSink interface {
	PlayEat()
	PlayGameOver()
}

// Scheduler drives Tick at a fixed interval.
// Schedule replaces any pending schedule; Stop cancels it.
type Scheduler interface {
	Schedule(interval time.Duration)
	Stop()
}

type nopRenderer struct{}

func (nopRenderer) RenderFrame(Frame) {}

// MemoryHighScore keeps the high score in memory only.
type MemoryHighScore struct {
	Best int
}

// HighScore returns the stored best score.
func (m *MemoryHighScore) HighScore() int { return m.Best }

// SetHighScore records score if it beats the stored best.
func (m *MemoryHighScore) SetHighScore(score int) { m.Best = max(m.Best, score) }

type nopAudio struct{}

func (nopAudio) PlayEat()      {}
func (nopAudio) PlayGameOver() {}

type nopScheduler struct{}

func (nopScheduler) Schedule(time.Duration) {}
func (nopScheduler) Stop()                  {}
