package snake

// Snapshot captures the engine state for determinism testing and debugging.
type Snapshot struct {
	Tick       uint64
	Status     Status
	Difficulty Difficulty
	Score      int
	HighScore  int
	SnakeLen   int
	Head       Cell
	Heading    Direction
	Pending    Direction
	Food       Cell
}

// Snapshot returns a comparable summary of the current state.
func (e *Engine) Snapshot() Snapshot {
	head := Cell{X: -1, Y: -1}
	if len(e.snake) > 0 {
		head = e.snake[0]
	}
	return Snapshot{
		Tick:       e.ticks,
		Status:     e.status,
		Difficulty: e.difficulty,
		Score:      e.score,
		HighScore:  e.highScore,
		SnakeLen:   len(e.snake),
		Head:       head,
		Heading:    e.heading,
		Pending:    e.pending,
		Food:       e.food,
	}
}
