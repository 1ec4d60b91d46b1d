package snake

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Cell is a grid coordinate in [0, tileCount).
type Cell struct {
	X, Y int
}

// NoFood marks a board with no free cell left for food.
var NoFood = Cell{X: -1, Y: -1}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// In reports whether the cell lies on a size x size board.
func (c Cell) In(size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// Direction is the snake's heading.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the per-tick movement for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Status is the engine's lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Difficulty is a named tick-interval preset.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// ErrUnknownDifficulty is returned for a level outside Easy..Hard.
var ErrUnknownDifficulty = errors.New("snake: unknown difficulty")

// Difficulties lists every level in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a name ("easy", "medium", "hard") to a level.
// "normal" is accepted as an alias for medium.
func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return Easy, nil
	case "medium", "normal":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
}

// Intervals maps each difficulty to its tick interval.
type Intervals map[Difficulty]time.Duration

// DefaultIntervals returns the stock tick intervals. Medium matches the
// classic 150ms pace.
func DefaultIntervals() Intervals {
	return Intervals{
		Easy:   200 * time.Millisecond,
		Medium: 150 * time.Millisecond,
		Hard:   100 * time.Millisecond,
	}
}

// For returns the interval for d, falling back to the default table.
func (iv Intervals) For(d Difficulty) time.Duration {
	if v, ok := iv[d]; ok && v > 0 {
		return v
	}
	return DefaultIntervals()[d]
}
