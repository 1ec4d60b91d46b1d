package storage

import (
	"sync"

	"github.com/charmbracelet/log"
)

// HighScoreKey is the kv key the best score is stored under.
const HighScoreKey = "snake.high_score"

// HighScores adapts a Store to the engine's high score sink.
// Storage errors are logged and swallowed so gameplay never sees them.
// A nil Store keeps the value in memory only.
type HighScores struct {
	store  *Store
	logger *log.Logger

	mu     sync.Mutex
	cached int
}

// NewHighScores creates the adapter. logger may be nil.
func NewHighScores(store *Store, logger *log.Logger) *HighScores {
	if logger == nil {
		logger = log.Default()
	}
	return &HighScores{store: store, logger: logger}
}

// HighScore returns the persisted best score, or the last known value if
// the database cannot be read.
func (h *HighScores) HighScore() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.store == nil {
		return h.cached
	}
	v, err := h.store.Get(HighScoreKey)
	if err != nil {
		h.logger.Warn("could not read high score", "error", err)
		return h.cached
	}
	h.cached = v
	return h.cached
}

// SetHighScore persists score if it beats the stored best. Other sessions
// may share the store, so a lower score never replaces a higher one.
func (h *HighScores) SetHighScore(score int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cached = max(h.cached, score)
	if h.store == nil {
		return
	}
	best, err := h.store.SetMax(HighScoreKey, score)
	if err != nil {
		h.logger.Warn("could not save high score", "score", score, "error", err)
		return
	}
	h.cached = best
	h.logger.Debug("high score saved", "score", score, "best", best)
}
