package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// generations is shared by every Scheduler in the process, so a tick left in
// flight by an abandoned game never matches the scheduler of the next one.
var generations atomic.Uint64

// Scheduler implements snake.Scheduler on top of tea.Tick.
//
// Bubble Tea timers cannot be cancelled, so every Schedule or Stop starts a
// new generation and ticks from older generations are dropped on arrival.
// The engine calls Schedule and Stop synchronously from Update; the command
// they produce is collected with Drain and returned to the runtime.
type Scheduler struct {
	gen      uint64
	interval time.Duration
	active   bool
	pending  tea.Cmd
}

// NewScheduler creates an inactive scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule replaces any running schedule with one firing every interval.
func (s *Scheduler) Schedule(interval time.Duration) {
	s.gen = generations.Add(1)
	s.interval = interval
	s.active = true
	s.pending = tickCmd(s.gen, interval)
}

// Stop cancels the running schedule.
func (s *Scheduler) Stop() {
	s.gen = generations.Add(1)
	s.active = false
	s.pending = nil
}

// Accept reports whether msg belongs to the current schedule. An accepted
// tick queues the next one.
func (s *Scheduler) Accept(msg TickMsg) bool {
	if !s.active || msg.Gen != s.gen {
		return false
	}
	s.pending = tickCmd(s.gen, s.interval)
	return true
}

// Drain returns the command queued since the last Drain, if any.
func (s *Scheduler) Drain() tea.Cmd {
	cmd := s.pending
	s.pending = nil
	return cmd
}

// Active reports whether ticks are currently expected.
func (s *Scheduler) Active() bool { return s.active }

// Interval returns the interval of the current or last schedule.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// Generation returns the current schedule generation.
func (s *Scheduler) Generation() uint64 { return s.gen }
