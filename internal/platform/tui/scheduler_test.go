package tui

import (
	"testing"
	"time"
)

func TestSchedulerScheduleQueuesTick(t *testing.T) {
	s := NewScheduler()
	if s.Active() || s.Drain() != nil {
		t.Fatal("New scheduler should be inactive with nothing queued")
	}

	s.Schedule(150 * time.Millisecond)
	if !s.Active() {
		t.Error("Expected scheduler to be active")
	}
	if s.Interval() != 150*time.Millisecond {
		t.Errorf("Expected interval 150ms, got %v", s.Interval())
	}
	if s.Drain() == nil {
		t.Error("Schedule should queue a tick command")
	}
	if s.Drain() != nil {
		t.Error("Drain should empty the queue")
	}
}

func TestSchedulerAcceptCurrentGeneration(t *testing.T) {
	s := NewScheduler()
	s.Schedule(100 * time.Millisecond)
	s.Drain()

	if !s.Accept(TickMsg{Gen: s.Generation()}) {
		t.Fatal("Tick from current generation should be accepted")
	}
	if s.Drain() == nil {
		t.Error("Accepted tick should queue the next one")
	}
}

func TestSchedulerDropsStaleTicks(t *testing.T) {
	s := NewScheduler()
	s.Schedule(200 * time.Millisecond)
	old := s.Generation()
	s.Schedule(100 * time.Millisecond)

	if s.Accept(TickMsg{Gen: old}) {
		t.Error("Tick from replaced schedule should be dropped")
	}
	if !s.Accept(TickMsg{Gen: s.Generation()}) {
		t.Error("Tick from new schedule should be accepted")
	}
}

func TestSchedulerStop(t *testing.T) {
	s := NewScheduler()
	s.Schedule(100 * time.Millisecond)
	gen := s.Generation()
	s.Stop()

	if s.Active() {
		t.Error("Expected scheduler to be inactive after Stop")
	}
	if s.Drain() != nil {
		t.Error("Stop should discard the queued tick")
	}
	if s.Accept(TickMsg{Gen: gen}) {
		t.Error("In-flight tick should be dropped after Stop")
	}
	if s.Accept(TickMsg{Gen: s.Generation()}) {
		t.Error("No tick should be accepted while stopped")
	}
}

func TestSchedulerGenerationsUniqueAcrossSchedulers(t *testing.T) {
	first := NewScheduler()
	first.Schedule(100 * time.Millisecond)
	inFlight := TickMsg{Gen: first.Generation()}
	first.Stop()

	second := NewScheduler()
	second.Schedule(100 * time.Millisecond)
	second.Drain()

	if second.Generation() == inFlight.Gen {
		t.Fatalf("New scheduler reused generation %d", inFlight.Gen)
	}
	if second.Accept(inFlight) {
		t.Error("Tick from another scheduler should be dropped")
	}
	if second.Drain() != nil {
		t.Error("Dropped tick should not queue another one")
	}
}
