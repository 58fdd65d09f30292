package app

import "testing"

func TestRunStateRestartReplaysConfiguredSeed(t *testing.T) {
	s := newRunState(42)

	if got := s.reseed(9001); got != 9001 || s.seed != 9001 {
		t.Fatalf("reseed returned %d, seed %d; want 9001", got, s.seed)
	}
	if got := s.restart(); got != 42 {
		t.Fatalf("restart after a fresh seed returned %d, want the configured 42", got)
	}
	if s.seed != 42 {
		t.Fatalf("seed = %d after restart, want 42", s.seed)
	}

	s.reseed(7)
	s.reseed(8)
	if got := s.restart(); got != 42 {
		t.Fatalf("restart after repeated reseeds returned %d, want 42", got)
	}
}

func TestRunStateKeepsCatchUpWhileRunning(t *testing.T) {
	s := newRunState(1)

	s.requestTick()
	if got := s.ticks(4); got != 4 {
		t.Fatalf("ticks(4) while running = %d, want 4", got)
	}
	if got := s.ticks(0); got != 0 {
		t.Fatalf("single-step request while running leaked into a later frame: ticks(0) = %d", got)
	}
}

func TestRunStateSingleStepWhilePaused(t *testing.T) {
	s := newRunState(1)
	s.togglePause()

	if got := s.ticks(3); got != 0 {
		t.Fatalf("ticks(3) while paused = %d, want 0", got)
	}
	s.requestTick()
	if got := s.ticks(3); got != 1 {
		t.Fatalf("ticks after a single-step request = %d, want 1", got)
	}
	if got := s.ticks(3); got != 0 {
		t.Fatalf("single step must be consumed once, got %d", got)
	}

	s.requestTick()
	s.restart()
	if got := s.ticks(1); got != 0 {
		t.Fatalf("restart should drop a pending single step, got %d", got)
	}

	s.togglePause()
	if got := s.ticks(2); got != 2 {
		t.Fatalf("ticks(2) after unpausing = %d, want 2", got)
	}
}
