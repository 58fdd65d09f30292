package app

// runState holds the shell's pause and seed bookkeeping between frames.
type runState struct {
	paused   bool
	tickOnce bool

	seed       int64 // seed of the board on screen
	configured int64 // seed restored by restart
}

func newRunState(seed int64) *runState {
	return &runState{seed: seed, configured: seed}
}

func (s *runState) togglePause() { s.paused = !s.paused }

// requestTick asks for a single step on the next frame. It only has an effect
// while paused.
func (s *runState) requestTick() {
	if s.paused {
		s.tickOnce = true
	}
}

// restart returns the configured seed and makes it current.
func (s *runState) restart() int64 {
	s.seed = s.configured
	s.tickOnce = false
	return s.seed
}

// reseed records seed as the board's seed without touching the configured one.
func (s *runState) reseed(seed int64) int64 {
	s.seed = seed
	s.tickOnce = false
	return seed
}

// ticks converts the number of ticks the timer owes into the number of steps
// to run this frame.
func (s *runState) ticks(due int) int {
	if !s.paused {
		return due
	}
	if s.tickOnce {
		s.tickOnce = false
		return 1
	}
	return 0
}
