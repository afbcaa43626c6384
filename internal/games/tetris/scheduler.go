package tetris

import "time"

// Scheduler is the periodic fall source. The platform advances it by one frame at a
// time; it fires once the accumulated time reaches the interval.
type Scheduler struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewScheduler creates a scheduler armed with the given interval.
func NewScheduler(interval time.Duration) Scheduler {
	return Scheduler{interval: interval}
}

// Interval returns the period the scheduler is armed with.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Rearm cancels the running period and starts a new one when the interval changed.
// It reports whether a re-arm happened.
func (s *Scheduler) Rearm(interval time.Duration) bool {
	if interval == s.interval {
		return false
	}
	s.interval = interval
	s.elapsed = 0
	return true
}

// Restart starts the current period over.
func (s *Scheduler) Restart() {
	s.elapsed = 0
}

// Advance adds dt to the running period and reports whether it fired.
// At most one firing per call; leftover time carries into the next period.
func (s *Scheduler) Advance(dt time.Duration) bool {
	if s.interval <= 0 {
		return false
	}
	s.elapsed += dt
	if s.elapsed < s.interval {
		return false
	}
	s.elapsed -= s.interval
	return true
}
