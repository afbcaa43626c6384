package tetris

import (
	"testing"
	"time"
)

func TestSchedulerFires(t *testing.T) {
	s := NewScheduler(100 * time.Millisecond)

	fired := 0
	for range 10 {
		if s.Advance(20 * time.Millisecond) {
			fired++
		}
	}
	if fired != 2 {
		t.Errorf("fired %d times in 200ms at 100ms, expected 2", fired)
	}
}

func TestSchedulerCarriesRemainder(t *testing.T) {
	s := NewScheduler(50 * time.Millisecond)

	if !s.Advance(70 * time.Millisecond) {
		t.Fatal("Advance(70ms) should fire at 50ms")
	}
	if !s.Advance(30 * time.Millisecond) {
		t.Error("20ms left over plus 30ms should fire again")
	}
}

func TestSchedulerRearm(t *testing.T) {
	s := NewScheduler(100 * time.Millisecond)
	s.Advance(90 * time.Millisecond)

	if s.Rearm(100 * time.Millisecond) {
		t.Error("Rearm() with the same interval should not restart")
	}
	if !s.Rearm(50 * time.Millisecond) {
		t.Fatal("Rearm() with a new interval should restart")
	}
	if s.Interval() != 50*time.Millisecond {
		t.Errorf("Interval() = %v, expected 50ms", s.Interval())
	}
	// The 90ms from the old period must not leak into the new one.
	if s.Advance(40 * time.Millisecond) {
		t.Error("fired before the new period elapsed")
	}
	if !s.Advance(10 * time.Millisecond) {
		t.Error("did not fire when the new period elapsed")
	}
}

func TestSchedulerRestartAndZero(t *testing.T) {
	s := NewScheduler(30 * time.Millisecond)
	s.Advance(20 * time.Millisecond)
	s.Restart()
	if s.Advance(20 * time.Millisecond) {
		t.Error("Restart() should drop elapsed time")
	}

	var zero Scheduler
	if zero.Advance(time.Hour) {
		t.Error("an unarmed scheduler should never fire")
	}
}
