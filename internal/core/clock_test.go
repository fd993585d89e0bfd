package core

import (
	"testing"
	"time"
)

func TestClockElapsed(t *testing.T) {
	c := NewClock()

	if c.Elapsed() < 0 {
		t.Error("Elapsed() must never be negative")
	}

	time.Sleep(10 * time.Millisecond)
	if c.Elapsed() < 10*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected at least 10ms", c.Elapsed())
	}
}

func TestClockTick(t *testing.T) {
	c := NewClock()

	time.Sleep(10 * time.Millisecond)
	delta := c.Tick()
	if delta < 10*time.Millisecond {
		t.Errorf("Tick() = %v, expected at least the 10ms sleep", delta)
	}

	// Ticks partition time: deltas never go negative and never overlap.
	if second := c.Tick(); second < 0 {
		t.Errorf("Tick() = %v, deltas must never be negative", second)
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock()

	time.Sleep(10 * time.Millisecond)
	c.Reset()

	if c.Elapsed() > 5*time.Millisecond {
		t.Errorf("Elapsed() = %v after Reset, expected near zero", c.Elapsed())
	}

	// The tick reference is re-anchored too
	if d := c.Tick(); d > 5*time.Millisecond {
		t.Errorf("Tick() = %v after Reset, expected near zero", d)
	}
}
