package core

import (
	"testing"
	"time"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestFixedStepDue(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	fs := NewFixedStep(50)
	fs.Now = clock.Now

	if got := fs.Interval(); got != 20*time.Millisecond {
		t.Fatalf("interval = %v, want 20ms", got)
	}
	if n := fs.Due(); n != 0 {
		t.Fatalf("first call should only start the clock, got %d", n)
	}

	clock.advance(10 * time.Millisecond)
	if n := fs.Due(); n != 0 {
		t.Fatalf("half a tick elapsed, got %d due", n)
	}
	clock.advance(10 * time.Millisecond)
	if n := fs.Due(); n != 1 {
		t.Fatalf("one tick elapsed, got %d due", n)
	}
	clock.advance(45 * time.Millisecond)
	if n := fs.Due(); n != 2 {
		t.Fatalf("two ticks elapsed, got %d due", n)
	}
	clock.advance(15 * time.Millisecond)
	if n := fs.Due(); n != 1 {
		t.Fatalf("remainder should carry over, got %d due", n)
	}
}

func TestFixedStepCapsCatchUp(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	fs := NewFixedStep(100)
	fs.Now = clock.Now
	fs.Due()

	clock.advance(time.Second)
	if n := fs.Due(); n != maxCatchUp {
		t.Fatalf("expected catch-up cap %d, got %d", maxCatchUp, n)
	}
	clock.advance(5 * time.Millisecond)
	if n := fs.Due(); n != 0 {
		t.Fatalf("backlog should be dropped after cap, got %d", n)
	}
}

func TestFixedStepDefaultsAndReset(t *testing.T) {
	fs := NewFixedStep(0)
	if got := fs.Interval(); got != time.Second/60 {
		t.Fatalf("non-positive tps should default to 60, got %v", got)
	}

	clock := &fakeClock{now: time.Unix(0, 0)}
	fs.Now = clock.Now
	fs.Due()
	clock.advance(time.Hour)
	fs.Reset()
	if n := fs.Due(); n != 0 {
		t.Fatalf("reset should restart the clock, got %d", n)
	}
}
