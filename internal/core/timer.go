package core

import "time"

// maxCatchUp bounds how many ticks Due reports after a long stall so a
// frontend never spirals into back-to-back steps.
const maxCatchUp = 5

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// from a frame loop running at a different rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	// Now returns the current time. Tests replace it with a fake clock.
	Now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{Now: time.Now}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Due reports how many ticks have elapsed since the previous call. The first
// call only starts the clock.
func (f *FixedStep) Due() int {
	now := f.Now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	if n > maxCatchUp {
		n = maxCatchUp
		f.accumulator = 0
	}
	return n
}

// Reset forgets accumulated time, e.g. after the loop was paused.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
