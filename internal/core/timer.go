package core

import "time"

// FixedStep converts wall-clock time into a count of fixed-length ticks. The
// SSH preview drives generators with it so a session that stalls replays the
// ticks it missed instead of slowing down.
type FixedStep struct {
	step time.Duration
	owed time.Duration
	last time.Time
	now  func() time.Time
}

// NewFixedStep returns a FixedStep running at tps ticks per second (60 when
// tps <= 0). The first tick is owed immediately.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{step: time.Second / time.Duration(tps), now: time.Now}
	fs.owed = fs.step
	return fs
}

// Step returns the length of a single tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// StepSeconds is Step as the dt handed to frame-driven sims.
func (f *FixedStep) StepSeconds() float64 { return f.step.Seconds() }

// Due returns how many whole ticks have elapsed since the previous call, at
// most max. Ticks beyond max are dropped so a long stall can't snowball.
func (f *FixedStep) Due(max int) int {
	now := f.now()
	if !f.last.IsZero() {
		f.owed += now.Sub(f.last)
	}
	f.last = now
	n := int(f.owed / f.step)
	f.owed -= time.Duration(n) * f.step
	if n > max {
		n = max
	}
	return n
}
