package core

import "time"

// FixedStep paces generation updates at a fixed interval. At most one step
// is reported per call, so a slow frame never causes a burst of updates.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep that fires every step.
func NewFixedStep(step time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetStep(step)
	return fs
}

// SetStep changes the interval. Non-positive values select 80ms.
func (f *FixedStep) SetStep(step time.Duration) {
	if step <= 0 {
		step = 80 * time.Millisecond
	}
	f.step = step
}

// Step returns the current interval.
func (f *FixedStep) Step() time.Duration { return f.step }

// Restart discards elapsed time; the next step is a full interval after now.
func (f *FixedStep) Restart(now time.Time) {
	f.last = now
	f.accumulator = 0
}

// ShouldStep reports whether a step is due at now.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
