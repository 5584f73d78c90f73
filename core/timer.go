package core

import "math"

// Timer counts elapsed seconds towards a duration
// Embedded by value in components (weapon cooldown) and resources (spawn interval)
// Durations must be non-negative; negative values are not guarded
type Timer struct {
	Elapsed   float64
	Duration  float64
	Finished  bool
	Repeating bool

	// TimesFinished is the number of cycles completed by the last Tick
	TimesFinished int
}

// NewTimer creates an armed timer for the given duration in seconds
func NewTimer(duration float64, repeating bool) Timer {
	return Timer{Duration: duration, Repeating: repeating}
}

// Tick advances the timer by delta seconds
// Finished is recomputed every call: elapsed >= duration in the current cycle
// Repeating timers carry the overflow remainder into the next cycle instead of clamping
// Non-repeating timers clamp at duration and stay finished until Reset
func (t *Timer) Tick(delta float64) {
	wasFinished := t.Finished
	t.Elapsed += delta
	t.Finished = t.Elapsed >= t.Duration
	t.TimesFinished = 0

	if !t.Finished {
		return
	}

	if !t.Repeating {
		if !wasFinished {
			t.TimesFinished = 1
		}
		t.Elapsed = t.Duration
		return
	}

	if t.Duration <= 0 {
		t.TimesFinished = 1
		t.Elapsed = 0
		return
	}
	t.TimesFinished = int(t.Elapsed / t.Duration)
	t.Elapsed = math.Mod(t.Elapsed, t.Duration)
}

// Reset rewinds the timer to zero and clears the finished flag
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.Finished = false
	t.TimesFinished = 0
}

// JustFinished reports whether the last Tick completed at least one cycle
func (t *Timer) JustFinished() bool {
	return t.TimesFinished > 0
}

// Remaining returns seconds left in the current cycle
func (t *Timer) Remaining() float64 {
	if t.Elapsed >= t.Duration {
		return 0
	}
	return t.Duration - t.Elapsed
}

// Fraction returns progress through the current cycle in [0, 1]
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return math.Min(t.Elapsed/t.Duration, 1)
}
