package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-shooter/core"
)

// NewTestWorld creates a world with a TimeResource installed, for tests outside the engine package
func NewTestWorld() *World {
	w := NewWorld()
	AddResource(w.Resources, &TimeResource{})
	return w
}

// SpawnNow spawns an entity and flushes immediately so it is alive on return
// Test helper; systems must go through Commands and the stage boundary
func SpawnNow(w *World, bundles ...Bundle) core.Entity {
	e := w.Commands().Spawn(bundles...)
	w.Flush()
	return e
}

// RunSystem runs one system against w with the given delta and flushes its commands
func RunSystem(w *World, sys System, dt float64) {
	tr, ok := GetResource[*TimeResource](w.Resources)
	if !ok {
		tr = &TimeResource{}
		AddResource(w.Resources, tr)
	}
	tr.Update(dt)
	sys.Update(w)
	w.Flush()
}

// ManualClock is a TimeProvider that only moves when the test moves it
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ TimeProvider = (*ManualClock)(nil)

// NewManualClock creates a clock reading start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now implements TimeProvider
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new reading
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Set jumps the clock to t, which may lie in the past
func (c *ManualClock) Set(t time.Time) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
	return c.now
}

// DriveClock steps cs n times, advancing clock by interval before each step, and returns the deltas used
func DriveClock(cs *ClockScheduler, clock *ManualClock, n int, interval time.Duration) []float64 {
	deltas := make([]float64, 0, n)
	for range n {
		deltas = append(deltas, cs.Step(clock.Advance(interval)))
	}
	return deltas
}
