package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ClockScheduler drives a Scheduler on a wall-clock tick
// The delta handed to the simulation is the measured time since the previous tick,
// clamped to MaxDelta so a stalled process does not tunnel entities through each other
type ClockScheduler struct {
	scheduler *Scheduler
	clock     TimeProvider

	// Tick configuration
	tickInterval     time.Duration
	maxDelta         time.Duration
	lastTickTime     time.Time
	nextTickDeadline time.Time

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64
	mu        sync.Mutex

	// Frame hooks run after every tick on the scheduler goroutine
	onFrame []func(tick uint64, dt float64)

	log zerolog.Logger
}

// DefaultMaxDelta caps the per-tick delta
const DefaultMaxDelta = 250 * time.Millisecond

// NewClockScheduler creates a clock scheduler with the specified tick interval
func NewClockScheduler(s *Scheduler, clock TimeProvider, tickInterval time.Duration) *ClockScheduler {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &ClockScheduler{
		scheduler:    s,
		clock:        clock,
		tickInterval: tickInterval,
		maxDelta:     DefaultMaxDelta,
		log:          s.log.With().Str("component", "clock").Logger(),
	}
}

// SetMaxDelta overrides the delta clamp, must be called before Run
func (cs *ClockScheduler) SetMaxDelta(d time.Duration) {
	cs.maxDelta = d
}

// OnFrame registers a hook invoked after each tick, must be called before Run
func (cs *ClockScheduler) OnFrame(fn func(tick uint64, dt float64)) {
	cs.onFrame = append(cs.onFrame, fn)
}

// TickCount returns the number of ticks processed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Run executes the scheduling loop until ctx is cancelled
// Returns ctx.Err() on cancellation
func (cs *ClockScheduler) Run(ctx context.Context) error {
	now := cs.clock.Now()
	cs.mu.Lock()
	cs.lastTickTime = now
	cs.nextTickDeadline = now.Add(cs.tickInterval)
	cs.mu.Unlock()

	cs.scheduler.Startup()
	cs.log.Info().Dur("interval", cs.tickInterval).Msg("clock started")

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			cs.log.Info().Uint64("ticks", cs.tickCount.Load()).Msg("clock stopped")
			return ctx.Err()
		default:
		}

		now := cs.clock.Now()

		cs.mu.Lock()
		deadline := cs.nextTickDeadline
		cs.mu.Unlock()

		var sleepDuration time.Duration
		if !now.Before(deadline) {
			cs.Step(now)

			cs.mu.Lock()
			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
			// Drop missed deadlines instead of bursting to catch up
			if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
				cs.nextTickDeadline = now.Add(cs.tickInterval)
			}
			deadline = cs.nextTickDeadline
			cs.mu.Unlock()

			sleepDuration = deadline.Sub(cs.clock.Now())
		} else {
			sleepDuration = deadline.Sub(now)
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-ctx.Done():
				cs.log.Info().Uint64("ticks", cs.tickCount.Load()).Msg("clock stopped")
				return ctx.Err()
			}
		}
	}
}

// Step processes one tick at wall time now and returns the delta used
// Exposed for deterministic drivers and tests
func (cs *ClockScheduler) Step(now time.Time) float64 {
	cs.mu.Lock()
	if cs.lastTickTime.IsZero() {
		cs.lastTickTime = now.Add(-cs.tickInterval)
	}
	elapsed := now.Sub(cs.lastTickTime)
	cs.lastTickTime = now
	cs.mu.Unlock()

	if elapsed < 0 {
		elapsed = 0
	}
	if cs.maxDelta > 0 && elapsed > cs.maxDelta {
		cs.log.Debug().Dur("elapsed", elapsed).Msg("delta clamped")
		elapsed = cs.maxDelta
	}

	dt := elapsed.Seconds()
	cs.scheduler.Tick(dt)
	tick := cs.tickCount.Add(1)

	for _, fn := range cs.onFrame {
		fn(tick, dt)
	}
	return dt
}
