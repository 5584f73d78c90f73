package input

import (
	"sync"
	"time"
)

// Provider answers per-tick key queries for systems
// Results are stable for the duration of a tick: they change only at Latch
type Provider interface {
	// Pressed reports whether the key is held this tick
	Pressed(k Key) bool

	// JustPressed reports whether the key went down since the previous tick
	JustPressed(k Key) bool

	// Latch snapshots input for the next tick; called once at the start of every tick
	Latch()
}

// Clock supplies the time used for the hold window
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// DefaultHoldWindow keeps a key held between terminal auto-repeat events
const DefaultHoldWindow = 150 * time.Millisecond

// Keyboard is a Provider fed by terminal key events from another goroutine
// Terminals report presses and auto-repeats but no releases, so a key counts as held
// until HoldWindow passes without a repeat
type Keyboard struct {
	mu    sync.Mutex
	clock Clock
	hold  time.Duration

	lastPress [keyCount]time.Time
	pending   [keyCount]bool // Presses since the last Latch

	// Snapshot read by systems, written only by Latch
	held [keyCount]bool
	just [keyCount]bool
}

// NewKeyboard creates a keyboard provider; a nil clock uses wall time
func NewKeyboard(clock Clock, hold time.Duration) *Keyboard {
	if clock == nil {
		clock = wallClock{}
	}
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &Keyboard{clock: clock, hold: hold}
}

// Press records a key event; safe to call from the input goroutine
func (k *Keyboard) Press(key Key) {
	if key == KeyNone || key >= keyCount {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.lastPress[key] = k.clock.Now()
	k.pending[key] = true
}

// Latch implements Provider
func (k *Keyboard) Latch() {
	k.mu.Lock()
	defer k.mu.Unlock()
	now := k.clock.Now()
	for i := range k.held {
		wasHeld := k.held[i]
		k.held[i] = k.pending[i] || (!k.lastPress[i].IsZero() && now.Sub(k.lastPress[i]) < k.hold)
		k.just[i] = k.pending[i] && !wasHeld
		k.pending[i] = false
	}
}

// Pressed implements Provider
func (k *Keyboard) Pressed(key Key) bool {
	if key >= keyCount {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[key]
}

// JustPressed implements Provider
func (k *Keyboard) JustPressed(key Key) bool {
	if key >= keyCount {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.just[key]
}

// Script is a deterministic Provider for headless runs
// Fire is tapped every FireEvery ticks; the ship sweeps left and right every SweepTicks ticks
type Script struct {
	FireEvery  int
	SweepTicks int

	tick int
}

// Latch implements Provider
func (s *Script) Latch() {
	s.tick++
}

// Pressed implements Provider
func (s *Script) Pressed(k Key) bool {
	switch k {
	case KeyFire:
		return s.JustPressed(k)
	case KeyLeft, KeyRight:
		if s.SweepTicks <= 0 {
			return false
		}
		phase := (s.tick / s.SweepTicks) % 2
		return (phase == 0) == (k == KeyLeft)
	default:
		return false
	}
}

// JustPressed implements Provider
func (s *Script) JustPressed(k Key) bool {
	return k == KeyFire && s.FireEvery > 0 && s.tick > 0 && s.tick%s.FireEvery == 0
}

// Tick returns the number of latched ticks
func (s *Script) Tick() int {
	return s.tick
}
