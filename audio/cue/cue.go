// Package cue names the sound effects the simulation can request
// It has no audio backend dependency, so gameplay packages stay buildable without a sound device
package cue

// Cue identifies a one-shot sound effect
type Cue uint8

const (
	Fire Cue = iota
	Hit
	Death

	count
)

func (c Cue) String() string {
	switch c {
	case Fire:
		return "fire"
	case Hit:
		return "hit"
	case Death:
		return "death"
	default:
		return "unknown"
	}
}

// Player accepts cue requests from the simulation
// Play must not block; implementations drop cues they cannot serve
type Player interface {
	Play(c Cue)
}

// Counter is a silent Player that only counts cues, used headless and in tests
type Counter struct {
	counts [count]int
}

// Play implements Player
func (c *Counter) Play(cue Cue) {
	if cue < count {
		c.counts[cue]++
	}
}

// Count returns how many times cue was requested
func (c *Counter) Count(cue Cue) int {
	if cue >= count {
		return 0
	}
	return c.counts[cue]
}
