package event

import "github.com/lixenwraith/vi-shooter/core"

// Collision is sent once per ordered pair of overlapping entities
// Every overlapping pair {A, B} produces both (A, B) and (B, A) in the same detection pass,
// so a consumer can read the dealer's damage regardless of enumeration order
type Collision struct {
	Dealer   core.Entity
	Receiver core.Entity
}

// Fired is sent when a weapon spawns a projectile
// Trigger: WeaponSystem | Consumer: AudioCueSystem
type Fired struct {
	Shooter    core.Entity
	Projectile core.Entity
}

// DespawnReason explains why the lifecycle systems removed an entity
type DespawnReason uint8

const (
	ReasonKilled DespawnReason = iota
	ReasonOutOfBounds
)

func (r DespawnReason) String() string {
	switch r {
	case ReasonKilled:
		return "killed"
	case ReasonOutOfBounds:
		return "out_of_bounds"
	default:
		return "unknown"
	}
}

// Despawned is sent when a lifecycle system buffers a despawn
// Trigger: DeathSystem, BoundsSystem | Consumer: AudioCueSystem
type Despawned struct {
	Entity core.Entity
	Reason DespawnReason
}
