package component

// Health is the remaining hit points of an entity
// Goes negative under damage; DeathSystem despawns below zero
type Health struct {
	Value int
}

// CollisionDamage is the damage this entity deals to whatever it overlaps
type CollisionDamage struct {
	Amount int
}

// DeathBehavior decides what happens when Health drops below zero
type DeathBehavior uint8

const (
	DeathDespawn DeathBehavior = iota // Removed at the next cleanup stage
	DeathNone                         // Stays alive with negative health
)

func (d DeathBehavior) String() string {
	switch d {
	case DeathDespawn:
		return "despawn"
	case DeathNone:
		return "none"
	default:
		return "unknown"
	}
}
