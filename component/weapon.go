package component

import (
	"github.com/lixenwraith/vi-shooter/core"
	"github.com/lixenwraith/vi-shooter/vmath"
)

// Weapon spawns a laser at Offset from its owner when Fired is latched and Cooldown has finished
type Weapon struct {
	// Fired is latched by input and cleared when a shot is spawned
	Fired bool

	// Offset is added to the owner's position to place the projectile
	Offset vmath.Vec2

	// Cooldown is non-repeating; it is reset on every shot
	Cooldown core.Timer

	// Material indexes the MaterialHandles resource for the projectile sprite
	Material int
}

// NewWeapon creates a weapon ready to fire on its first cooldown completion
func NewWeapon(offset vmath.Vec2, cooldown float64, material int) Weapon {
	return Weapon{
		Offset:   offset,
		Cooldown: core.NewTimer(cooldown, false),
		Material: material,
	}
}

// Laser moves an entity along +Y at Speed units per second
type Laser struct {
	Speed float64
}
