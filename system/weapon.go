package system

import (
	"github.com/lixenwraith/vi-shooter/component"
	"github.com/lixenwraith/vi-shooter/engine"
	"github.com/lixenwraith/vi-shooter/event"
	"github.com/lixenwraith/vi-shooter/parameter"
)

// WeaponSystem ticks weapon cooldowns and spawns lasers for latched shots
type WeaponSystem struct {
	engine.SystemBase

	laserSpeed float64
	damage     int
	health     int
}

// NewWeaponSystem creates a weapon system with the default laser stats
func NewWeaponSystem() *WeaponSystem {
	return &WeaponSystem{
		SystemBase: engine.NewSystemBase(),
		laserSpeed: parameter.LaserSpeed,
		damage:     parameter.CollisionDamage,
		health:     parameter.StartingHealth,
	}
}

// WithLaserStats overrides projectile speed, damage and health
func (s *WeaponSystem) WithLaserStats(speed float64, damage, health int) *WeaponSystem {
	s.laserSpeed = speed
	s.damage = damage
	s.health = health
	return s
}

// Name returns system's name
func (s *WeaponSystem) Name() string {
	return "weapon"
}

// Update spawns one laser per weapon whose cooldown finished while fire is latched
func (s *WeaponSystem) Update(w *engine.World) {
	dt := engine.MustGetResource[*engine.TimeResource](w.Resources).Delta
	materials, _ := engine.GetResource[*MaterialHandles](w.Resources)
	cmds := w.Commands()

	for e, row := range engine.Query2[component.Weapon, component.Transform](w) {
		weapon, transform := row.A, row.B
		weapon.Cooldown.Tick(dt)
		if !weapon.Cooldown.Finished || !weapon.Fired {
			continue
		}

		bundles := []engine.Bundle{
			engine.With(component.Transform{Position: transform.Position.Add(weapon.Offset)}),
			engine.With(component.Laser{Speed: s.laserSpeed}),
			engine.With(component.CollisionDamage{Amount: s.damage}),
			engine.With(component.Health{Value: s.health}),
			engine.With(component.DeathDespawn),
			engine.Tagged(component.TagBounded, component.TagLoseHealthOnCollide),
		}
		if materials != nil {
			if m, ok := materials.At(weapon.Material); ok {
				bundles = append(bundles,
					engine.With(component.Sprite{Handle: m.Handle}),
					engine.With(component.Extent{Width: m.Width, Height: m.Height}),
				)
			}
		}
		laser := cmds.Spawn(bundles...)

		weapon.Fired = false
		weapon.Cooldown.Reset()
		event.Send(w.Events, event.Fired{Shooter: e, Projectile: laser})
		s.Log.Debug().Stringer("shooter", e).Stringer("laser", laser).Msg("fired")
	}
}
