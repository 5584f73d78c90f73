package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-shooter/component"
	"github.com/lixenwraith/vi-shooter/core"
	"github.com/lixenwraith/vi-shooter/engine"
	"github.com/lixenwraith/vi-shooter/event"
	"github.com/lixenwraith/vi-shooter/input"
	"github.com/lixenwraith/vi-shooter/vmath"
)

func newShooter(w *engine.World, fired bool) core.Entity {
	weapon := component.NewWeapon(vmath.V2(0, 60), 0.4, 0)
	weapon.Fired = fired
	return engine.SpawnNow(w,
		engine.With(component.Transform{Position: vmath.V2(10, -256)}),
		engine.With(weapon),
	)
}

func TestWeaponFiresAfterCooldown(t *testing.T) {
	w := engine.NewTestWorld()
	engine.AddResource(w.Resources, &MaterialHandles{Materials: []Material{{Handle: 7, Width: 9, Height: 54}}})
	shooter := newShooter(w, true)
	sys := NewWeaponSystem()

	engine.RunSystem(w, sys, 0.2)
	assert.Zero(t, engine.GetStore[component.Laser](w).Count(), "still cooling down")

	engine.RunSystem(w, sys, 0.2)
	lasers := engine.GetStore[component.Laser](w)
	require.Equal(t, 1, lasers.Count())

	for laser, l := range lasers.All() {
		assert.Equal(t, 1000.0, l.Speed)
		tr, ok := engine.Get[component.Transform](w, laser)
		require.True(t, ok)
		assert.Equal(t, vmath.V2(10, -196), tr.Position)

		sprite, ok := engine.Get[component.Sprite](w, laser)
		require.True(t, ok)
		assert.EqualValues(t, 7, sprite.Handle)
		ext, _ := engine.Get[component.Extent](w, laser)
		assert.Equal(t, component.Extent{Width: 9, Height: 54}, *ext)

		assert.True(t, w.HasTag(laser, component.TagBounded))
		assert.True(t, w.HasTag(laser, component.TagLoseHealthOnCollide))
		assert.True(t, engine.Has[component.Health](w, laser))
		assert.True(t, engine.Has[component.CollisionDamage](w, laser))

		fired := event.Log[event.Fired](w.Events)
		require.Equal(t, 1, fired.Len())
		assert.Equal(t, event.Fired{Shooter: shooter, Projectile: laser}, fired.At(0))
	}

	weapon, _ := engine.Get[component.Weapon](w, shooter)
	assert.False(t, weapon.Fired)
	assert.False(t, weapon.Cooldown.Finished)
	assert.Zero(t, weapon.Cooldown.Elapsed)
}

func TestWeaponHoldsReadinessUntilFired(t *testing.T) {
	w := engine.NewTestWorld()
	shooter := newShooter(w, false)
	sys := NewWeaponSystem()

	engine.RunSystem(w, sys, 1.0)
	assert.Zero(t, engine.GetStore[component.Laser](w).Count())

	weapon, _ := engine.Get[component.Weapon](w, shooter)
	assert.True(t, weapon.Cooldown.Finished, "non-repeating cooldown stays finished")

	weapon.Fired = true
	engine.RunSystem(w, sys, 0.01)
	assert.Equal(t, 1, engine.GetStore[component.Laser](w).Count())
	assert.False(t, engine.Has[component.Sprite](w, core.Entity{Slot: 1, Gen: 1}), "no material table, no sprite")
}

func TestPlayerControl(t *testing.T) {
	w := engine.NewTestWorld()
	provider := &keys{
		held: map[input.Key]bool{input.KeyRight: true},
		just: map[input.Key]bool{input.KeyFire: true},
	}
	engine.AddResource[input.Provider](w.Resources, provider)

	player := engine.SpawnNow(w,
		engine.With(component.Player{Speed: 400}),
		engine.With(component.Transform{Position: vmath.V2(0, -256)}),
		engine.With(component.NewWeapon(vmath.V2(0, 60), 0.4, 0)),
	)
	bystander := engine.SpawnNow(w, engine.With(component.Transform{}))

	engine.RunSystem(w, NewInputSystem(), 0.5)
	engine.RunSystem(w, NewPlayerControlSystem(), 0.5)

	tr, _ := engine.Get[component.Transform](w, player)
	assert.Equal(t, vmath.V2(200, -256), tr.Position)
	weapon, _ := engine.Get[component.Weapon](w, player)
	assert.True(t, weapon.Fired)
	assert.Equal(t, 1, provider.latches)

	other, _ := engine.Get[component.Transform](w, bystander)
	assert.Zero(t, other.Position.X)

	provider.held[input.KeyLeft] = true
	engine.RunSystem(w, NewPlayerControlSystem(), 0.5)
	assert.Equal(t, 200.0, tr.Position.X, "left and right cancel")
}

func TestPlayerControlWithoutProvider(t *testing.T) {
	w := engine.NewTestWorld()
	player := engine.SpawnNow(w,
		engine.With(component.Player{Speed: 400}),
		engine.With(component.Transform{}),
	)
	engine.RunSystem(w, NewPlayerControlSystem(), 1)
	tr, _ := engine.Get[component.Transform](w, player)
	assert.Zero(t, tr.Position.X)
}
