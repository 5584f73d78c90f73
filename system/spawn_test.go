package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-shooter/component"
	"github.com/lixenwraith/vi-shooter/core"
	"github.com/lixenwraith/vi-shooter/engine"
	"github.com/lixenwraith/vi-shooter/vmath"
)

func TestEnemyWaveOnTimer(t *testing.T) {
	w := engine.NewTestWorld()
	engine.AddResource(w.Resources, NewEnemySpawnTimer(5))
	engine.AddResource(w.Resources, &MaterialHandles{Materials: []Material{{}, {}, {Handle: 3, Width: 93, Height: 84}}})
	sys := NewEnemySpawnSystem(DefaultEnemyWave())

	engine.RunSystem(w, sys, 4.9)
	assert.Zero(t, w.EntityCount())

	engine.RunSystem(w, sys, 0.1)
	require.Equal(t, 7, w.EntityCount())
	assert.Equal(t, 1, sys.Waves())

	var xs []float64
	for e, tr := range engine.Query1[component.Transform](w) {
		xs = append(xs, tr.Position.X)
		assert.Equal(t, 600.0, tr.Position.Y)
		for _, tag := range []core.Tag{
			component.TagEnvironment, component.TagBounded,
			component.TagEnemy, component.TagLoseHealthOnCollide,
		} {
			assert.True(t, w.HasTag(e, tag))
		}
		ext, ok := engine.Get[component.Extent](w, e)
		require.True(t, ok)
		assert.Equal(t, 93.0, ext.Width)
		hp, _ := engine.Get[component.Health](w, e)
		assert.Equal(t, 1, hp.Value)
		dmg, _ := engine.Get[component.CollisionDamage](w, e)
		assert.Equal(t, 1, dmg.Amount)
		db, _ := engine.Get[component.DeathBehavior](w, e)
		assert.Equal(t, component.DeathDespawn, *db)
	}
	assert.Equal(t, []float64{-384, -256, -128, 0, 128, 256, 384}, xs)

	// Repeating: the next wave comes five seconds later, not on the following tick
	engine.RunSystem(w, sys, 0.1)
	assert.Equal(t, 7, w.EntityCount())
	engine.RunSystem(w, sys, 4.9)
	assert.Equal(t, 14, w.EntityCount())
}

func TestEnemyWaveSingleOnLongDelta(t *testing.T) {
	w := engine.NewTestWorld()
	engine.AddResource(w.Resources, NewEnemySpawnTimer(5))
	sys := NewEnemySpawnSystem(DefaultEnemyWave())

	engine.RunSystem(w, sys, 12)
	assert.Equal(t, 7, w.EntityCount())
	assert.False(t, engine.GetStore[component.Sprite](w).Count() > 0, "no material table, no sprite")

	timer := engine.MustGetResource[*EnemySpawnTimer](w.Resources)
	assert.InDelta(t, 2.0, timer.Timer.Elapsed, 1e-9)
}

func TestMovement(t *testing.T) {
	w := engine.NewTestWorld()
	laser := engine.SpawnNow(w,
		engine.With(component.Laser{Speed: 1000}),
		engine.With(component.Transform{Position: vmath.V2(5, 0)}),
	)
	enemy := engine.SpawnNow(w,
		engine.With(component.Transform{Position: vmath.V2(0, 600)}),
		engine.Tagged(component.TagEnvironment),
	)
	still := engine.SpawnNow(w, engine.With(component.Transform{}))

	engine.RunSystem(w, NewLaserMoveSystem(), 0.5)
	engine.RunSystem(w, NewEnvironmentMoveSystem(0), 0.5)

	tr, _ := engine.Get[component.Transform](w, laser)
	assert.Equal(t, vmath.V2(5, 500), tr.Position)
	tr, _ = engine.Get[component.Transform](w, enemy)
	assert.Equal(t, vmath.V2(0, 472), tr.Position)
	tr, _ = engine.Get[component.Transform](w, still)
	assert.Equal(t, vmath.V2(0, 0), tr.Position)
}
