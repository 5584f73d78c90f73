package system

import (
	"github.com/lixenwraith/vi-shooter/component"
	"github.com/lixenwraith/vi-shooter/engine"
	"github.com/lixenwraith/vi-shooter/parameter"
	"github.com/lixenwraith/vi-shooter/vmath"
)

// EnemyWave describes one row of enemies
type EnemyWave struct {
	HalfWidth int     // Columns i in [-HalfWidth, HalfWidth]
	Spacing   float64 // X distance between columns
	Y         float64
	Material  int
	Health    int
	Damage    int
}

// DefaultEnemyWave returns the seven-ship row at the top of the arena
func DefaultEnemyWave() EnemyWave {
	return EnemyWave{
		HalfWidth: parameter.EnemyWaveHalfWidth,
		Spacing:   parameter.EnemyWaveSpacing,
		Y:         parameter.EnemyWaveY,
		Material:  parameter.MaterialEnemy,
		Health:    parameter.StartingHealth,
		Damage:    parameter.CollisionDamage,
	}
}

// EnemySpawnSystem spawns an enemy wave every time the EnemySpawnTimer finishes
type EnemySpawnSystem struct {
	engine.SystemBase
	wave EnemyWave

	waves int
}

// NewEnemySpawnSystem creates a new enemy spawner
func NewEnemySpawnSystem(wave EnemyWave) *EnemySpawnSystem {
	return &EnemySpawnSystem{SystemBase: engine.NewSystemBase(), wave: wave}
}

// Name returns system's name
func (s *EnemySpawnSystem) Name() string {
	return "enemy_spawn"
}

// Waves returns the number of waves spawned
func (s *EnemySpawnSystem) Waves() int {
	return s.waves
}

// Update ticks the spawn timer and queues one wave on completion
// A long delta completing several cycles still yields a single wave
func (s *EnemySpawnSystem) Update(w *engine.World) {
	timer, ok := engine.GetResource[*EnemySpawnTimer](w.Resources)
	if !ok {
		return
	}
	dt := engine.MustGetResource[*engine.TimeResource](w.Resources).Delta
	timer.Timer.Tick(dt)
	if !timer.Timer.Finished {
		return
	}

	var sprite []engine.Bundle
	if materials, ok := engine.GetResource[*MaterialHandles](w.Resources); ok {
		if m, ok := materials.At(s.wave.Material); ok {
			sprite = []engine.Bundle{
				engine.With(component.Sprite{Handle: m.Handle}),
				engine.With(component.Extent{Width: m.Width, Height: m.Height}),
			}
		}
	}

	cmds := w.Commands()
	for i := -s.wave.HalfWidth; i <= s.wave.HalfWidth; i++ {
		bundles := append([]engine.Bundle{
			engine.With(component.Transform{Position: vmath.V2(float64(i)*s.wave.Spacing, s.wave.Y)}),
			engine.With(component.Health{Value: s.wave.Health}),
			engine.With(component.CollisionDamage{Amount: s.wave.Damage}),
			engine.With(component.DeathDespawn),
			engine.Tagged(
				component.TagEnvironment,
				component.TagBounded,
				component.TagEnemy,
				component.TagLoseHealthOnCollide,
			),
		}, sprite...)
		cmds.Spawn(bundles...)
	}
	s.waves++
	s.Log.Debug().Int("wave", s.waves).Int("size", 2*s.wave.HalfWidth+1).Msg("enemy wave queued")
}
