package system

import (
	"github.com/lixenwraith/vi-shooter/component"
	"github.com/lixenwraith/vi-shooter/engine"
	"github.com/lixenwraith/vi-shooter/parameter"
)

// LaserMoveSystem advances lasers along +Y
type LaserMoveSystem struct {
	engine.SystemBase
}

// NewLaserMoveSystem creates a new laser movement system
func NewLaserMoveSystem() *LaserMoveSystem {
	return &LaserMoveSystem{SystemBase: engine.NewSystemBase()}
}

// Name returns system's name
func (s *LaserMoveSystem) Name() string {
	return "laser_move"
}

// Update moves every Laser by Speed·dt
func (s *LaserMoveSystem) Update(w *engine.World) {
	dt := engine.MustGetResource[*engine.TimeResource](w.Resources).Delta
	for _, row := range engine.Query2[component.Laser, component.Transform](w) {
		row.B.Position.Y += row.A.Speed * dt
	}
}

// EnvironmentMoveSystem scrolls environment entities down at a fixed speed
type EnvironmentMoveSystem struct {
	engine.SystemBase
	speed float64
}

// NewEnvironmentMoveSystem creates a scroll system; speed <= 0 uses the default
func NewEnvironmentMoveSystem(speed float64) *EnvironmentMoveSystem {
	if speed <= 0 {
		speed = parameter.EnvironmentScrollSpeed
	}
	return &EnvironmentMoveSystem{SystemBase: engine.NewSystemBase(), speed: speed}
}

// Name returns system's name
func (s *EnvironmentMoveSystem) Name() string {
	return "environment_move"
}

// Update moves every TagEnvironment entity by -speed·dt on Y
func (s *EnvironmentMoveSystem) Update(w *engine.World) {
	dt := engine.MustGetResource[*engine.TimeResource](w.Resources).Delta
	transforms := engine.GetStore[component.Transform](w)
	for e := range w.Query().With(transforms).WithTag(component.TagEnvironment).Iter() {
		t, _ := transforms.Get(e)
		t.Position.Y -= s.speed * dt
	}
}
