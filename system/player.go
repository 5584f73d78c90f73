package system

import (
	"github.com/lixenwraith/vi-shooter/component"
	"github.com/lixenwraith/vi-shooter/engine"
	"github.com/lixenwraith/vi-shooter/input"
)

// PlayerControlSystem moves player ships horizontally and latches weapon fire
type PlayerControlSystem struct {
	engine.SystemBase
}

// NewPlayerControlSystem creates a new player control system
func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{SystemBase: engine.NewSystemBase()}
}

// Name returns system's name
func (s *PlayerControlSystem) Name() string {
	return "player_control"
}

// Update applies input to every Player with a Transform
func (s *PlayerControlSystem) Update(w *engine.World) {
	provider, ok := engine.GetResource[input.Provider](w.Resources)
	if !ok {
		return
	}
	dt := engine.MustGetResource[*engine.TimeResource](w.Resources).Delta

	movement := 0.0
	if provider.Pressed(input.KeyLeft) {
		movement -= 1
	}
	if provider.Pressed(input.KeyRight) {
		movement += 1
	}
	fired := provider.JustPressed(input.KeyFire)

	weapons := engine.GetStore[component.Weapon](w)
	for e, row := range engine.Query2[component.Player, component.Transform](w) {
		row.B.Position.X += movement * row.A.Speed * dt

		// Fired stays latched until the weapon can shoot
		if weapon, ok := weapons.Get(e); ok && fired {
			weapon.Fired = true
		}
	}
}
