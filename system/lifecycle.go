package system

import (
	"github.com/lixenwraith/vi-shooter/component"
	"github.com/lixenwraith/vi-shooter/engine"
	"github.com/lixenwraith/vi-shooter/event"
	"github.com/lixenwraith/vi-shooter/vmath"
)

// DeathSystem despawns entities whose health dropped below zero
// Zero health is still alive; DeathNone entities are never despawned
type DeathSystem struct {
	engine.SystemBase
	killed int
}

// NewDeathSystem creates a new death system
func NewDeathSystem() *DeathSystem {
	return &DeathSystem{SystemBase: engine.NewSystemBase()}
}

// Name returns system's name
func (s *DeathSystem) Name() string {
	return "death"
}

// Killed returns the number of despawns queued
func (s *DeathSystem) Killed() int {
	return s.killed
}

// Update queues despawns for every Health < 0 entity with DeathDespawn
func (s *DeathSystem) Update(w *engine.World) {
	cmds := w.Commands()
	for e, row := range engine.Query2[component.Health, component.DeathBehavior](w) {
		if row.A.Value >= 0 || *row.B != component.DeathDespawn {
			continue
		}
		cmds.Despawn(e)
		event.Send(w.Events, event.Despawned{Entity: e, Reason: event.ReasonKilled})
		s.killed++
		s.Log.Debug().Stringer("entity", e).Int("health", row.A.Value).Msg("killed")
	}
}

// BoundsSystem despawns bounded entities that left the BoundingBox
type BoundsSystem struct {
	engine.SystemBase
	removed int
}

// NewBoundsSystem creates a new bounds system
func NewBoundsSystem() *BoundsSystem {
	return &BoundsSystem{SystemBase: engine.NewSystemBase()}
}

// Name returns system's name
func (s *BoundsSystem) Name() string {
	return "bounds"
}

// Removed returns the number of despawns queued
func (s *BoundsSystem) Removed() int {
	return s.removed
}

// Update queues despawns for TagBounded entities outside the box; the border is inside
func (s *BoundsSystem) Update(w *engine.World) {
	bounds, ok := engine.GetResource[*BoundingBox](w.Resources)
	if !ok {
		return
	}

	transforms := engine.GetStore[component.Transform](w)
	cmds := w.Commands()
	for e := range w.Query().With(transforms).WithTag(component.TagBounded).Iter() {
		t, _ := transforms.Get(e)
		if vmath.InsideRect(t.Position, bounds.Width, bounds.Height) {
			continue
		}
		cmds.Despawn(e)
		event.Send(w.Events, event.Despawned{Entity: e, Reason: event.ReasonOutOfBounds})
		s.removed++
	}
}
