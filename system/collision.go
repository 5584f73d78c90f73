package system

import (
	"github.com/lixenwraith/vi-shooter/component"
	"github.com/lixenwraith/vi-shooter/engine"
	"github.com/lixenwraith/vi-shooter/event"
	"github.com/lixenwraith/vi-shooter/physics"
)

// CollisionSystem detects overlapping boxes and sends Collision events
// Each overlapping pair {A, B} sends (A, B) then (B, A)
type CollisionSystem struct {
	engine.SystemBase
	broad physics.BroadPhase

	// Reused snapshot buffer
	colliders []physics.Collider
}

// NewCollisionSystem creates a detector; nil broad phase uses physics.Pairwise
func NewCollisionSystem(broad physics.BroadPhase) *CollisionSystem {
	if broad == nil {
		broad = physics.Pairwise{}
	}
	return &CollisionSystem{
		SystemBase: engine.NewSystemBase(),
		broad:      broad,
		colliders:  make([]physics.Collider, 0, 64),
	}
}

// Name returns system's name
func (s *CollisionSystem) Name() string {
	return "collision"
}

// Update snapshots every Transform+Extent entity in slot order and emits events per overlap
func (s *CollisionSystem) Update(w *engine.World) {
	s.colliders = s.colliders[:0]
	for e, row := range engine.Query2[component.Transform, component.Extent](w) {
		s.colliders = append(s.colliders, physics.Collider{
			Entity:   e,
			Position: row.A.Position,
			Width:    row.B.Width,
			Height:   row.B.Height,
		})
	}

	log := event.Log[event.Collision](w.Events)
	pairs := s.broad.Pairs(s.colliders)
	for _, p := range pairs {
		a, b := s.colliders[p[0]].Entity, s.colliders[p[1]].Entity
		log.Send(event.Collision{Dealer: a, Receiver: b})
		log.Send(event.Collision{Dealer: b, Receiver: a})
	}

	if len(pairs) > 0 {
		s.Log.Trace().Int("colliders", len(s.colliders)).Int("pairs", len(pairs)).Msg("collisions detected")
	}
}
