package system

import (
	"github.com/lixenwraith/vi-shooter/component"
	"github.com/lixenwraith/vi-shooter/core"
	"github.com/lixenwraith/vi-shooter/engine"
	"github.com/lixenwraith/vi-shooter/event"
)

// DamageOption configures a DamageSystem
type DamageOption func(*DamageSystem)

// RequireReceiverTag only damages receivers carrying tag
func RequireReceiverTag(tag core.Tag) DamageOption {
	return func(s *DamageSystem) {
		s.receiverTag = tag
		s.filterReceiver = true
	}
}

// DamageSystem applies collision damage from unread Collision events
// Events naming a dead entity, a dealer without CollisionDamage or a receiver without Health are skipped
type DamageSystem struct {
	engine.SystemBase

	receiverTag    core.Tag
	filterReceiver bool

	applied int
	skipped int
}

// NewDamageSystem creates a new damage resolver
func NewDamageSystem(opts ...DamageOption) *DamageSystem {
	s := &DamageSystem{SystemBase: engine.NewSystemBase()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns system's name
func (s *DamageSystem) Name() string {
	return "damage"
}

// Stats returns applied and skipped event counts since creation
func (s *DamageSystem) Stats() (applied, skipped int) {
	return s.applied, s.skipped
}

// Update drains the collision log through the shared CollisionReader
func (s *DamageSystem) Update(w *engine.World) {
	reader, ok := engine.GetResource[*CollisionReader](w.Resources)
	if !ok {
		reader = &CollisionReader{}
		engine.AddResource(w.Resources, reader)
	}

	damages := engine.GetStore[component.CollisionDamage](w)
	healths := engine.GetStore[component.Health](w)

	for ev := range reader.Read(event.Log[event.Collision](w.Events)) {
		dmg, ok := damages.Get(ev.Dealer)
		if !ok {
			s.skipped++
			continue
		}
		if s.filterReceiver && !w.HasTag(ev.Receiver, s.receiverTag) {
			s.skipped++
			continue
		}
		hp, ok := healths.Get(ev.Receiver)
		if !ok {
			s.skipped++
			continue
		}
		hp.Value -= dmg.Amount
		s.applied++
	}
}
