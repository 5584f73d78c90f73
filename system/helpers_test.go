package system

import (
	"github.com/lixenwraith/vi-shooter/core"
	"github.com/lixenwraith/vi-shooter/engine"
	"github.com/lixenwraith/vi-shooter/event"
	"github.com/lixenwraith/vi-shooter/input"
)

// keys is a Provider with fixed answers
type keys struct {
	held    map[input.Key]bool
	just    map[input.Key]bool
	latches int
}

func (k *keys) Pressed(key input.Key) bool     { return k.held[key] }
func (k *keys) JustPressed(key input.Key) bool { return k.just[key] }
func (k *keys) Latch()                         { k.latches++ }

func collisions(w *engine.World) []event.Collision {
	l := event.Log[event.Collision](w.Events)
	out := make([]event.Collision, 0, l.Len())
	for i := range l.Len() {
		out = append(out, l.At(i))
	}
	return out
}

func sendCollision(w *engine.World, dealer, receiver core.Entity) {
	event.Send(w.Events, event.Collision{Dealer: dealer, Receiver: receiver})
}
