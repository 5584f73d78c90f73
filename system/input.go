package system

import (
	"github.com/lixenwraith/vi-shooter/engine"
	"github.com/lixenwraith/vi-shooter/input"
)

// InputSystem latches the input provider once per tick
// Must run first in the update stage so every system sees the same snapshot
type InputSystem struct {
	engine.SystemBase
}

// NewInputSystem creates a new input latch system
func NewInputSystem() *InputSystem {
	return &InputSystem{SystemBase: engine.NewSystemBase()}
}

// Name returns system's name
func (s *InputSystem) Name() string {
	return "input"
}

// Update latches the provider resource, if any
func (s *InputSystem) Update(w *engine.World) {
	if p, ok := engine.GetResource[input.Provider](w.Resources); ok {
		p.Latch()
	}
}
