package engine

import (
	"io"
	"reflect"

	"github.com/lixenwraith/vi-shooter/core"
)

// ComponentID is the stable tag assigned to a component type in registration order
type ComponentID uint16

// AnyStore provides type-erased operations for lifecycle management
// This interface allows World to manage all stores uniformly
// for operations like entity destruction without knowing the concrete type
type AnyStore interface {
	// ID returns the component tag of the stored type
	ID() ComponentID

	// Type returns the stored component type
	Type() reflect.Type

	// Has checks if a live entity has this component
	Has(e core.Entity) bool

	// Count returns the number of entities with this component
	Count() int

	removeSlot(slot uint32)
	hasSlot(slot uint32) bool
	eachSlot(fn func(uint32) bool) bool
	writeState(w io.Writer)
	reset()
}
