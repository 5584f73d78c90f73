package engine

import (
	"reflect"

	"github.com/lixenwraith/vi-shooter/core"
)

// storeRegistry maps component types to their tables
// ordered keeps registration order so iteration over all stores is deterministic
type storeRegistry struct {
	byType  map[reflect.Type]AnyStore
	ordered []AnyStore
}

func newStoreRegistry() storeRegistry {
	return storeRegistry{byType: make(map[reflect.Type]AnyStore)}
}

// GetStore returns the table for component type T, registering it on first use
// Call once during system construction; the pointer remains valid for the world lifetime
func GetStore[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()
	if s, ok := w.stores.byType[t]; ok {
		return s.(*Store[T])
	}
	s := newStore[T](w, ComponentID(len(w.stores.ordered)))
	w.stores.byType[t] = s
	w.stores.ordered = append(w.stores.ordered, s)
	return s
}

// Get returns a pointer to entity e's component of type T
func Get[T any](w *World, e core.Entity) (*T, bool) {
	return GetStore[T](w).Get(e)
}

// Has reports whether entity e is alive and holds a component of type T
func Has[T any](w *World, e core.Entity) bool {
	return GetStore[T](w).Has(e)
}

// Stores returns all registered tables in registration order
func (w *World) Stores() []AnyStore {
	result := make([]AnyStore, len(w.stores.ordered))
	copy(result, w.stores.ordered)
	return result
}
