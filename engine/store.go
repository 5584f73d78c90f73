package engine

import (
	"fmt"
	"io"
	"iter"
	"reflect"

	"github.com/lixenwraith/vi-shooter/core"
)

// Store is a dense table for component type T indexed by entity slot
// A parallel bitset marks which slots hold a value
// Values only move when the table grows, which happens at command flush,
// so pointers returned by Get stay valid for the rest of the stage
type Store[T any] struct {
	world *World
	id    ComponentID
	typ   reflect.Type
	data  []T
	live  bitset
	count int
}

func newStore[T any](w *World, id ComponentID) *Store[T] {
	return &Store[T]{
		world: w,
		id:    id,
		typ:   reflect.TypeFor[T](),
		data:  make([]T, 0, 64),
	}
}

// ID returns the component tag of T
func (s *Store[T]) ID() ComponentID {
	return s.id
}

// Type returns reflect type of T
func (s *Store[T]) Type() reflect.Type {
	return s.typ
}

// Get returns a pointer to the entity's component
// Absent for missing components and for dead or stale entities
func (s *Store[T]) Get(e core.Entity) (*T, bool) {
	if !s.world.IsAlive(e) || !s.live.test(e.Slot) {
		return nil, false
	}
	return &s.data[e.Slot], true
}

// Has checks if a live entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	return s.world.IsAlive(e) && s.live.test(e.Slot)
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return s.count
}

// All iterates entities holding T in ascending slot order
// Restartable: every range starts from the first slot
func (s *Store[T]) All() iter.Seq2[core.Entity, *T] {
	return func(yield func(core.Entity, *T) bool) {
		s.live.each(func(slot uint32) bool {
			return yield(s.world.entityAt(slot), &s.data[slot])
		})
	}
}

func (s *Store[T]) set(slot uint32, val T) {
	if int(slot) >= len(s.data) {
		grown := make([]T, int(slot)+1, max(int(slot)+1, 2*cap(s.data)))
		copy(grown, s.data)
		s.data = grown
	}
	if !s.live.test(slot) {
		s.live.set(slot)
		s.count++
	}
	s.data[slot] = val
}

func (s *Store[T]) removeSlot(slot uint32) {
	if !s.live.test(slot) {
		return
	}
	var zero T
	s.data[slot] = zero
	s.live.clear(slot)
	s.count--
}

func (s *Store[T]) hasSlot(slot uint32) bool {
	return s.live.test(slot)
}

func (s *Store[T]) eachSlot(fn func(uint32) bool) bool {
	return s.live.each(fn)
}

func (s *Store[T]) writeState(w io.Writer) {
	fmt.Fprintf(w, "%s|", s.typ)
	s.live.each(func(slot uint32) bool {
		fmt.Fprintf(w, "%d=%+v;", slot, s.data[slot])
		return true
	})
}

func (s *Store[T]) reset() {
	clear(s.data)
	s.data = s.data[:0]
	s.live.reset()
	s.count = 0
}
