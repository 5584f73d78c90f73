package engine

import (
	"iter"
	"sort"

	"github.com/lixenwraith/vi-shooter/core"
)

// QueryBuilder provides a fluent interface for iterating entities by component and tag intersection.
// The query walks the smallest store in ascending slot order and filters through the others,
// so results are deterministic for a given world state.
type QueryBuilder struct {
	world   *World
	stores  []AnyStore
	with    core.TagMask
	without core.TagMask
}

// Query creates a new QueryBuilder.
//
// Example:
//
//	for e := range world.Query().
//	    With(transforms).
//	    WithTag(component.TagBounded).
//	    Iter() {
//	    ...
//	}
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]AnyStore, 0, 4),
	}
}

// With adds a component store to the query filter
func (qb *QueryBuilder) With(store AnyStore) *QueryBuilder {
	qb.stores = append(qb.stores, store)
	return qb
}

// WithTag requires the marker tag
func (qb *QueryBuilder) WithTag(t core.Tag) *QueryBuilder {
	qb.with = qb.with.With(t)
	return qb
}

// WithoutTag excludes entities carrying the marker tag
func (qb *QueryBuilder) WithoutTag(t core.Tag) *QueryBuilder {
	qb.without = qb.without.With(t)
	return qb
}

// Iter returns a lazy sequence of matching entities
// Every range re-evaluates the query against the current world state
func (qb *QueryBuilder) Iter() iter.Seq[core.Entity] {
	filters := make([]AnyStore, len(qb.stores))
	copy(filters, qb.stores)
	w, with, without := qb.world, qb.with, qb.without

	match := func(slot uint32, rest []AnyStore) bool {
		for _, s := range rest {
			if !s.hasSlot(slot) {
				return false
			}
		}
		tags := w.tags[slot]
		return tags&with == with && tags&without == 0
	}

	return func(yield func(core.Entity) bool) {
		// Smallest store first minimizes membership checks
		stores := make([]AnyStore, len(filters))
		copy(stores, filters)
		sort.SliceStable(stores, func(i, j int) bool {
			return stores[i].Count() < stores[j].Count()
		})

		if len(stores) == 0 {
			for slot, m := range w.slots {
				if m.alive && match(uint32(slot), nil) && !yield(w.entityAt(uint32(slot))) {
					return
				}
			}
			return
		}
		stores[0].eachSlot(func(slot uint32) bool {
			if !match(slot, stores[1:]) {
				return true
			}
			return yield(w.entityAt(slot))
		})
	}
}

// Execute collects the query into a slice
func (qb *QueryBuilder) Execute() []core.Entity {
	result := make([]core.Entity, 0, 16)
	for e := range qb.Iter() {
		result = append(result, e)
	}
	return result
}

// Row2 holds the components yielded by Query2
type Row2[A, B any] struct {
	A *A
	B *B
}

// Row3 holds the components yielded by Query3
type Row3[A, B, C any] struct {
	A *A
	B *B
	C *C
}

// Query1 iterates entities holding A
func Query1[A any](w *World) iter.Seq2[core.Entity, *A] {
	return GetStore[A](w).All()
}

// Query2 iterates entities holding both A and B
func Query2[A, B any](w *World) iter.Seq2[core.Entity, Row2[A, B]] {
	sa, sb := GetStore[A](w), GetStore[B](w)
	q := w.Query().With(sa).With(sb)
	return func(yield func(core.Entity, Row2[A, B]) bool) {
		for e := range q.Iter() {
			row := Row2[A, B]{A: &sa.data[e.Slot], B: &sb.data[e.Slot]}
			if !yield(e, row) {
				return
			}
		}
	}
}

// Query3 iterates entities holding A, B and C
func Query3[A, B, C any](w *World) iter.Seq2[core.Entity, Row3[A, B, C]] {
	sa, sb, sc := GetStore[A](w), GetStore[B](w), GetStore[C](w)
	q := w.Query().With(sa).With(sb).With(sc)
	return func(yield func(core.Entity, Row3[A, B, C]) bool) {
		for e := range q.Iter() {
			row := Row3[A, B, C]{A: &sa.data[e.Slot], B: &sb.data[e.Slot], C: &sc.data[e.Slot]}
			if !yield(e, row) {
				return
			}
		}
	}
}
