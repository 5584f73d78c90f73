package engine

import (
	"iter"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-shooter/core"
	"github.com/lixenwraith/vi-shooter/event"
)

// slotMeta tracks the state of one entity slot
type slotMeta struct {
	gen      uint32
	alive    bool
	reserved bool // handed out by Commands.Spawn, not yet applied
}

// World contains all entities, their components, resources and event logs
// It is the simulation context passed to every system; a World has a single owner per tick
type World struct {
	slots []slotMeta
	free  []uint32 // LIFO stack of recycled slots
	tags  []core.TagMask
	alive int

	stores storeRegistry

	// Resources holds process-wide singletons (timers, bounds, cursors, handle tables)
	Resources *ResourceStore

	// Events holds one append log per event type
	Events *event.Bus

	// Log is the world logger; systems receive a named sub-logger from the Scheduler
	Log zerolog.Logger

	commands *Commands
}

// WorldOption configures a World at construction
type WorldOption func(*World)

// WithLogger sets the world logger
func WithLogger(log zerolog.Logger) WorldOption {
	return func(w *World) {
		w.Log = log
	}
}

// WithCapacity pre-allocates slot metadata for n entities
func WithCapacity(n int) WorldOption {
	return func(w *World) {
		w.slots = make([]slotMeta, 0, n)
		w.tags = make([]core.TagMask, 0, n)
	}
}

// NewWorld creates an empty world
func NewWorld(opts ...WorldOption) *World {
	w := &World{
		slots:     make([]slotMeta, 0, 256),
		free:      make([]uint32, 0, 64),
		tags:      make([]core.TagMask, 0, 256),
		stores:    newStoreRegistry(),
		Resources: NewResourceStore(),
		Events:    event.NewBus(),
		Log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.commands = newCommands(w)
	return w
}

// Commands returns the world command buffer
// Structural changes queued here are applied at the next Flush (stage boundary)
func (w *World) Commands() *Commands {
	return w.commands
}

// IsAlive reports whether e refers to a live entity
// Stale identifiers (older generation) and reserved-but-unapplied spawns are not alive
func (w *World) IsAlive(e core.Entity) bool {
	if int(e.Slot) >= len(w.slots) {
		return false
	}
	m := w.slots[e.Slot]
	return m.alive && m.gen == e.Gen
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.alive
}

// Entities iterates live entities in ascending slot order
func (w *World) Entities() iter.Seq[core.Entity] {
	return func(yield func(core.Entity) bool) {
		for slot, m := range w.slots {
			if m.alive && !yield(core.Entity{Slot: uint32(slot), Gen: m.gen}) {
				return
			}
		}
	}
}

// HasTag reports whether a live entity carries tag t
func (w *World) HasTag(e core.Entity, t core.Tag) bool {
	return w.IsAlive(e) && w.tags[e.Slot].Has(t)
}

// Tags returns the tag mask of a live entity
func (w *World) Tags(e core.Entity) core.TagMask {
	if !w.IsAlive(e) {
		return 0
	}
	return w.tags[e.Slot]
}

// Flush applies all buffered commands in FIFO order and returns how many were applied
func (w *World) Flush() int {
	return w.commands.apply()
}

// Clear despawns every entity and resets all component tables
// Generations keep increasing so identifiers from before Clear stay stale
func (w *World) Clear() {
	for slot := range w.slots {
		if w.slots[slot].alive || w.slots[slot].reserved {
			w.release(uint32(slot))
		}
	}
	for _, s := range w.stores.ordered {
		s.reset()
	}
	w.commands.discard()
}

// reserve hands out an identifier for a spawn that becomes alive at flush
func (w *World) reserve() core.Entity {
	var slot uint32
	if n := len(w.free); n > 0 {
		slot = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		slot = uint32(len(w.slots))
		w.slots = append(w.slots, slotMeta{gen: 1})
		w.tags = append(w.tags, 0)
	}
	w.slots[slot].reserved = true
	return core.Entity{Slot: slot, Gen: w.slots[slot].gen}
}

// activate makes a reserved identifier alive
func (w *World) activate(e core.Entity) bool {
	if int(e.Slot) >= len(w.slots) {
		return false
	}
	m := &w.slots[e.Slot]
	if !m.reserved || m.gen != e.Gen {
		return false
	}
	m.reserved = false
	m.alive = true
	w.alive++
	return true
}

// despawn removes a live entity from every table; dead or stale ids are ignored
func (w *World) despawn(e core.Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	for _, s := range w.stores.ordered {
		s.removeSlot(e.Slot)
	}
	w.release(e.Slot)
	return true
}

// release bumps the slot generation and returns it to the free list
func (w *World) release(slot uint32) {
	m := &w.slots[slot]
	if m.alive {
		w.alive--
	}
	m.alive = false
	m.reserved = false
	m.gen++
	if m.gen == 0 {
		m.gen = 1
	}
	w.tags[slot] = 0
	w.free = append(w.free, slot)
}

// entityAt builds the current identifier for an occupied slot
func (w *World) entityAt(slot uint32) core.Entity {
	return core.Entity{Slot: slot, Gen: w.slots[slot].gen}
}
