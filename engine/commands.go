package engine

import (
	"github.com/lixenwraith/vi-shooter/core"
)

// Bundle attaches one piece of data to an entity while a spawn is applied
type Bundle func(w *World, e core.Entity)

// With bundles a component value for Commands.Spawn
//
// Example:
//
//	cmds.Spawn(
//	    engine.With(component.Transform{Position: pos}),
//	    engine.With(component.Health{Value: 1}),
//	    engine.Tagged(component.TagBounded),
//	)
func With[T any](component T) Bundle {
	return func(w *World, e core.Entity) {
		GetStore[T](w).set(e.Slot, component)
	}
}

// Tagged bundles marker tags for Commands.Spawn
func Tagged(tags ...core.Tag) Bundle {
	return func(w *World, e core.Entity) {
		for _, t := range tags {
			w.tags[e.Slot] = w.tags[e.Slot].With(t)
		}
	}
}

type commandKind uint8

const (
	cmdSpawn commandKind = iota
	cmdDespawn
	cmdEdit
)

type command struct {
	kind    commandKind
	entity  core.Entity
	bundles []Bundle
	edit    func(w *World)
}

// Commands buffers structural mutations until the next stage boundary
// Systems enumerating a table never observe insertions or removals they or their peers queued in the same stage
type Commands struct {
	world *World
	queue []command

	spawned   int
	despawned int
}

func newCommands(w *World) *Commands {
	return &Commands{
		world: w,
		queue: make([]command, 0, 64),
	}
}

// Spawn reserves an identifier and queues the entity creation
// The returned entity is not alive, and its components are not visible, until the buffer is flushed
func (c *Commands) Spawn(bundles ...Bundle) core.Entity {
	e := c.world.reserve()
	c.queue = append(c.queue, command{kind: cmdSpawn, entity: e, bundles: bundles})
	return e
}

// Despawn queues entity removal; applying it is a no-op for dead or stale identifiers
func (c *Commands) Despawn(e core.Entity) {
	c.queue = append(c.queue, command{kind: cmdDespawn, entity: e})
}

// Tag queues adding a marker tag to a live entity
func (c *Commands) Tag(e core.Entity, t core.Tag) {
	c.edit(e, func(w *World) {
		w.tags[e.Slot] = w.tags[e.Slot].With(t)
	})
}

// Untag queues removing a marker tag
func (c *Commands) Untag(e core.Entity, t core.Tag) {
	c.edit(e, func(w *World) {
		w.tags[e.Slot] = w.tags[e.Slot].Without(t)
	})
}

// Insert queues adding or replacing a component on a live entity
func Insert[T any](c *Commands, e core.Entity, component T) {
	c.edit(e, func(w *World) {
		GetStore[T](w).set(e.Slot, component)
	})
}

// Remove queues removing a component from a live entity
func Remove[T any](c *Commands, e core.Entity) {
	c.edit(e, func(w *World) {
		GetStore[T](w).removeSlot(e.Slot)
	})
}

// Len returns the number of queued commands
func (c *Commands) Len() int {
	return len(c.queue)
}

func (c *Commands) edit(e core.Entity, fn func(w *World)) {
	c.queue = append(c.queue, command{kind: cmdEdit, entity: e, edit: fn})
}

// apply executes queued commands in FIFO order
// Edits targeting an entity that is no longer alive are dropped
func (c *Commands) apply() int {
	if len(c.queue) == 0 {
		return 0
	}

	w := c.world
	queue := c.queue
	c.queue = c.queue[len(c.queue):]

	for i := range queue {
		cmd := &queue[i]
		switch cmd.kind {
		case cmdSpawn:
			if w.activate(cmd.entity) {
				for _, b := range cmd.bundles {
					b(w, cmd.entity)
				}
				c.spawned++
				w.Log.Debug().Stringer("entity", cmd.entity).Msg("spawned")
			}
		case cmdDespawn:
			if w.despawn(cmd.entity) {
				c.despawned++
				w.Log.Debug().Stringer("entity", cmd.entity).Msg("despawned")
			}
		case cmdEdit:
			if w.IsAlive(cmd.entity) {
				cmd.edit(w)
			}
		}
		cmd.bundles = nil
		cmd.edit = nil
	}

	if len(c.queue) == 0 {
		c.queue = queue[:0]
	}
	return len(queue)
}

// discard drops queued commands without applying them
func (c *Commands) discard() {
	c.queue = c.queue[:0]
}

// Totals returns the number of spawns and despawns applied since the world was created
func (c *Commands) Totals() (spawned, despawned int) {
	return c.spawned, c.despawned
}
