package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-shooter/core"
)

type testPos struct{ X, Y float64 }

type testHP struct{ Value int }

const (
	testTagA core.Tag = iota
	testTagB
)

func TestSpawnIsDeferredUntilFlush(t *testing.T) {
	w := NewWorld()

	e := w.Commands().Spawn(With(testPos{X: 1}))
	assert.False(t, e.IsNil())
	assert.False(t, w.IsAlive(e), "spawn must not be visible before flush")
	assert.Equal(t, 0, GetStore[testPos](w).Count())

	applied := w.Flush()
	assert.Equal(t, 1, applied)
	require.True(t, w.IsAlive(e))

	p, ok := Get[testPos](w, e)
	require.True(t, ok)
	assert.Equal(t, 1.0, p.X)
}

func TestDespawnInvalidatesIdentifier(t *testing.T) {
	w := NewWorld()
	e := SpawnNow(w, With(testPos{}), With(testHP{Value: 3}), Tagged(testTagA))

	w.Commands().Despawn(e)
	assert.True(t, w.IsAlive(e), "despawn must not apply before flush")
	w.Flush()

	assert.False(t, w.IsAlive(e))
	assert.False(t, Has[testPos](w, e))
	assert.False(t, Has[testHP](w, e))
	assert.False(t, w.HasTag(e, testTagA))
	assert.Equal(t, 0, w.EntityCount())
}

func TestSlotReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	old := SpawnNow(w, With(testHP{Value: 1}))

	w.Commands().Despawn(old)
	w.Flush()

	fresh := SpawnNow(w, With(testHP{Value: 2}))
	assert.Equal(t, old.Slot, fresh.Slot, "free list must recycle the slot")
	assert.NotEqual(t, old.Gen, fresh.Gen)
	assert.False(t, w.IsAlive(old))
	assert.True(t, w.IsAlive(fresh))

	_, ok := Get[testHP](w, old)
	assert.False(t, ok, "stale identifier must not resolve to the new occupant")
}

func TestDespawnStaleIsNoop(t *testing.T) {
	w := NewWorld()
	e := SpawnNow(w, With(testHP{}))

	w.Commands().Despawn(e)
	w.Commands().Despawn(e)
	w.Flush()

	spawned, despawned := w.Commands().Totals()
	assert.Equal(t, 1, spawned)
	assert.Equal(t, 1, despawned)

	other := SpawnNow(w)
	w.Commands().Despawn(e)
	w.Flush()
	assert.True(t, w.IsAlive(other), "stale despawn must not hit the reused slot")
}

func TestCommandsApplyInOrder(t *testing.T) {
	w := NewWorld()
	e := SpawnNow(w, With(testHP{Value: 1}))

	cmds := w.Commands()
	Insert(cmds, e, testHP{Value: 5})
	cmds.Tag(e, testTagB)
	Remove[testHP](cmds, e)
	Insert(cmds, e, testPos{X: 2})
	cmds.Despawn(e)
	Insert(cmds, e, testHP{Value: 9})
	assert.Equal(t, 6, cmds.Len())

	w.Flush()
	assert.False(t, w.IsAlive(e))
	assert.Equal(t, 0, GetStore[testHP](w).Count(), "edits after despawn are dropped")
	assert.Equal(t, 0, GetStore[testPos](w).Count())
}

func TestTagUntag(t *testing.T) {
	w := NewWorld()
	e := SpawnNow(w, Tagged(testTagA))

	w.Commands().Tag(e, testTagB)
	w.Commands().Untag(e, testTagA)
	assert.True(t, w.HasTag(e, testTagA))
	w.Flush()

	assert.False(t, w.HasTag(e, testTagA))
	assert.True(t, w.HasTag(e, testTagB))
	assert.Equal(t, core.TagMask(0).With(testTagB), w.Tags(e))
}

func TestEntitiesAscendingSlots(t *testing.T) {
	w := NewWorld()
	var want []core.Entity
	for range 5 {
		want = append(want, w.Commands().Spawn())
	}
	w.Flush()

	var got []core.Entity
	for e := range w.Entities() {
		got = append(got, e)
	}
	assert.Equal(t, want, got)
}

func TestClearKeepsOldIdentifiersStale(t *testing.T) {
	w := NewWorld()
	a := SpawnNow(w, With(testPos{}))
	pending := w.Commands().Spawn(With(testPos{}))

	w.Clear()
	assert.Equal(t, 0, w.EntityCount())
	assert.Equal(t, 0, w.Commands().Len())
	assert.False(t, w.IsAlive(a))

	b := SpawnNow(w, With(testPos{}))
	assert.False(t, w.IsAlive(pending))
	assert.NotEqual(t, a, b)
	assert.Equal(t, 1, GetStore[testPos](w).Count())
}

func TestChecksumTracksState(t *testing.T) {
	build := func() *World {
		w := NewWorld()
		SpawnNow(w, With(testPos{X: 1, Y: 2}), With(testHP{Value: 1}), Tagged(testTagA))
		SpawnNow(w, With(testPos{X: 3}))
		return w
	}

	a, b := build(), build()
	assert.Equal(t, a.Checksum(), b.Checksum())

	p, _ := Get[testPos](b, core.Entity{Slot: 1, Gen: 1})
	p.X = 4
	assert.NotEqual(t, a.Checksum(), b.Checksum())
}

func TestResourceStore(t *testing.T) {
	rs := NewResourceStore()

	_, ok := GetResource[*TimeResource](rs)
	assert.False(t, ok)
	assert.Panics(t, func() { MustGetResource[*TimeResource](rs) })

	tr := &TimeResource{}
	AddResource(rs, tr)
	got := MustGetResource[*TimeResource](rs)
	assert.Same(t, tr, got)

	got.Update(0.5)
	got.Update(0.25)
	assert.Equal(t, 0.25, tr.Delta)
	assert.Equal(t, 0.75, tr.Elapsed)
	assert.EqualValues(t, 2, tr.Frame)

	RemoveResource[*TimeResource](rs)
	_, ok = GetResource[*TimeResource](rs)
	assert.False(t, ok)
}
