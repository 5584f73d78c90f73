package system

import (
	"github.com/lixenwraith/vi-shooter/asset"
	"github.com/lixenwraith/vi-shooter/core"
	"github.com/lixenwraith/vi-shooter/event"
)

// EnemySpawnTimer paces enemy waves
type EnemySpawnTimer struct {
	Timer core.Timer
}

// NewEnemySpawnTimer creates a repeating wave timer
func NewEnemySpawnTimer(interval float64) *EnemySpawnTimer {
	return &EnemySpawnTimer{Timer: core.NewTimer(interval, true)}
}

// BoundingBox is the arena rectangle centred on the origin
type BoundingBox struct {
	Width  float64
	Height float64
}

// CollisionReader is the damage resolver's cursor into the Collision log
// Held as a resource so the cursor survives across ticks
type CollisionReader struct {
	event.Reader[event.Collision]
}

// Material is a sprite handle with its size, resolved once at startup
type Material struct {
	Handle asset.Handle
	Width  float64
	Height float64
}

// MaterialHandles is the sprite table indexed by Weapon.Material
type MaterialHandles struct {
	Materials []Material
}

// At returns material i; absent for an out-of-range index
func (m *MaterialHandles) At(i int) (Material, bool) {
	if i < 0 || i >= len(m.Materials) {
		return Material{}, false
	}
	return m.Materials[i], true
}

// LoadMaterials resolves sprite names into a material table in order
func LoadMaterials(server *asset.Server, names ...string) (*MaterialHandles, error) {
	handles, err := server.LoadAll(names...)
	if err != nil {
		return nil, err
	}
	table := &MaterialHandles{Materials: make([]Material, len(handles))}
	for i, h := range handles {
		w, ht, _ := server.Size(h)
		table.Materials[i] = Material{Handle: h, Width: w, Height: ht}
	}
	return table, nil
}
