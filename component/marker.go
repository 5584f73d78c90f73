package component

import "github.com/lixenwraith/vi-shooter/core"

// Marker tags, stored in the per-entity tag mask
const (
	// TagBounded entities are despawned when they leave the BoundingBox
	TagBounded core.Tag = iota

	// TagEnemy marks spawned enemy ships
	TagEnemy

	// TagEnvironment entities scroll down with the background
	TagEnvironment

	// TagLoseHealthOnCollide entities receive collision damage
	TagLoseHealthOnCollide
)
