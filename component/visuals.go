package component

import "github.com/lixenwraith/vi-shooter/asset"

// Sprite links an entity to a loaded sprite for the renderer
// The kernel never reads it beyond copying the handle on spawn
type Sprite struct {
	Handle asset.Handle
}
