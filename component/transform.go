package component

import "github.com/lixenwraith/vi-shooter/vmath"

// Transform places an entity in world space
// The origin is the arena centre; +Y points up
type Transform struct {
	Position vmath.Vec2
}

// Extent is the axis-aligned bounding size centred on Transform.Position
// Only entities with both Transform and Extent take part in collision detection
type Extent struct {
	Width  float64
	Height float64
}
