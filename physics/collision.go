package physics

import (
	"math"

	"github.com/lixenwraith/vi-shooter/core"
	"github.com/lixenwraith/vi-shooter/vmath"
)

// Collider is a snapshot of one entity's collision box taken at detection start
type Collider struct {
	Entity   core.Entity
	Position vmath.Vec2
	Width    float64
	Height   float64
}

// Overlap reports whether two colliders overlap
// Strict on both axes: boxes that only touch at an edge do not collide
func Overlap(a, b Collider) bool {
	return vmath.OverlapAABB(a.Position, a.Width, a.Height, b.Position, b.Width, b.Height)
}

// finite reports whether a collider can be placed in space
// Non-finite boxes never satisfy Overlap
func (c Collider) finite() bool {
	for _, v := range [...]float64{c.Position.X, c.Position.Y, c.Width, c.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// BroadPhase finds all overlapping collider pairs
// Pairs are index pairs (i, j) into the input with i < j, sorted by i then j
type BroadPhase interface {
	Pairs(colliders []Collider) [][2]int
}

// Pairwise tests every pair; O(n²) and exact
type Pairwise struct{}

// Pairs implements BroadPhase
func (Pairwise) Pairs(colliders []Collider) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(colliders); i++ {
		for j := i + 1; j < len(colliders); j++ {
			if Overlap(colliders[i], colliders[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}
