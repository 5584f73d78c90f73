package vmath

import "math"

// OverlapAABB reports whether two centred axis-aligned boxes overlap
// Touching edges do not count: the test is strict on both axes
func OverlapAABB(posA Vec2, wA, hA float64, posB Vec2, wB, hB float64) bool {
	return math.Abs(posA.X-posB.X) < (wA+wB)/2 &&
		math.Abs(posA.Y-posB.Y) < (hA+hB)/2
}

// InsideRect reports whether p lies within the rectangle of the given size centred on the origin
// Points on the border are inside
func InsideRect(p Vec2, width, height float64) bool {
	return p.X >= -width/2 && p.X <= width/2 &&
		p.Y >= -height/2 && p.Y <= height/2
}
