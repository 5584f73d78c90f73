package physics

import (
	"math"
	"slices"
)

// MaxGridDim caps the number of cells per axis; the cell size grows to fit wider spreads
const MaxGridDim = 128

// Grid is a uniform-grid broad phase over a dense 2D cell array
// It returns exactly the pairs Pairwise returns, in the same order
type Grid struct {
	// CellSize is the preferred cell edge in world units; 0 derives it from the largest collider
	CellSize float64

	cols, rows int
	originX    float64
	originY    float64
	size       float64
	cells      [][]int32 // 1D array: index = y*cols + x
}

// NewGrid creates a grid broad phase
func NewGrid(cellSize float64) *Grid {
	return &Grid{CellSize: cellSize}
}

// Pairs implements BroadPhase
func (g *Grid) Pairs(colliders []Collider) [][2]int {
	if len(colliders) < 2 {
		return nil
	}
	switch g.layout(colliders) {
	case layoutEmpty:
		return nil
	case layoutOverflow:
		return Pairwise{}.Pairs(colliders)
	}

	for i, c := range colliders {
		if !c.finite() {
			continue
		}
		x0, y0, x1, y1 := g.span(c)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				idx := y*g.cols + x
				g.cells[idx] = append(g.cells[idx], int32(i))
			}
		}
	}

	var pairs [][2]int
	for _, cell := range g.cells {
		for a := 0; a < len(cell); a++ {
			for b := a + 1; b < len(cell); b++ {
				i, j := int(cell[a]), int(cell[b])
				if Overlap(colliders[i], colliders[j]) {
					pairs = append(pairs, [2]int{i, j})
				}
			}
		}
	}

	// Cells are filled in index order so i < j already holds; a pair spanning several cells repeats
	slices.SortFunc(pairs, func(p, q [2]int) int {
		if p[0] != q[0] {
			return p[0] - q[0]
		}
		return p[1] - q[1]
	})
	return slices.Compact(pairs)
}

type layoutResult uint8

const (
	layoutReady layoutResult = iota
	layoutEmpty    // No finite collider
	layoutOverflow // Region extent overflows float64; cells cannot be indexed
)

// layout sizes the grid to the bounding region of the finite colliders and clears cells
func (g *Grid) layout(colliders []Collider) layoutResult {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	largest := 0.0
	for _, c := range colliders {
		if !c.finite() {
			continue
		}
		hw, hh := halfExtent(c)
		minX = math.Min(minX, c.Position.X-hw)
		minY = math.Min(minY, c.Position.Y-hh)
		maxX = math.Max(maxX, c.Position.X+hw)
		maxY = math.Max(maxY, c.Position.Y+hh)
		largest = math.Max(largest, 2*math.Max(hw, hh))
	}
	if minX > maxX {
		return layoutEmpty
	}
	if !isFinite(minX) || !isFinite(maxX) || !isFinite(minY) || !isFinite(maxY) ||
		!isFinite(maxX-minX) || !isFinite(maxY-minY) || !isFinite(largest) {
		return layoutOverflow
	}

	size := g.CellSize
	if size <= 0 {
		size = largest
	}
	if size <= 0 {
		size = 1
	}
	spread := math.Max(maxX-minX, maxY-minY)
	if spread/size >= MaxGridDim {
		size = spread / (MaxGridDim - 1)
	}

	g.size = size
	g.originX, g.originY = minX, minY
	g.cols = int((maxX-minX)/size) + 1
	g.rows = int((maxY-minY)/size) + 1

	n := g.cols * g.rows
	if g.cols <= 0 || g.rows <= 0 || n <= 0 {
		return layoutOverflow
	}
	if cap(g.cells) < n {
		g.cells = make([][]int32, n)
	}
	g.cells = g.cells[:n]
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	return layoutReady
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// span returns the inclusive cell range covered by a collider's closed box
func (g *Grid) span(c Collider) (x0, y0, x1, y1 int) {
	hw, hh := halfExtent(c)
	x0 = g.clampCol(int((c.Position.X - hw - g.originX) / g.size))
	x1 = g.clampCol(int((c.Position.X + hw - g.originX) / g.size))
	y0 = g.clampRow(int((c.Position.Y - hh - g.originY) / g.size))
	y1 = g.clampRow(int((c.Position.Y + hh - g.originY) / g.size))
	return
}

// halfExtent treats negative sizes as a point; such a box can only overlap one containing its centre
func halfExtent(c Collider) (float64, float64) {
	return math.Max(c.Width, 0) / 2, math.Max(c.Height, 0) / 2
}

func (g *Grid) clampCol(x int) int {
	return max(0, min(x, g.cols-1))
}

func (g *Grid) clampRow(y int) int {
	return max(0, min(y, g.rows-1))
}
