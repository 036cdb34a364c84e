package system

import (
	"math"

	"github.com/younwookim/lair/internal/domain/entity"
)

// NavGrid is a fixed-resolution occupancy field over the arena, derived
// once from the wall set. A cell is blocked when a probe rectangle
// centered in it overlaps any wall inflated by the safety margin, so the
// blocked set is a superset of every cell touching an inflated wall.
// Read-only after construction; rebuild by calling BuildNavGrid again if
// the wall set ever changes.
type NavGrid struct {
	Cols     int
	Rows     int
	CellSize float64

	width   float64
	height  float64
	blocked []bool
}

// BuildNavGrid derives the occupancy grid from the arena's walls. margin
// is the wall inflation in pixels, tuned so the dragon never plans a path
// that clips a wall corner.
func BuildNavGrid(arena *entity.Arena, cellSize, margin float64) *NavGrid {
	cols := int(math.Ceil(arena.Width / cellSize))
	rows := int(math.Ceil(arena.Height / cellSize))
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}

	g := &NavGrid{
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		width:    arena.Width,
		height:   arena.Height,
		blocked:  make([]bool, cols*rows),
	}

	inflated := make([]entity.Rect, len(arena.Walls))
	for i, w := range arena.Walls {
		inflated[i] = entity.Rect{
			X: w.X - margin,
			Y: w.Y - margin,
			W: w.W + 2*margin,
			H: w.H + 2*margin,
		}
	}

	probe := cellSize / 2
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cx, cy := g.CellCenter(col, row)
			pr := entity.Rect{X: cx - probe/2, Y: cy - probe/2, W: probe, H: probe}
			for _, w := range inflated {
				if pr.Intersects(w) {
					g.blocked[g.index(col, row)] = true
					break
				}
			}
		}
	}

	return g
}

func (g *NavGrid) index(col, row int) int {
	return row*g.Cols + col
}

// InBounds returns true if the cell lies inside the grid.
func (g *NavGrid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Cols && row < g.Rows
}

// IsBlocked returns true if the cell is occupied. Out-of-bounds cells
// count as blocked.
func (g *NavGrid) IsBlocked(col, row int) bool {
	if !g.InBounds(col, row) {
		return true
	}
	return g.blocked[g.index(col, row)]
}

// WorldToCell maps a world position to its containing cell, clamping
// positions outside the arena onto the nearest edge cell.
func (g *NavGrid) WorldToCell(x, y float64) (int, int) {
	col := int(x / g.CellSize)
	row := int(y / g.CellSize)
	col = clampInt(col, 0, g.Cols-1)
	row = clampInt(row, 0, g.Rows-1)
	return col, row
}

// CellCenter returns the world position of the cell's center.
func (g *NavGrid) CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * g.CellSize, (float64(row) + 0.5) * g.CellSize
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
