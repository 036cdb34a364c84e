package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/lair/internal/domain/entity"
)

// testArena is a 400x300 walled arena with a vertical divider hanging
// from the top wall, open along the bottom. The divider splits the upper
// half into two rooms that only connect below it.
func testArena() *entity.Arena {
	return &entity.Arena{
		Width:  400,
		Height: 300,
		Walls: []entity.Rect{
			{X: 0, Y: 0, W: 400, H: 10},
			{X: 0, Y: 290, W: 400, H: 10},
			{X: 0, Y: 10, W: 10, H: 280},
			{X: 390, Y: 10, W: 10, H: 280},
			{X: 190, Y: 10, W: 20, H: 180},
		},
	}
}

func testGrid() *NavGrid {
	return BuildNavGrid(testArena(), 20, 8)
}

func TestBuildNavGrid_Dimensions(t *testing.T) {
	g := testGrid()

	assert.Equal(t, 20, g.Cols)
	assert.Equal(t, 15, g.Rows)
	assert.Equal(t, 20.0, g.CellSize)
}

func TestNavGrid_BorderBlocked(t *testing.T) {
	g := testGrid()

	for col := 0; col < g.Cols; col++ {
		assert.True(t, g.IsBlocked(col, 0), "top border col %d", col)
		assert.True(t, g.IsBlocked(col, g.Rows-1), "bottom border col %d", col)
	}
	for row := 0; row < g.Rows; row++ {
		assert.True(t, g.IsBlocked(0, row), "left border row %d", row)
		assert.True(t, g.IsBlocked(g.Cols-1, row), "right border row %d", row)
	}
}

func TestNavGrid_DividerBlocked(t *testing.T) {
	g := testGrid()

	// The inflated divider covers cells in columns 9-10 down to row 9.
	for row := 1; row <= 9; row++ {
		assert.True(t, g.IsBlocked(9, row), "divider col 9 row %d", row)
		assert.True(t, g.IsBlocked(10, row), "divider col 10 row %d", row)
	}
	// Open below the divider and clear to either side.
	assert.False(t, g.IsBlocked(9, 10))
	assert.False(t, g.IsBlocked(10, 10))
	assert.False(t, g.IsBlocked(8, 5))
	assert.False(t, g.IsBlocked(11, 5))
}

func TestNavGrid_OutOfBoundsBlocked(t *testing.T) {
	g := testGrid()

	assert.True(t, g.IsBlocked(-1, 5))
	assert.True(t, g.IsBlocked(5, -1))
	assert.True(t, g.IsBlocked(g.Cols, 5))
	assert.True(t, g.IsBlocked(5, g.Rows))
	assert.False(t, g.InBounds(-1, 0))
	assert.True(t, g.InBounds(0, 0))
}

func TestNavGrid_WorldToCell(t *testing.T) {
	g := testGrid()

	col, row := g.WorldToCell(150, 60)
	assert.Equal(t, 7, col)
	assert.Equal(t, 3, row)

	// Positions outside the arena clamp onto the nearest edge cell.
	col, row = g.WorldToCell(-5, -5)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)

	col, row = g.WorldToCell(1000, 1000)
	assert.Equal(t, g.Cols-1, col)
	assert.Equal(t, g.Rows-1, row)
}

func TestNavGrid_CellCenter(t *testing.T) {
	g := testGrid()

	x, y := g.CellCenter(0, 0)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 10.0, y)

	x, y = g.CellCenter(7, 3)
	assert.Equal(t, 150.0, x)
	assert.Equal(t, 70.0, y)
}

func TestNavGrid_WorldToCellCenterRoundTrip(t *testing.T) {
	g := testGrid()

	x, y := g.CellCenter(12, 8)
	col, row := g.WorldToCell(x, y)
	require.Equal(t, 12, col)
	require.Equal(t, 8, row)
}
