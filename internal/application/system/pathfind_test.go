package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/lair/internal/domain/entity"
)

func TestFindPath_StraightCorridor(t *testing.T) {
	g := testGrid()

	path, ok := FindPath(g, Cell{Col: 2, Row: 12}, Cell{Col: 17, Row: 12})
	require.True(t, ok)
	assert.Equal(t, Cell{Col: 2, Row: 12}, path[0])
	assert.Equal(t, Cell{Col: 17, Row: 12}, path[len(path)-1])
	// Unobstructed row: the path length equals the Manhattan distance.
	assert.Len(t, path, 16)
}

func TestFindPath_RoutesAroundDivider(t *testing.T) {
	g := testGrid()

	start := Cell{Col: 3, Row: 5}
	goal := Cell{Col: 15, Row: 5}
	path, ok := FindPath(g, start, goal)
	require.True(t, ok)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])

	// Manhattan distance is 12, but the divider forces a detour down to
	// row 10 and back: 12 + 2*5 steps.
	assert.Len(t, path, 23)

	for i, c := range path {
		assert.False(t, g.IsBlocked(c.Col, c.Row), "step %d %+v is blocked", i, c)
		if i > 0 {
			assert.Equal(t, 1, manhattan(path[i-1], c), "step %d is not cardinal", i)
		}
	}
}

func TestFindPath_BlockedEndpoints(t *testing.T) {
	g := testGrid()

	_, ok := FindPath(g, Cell{Col: 0, Row: 0}, Cell{Col: 5, Row: 5})
	assert.False(t, ok, "blocked start")

	_, ok = FindPath(g, Cell{Col: 5, Row: 5}, Cell{Col: 9, Row: 3})
	assert.False(t, ok, "blocked goal")
}

func TestFindPath_Unreachable(t *testing.T) {
	// A solid wall spanning the full height splits the arena in two.
	arena := &entity.Arena{
		Width:  400,
		Height: 300,
		Walls: []entity.Rect{
			{X: 190, Y: 0, W: 20, H: 300},
		},
	}
	g := BuildNavGrid(arena, 20, 8)

	_, ok := FindPath(g, Cell{Col: 3, Row: 5}, Cell{Col: 15, Row: 5})
	assert.False(t, ok)
}

func TestFindPath_StartEqualsGoal(t *testing.T) {
	g := testGrid()

	path, ok := FindPath(g, Cell{Col: 5, Row: 5}, Cell{Col: 5, Row: 5})
	require.True(t, ok)
	assert.Equal(t, []Cell{{Col: 5, Row: 5}}, path)
}

func TestNearestFreeCell(t *testing.T) {
	g := testGrid()

	// A free cell maps to itself.
	c, ok := NearestFreeCell(g, Cell{Col: 5, Row: 5}, 4)
	require.True(t, ok)
	assert.Equal(t, Cell{Col: 5, Row: 5}, c)

	// A divider cell remaps to the first free ring cell in scan order.
	c, ok = NearestFreeCell(g, Cell{Col: 9, Row: 5}, 4)
	require.True(t, ok)
	assert.Equal(t, Cell{Col: 8, Row: 4}, c)

	// Radius zero never scans any ring.
	_, ok = NearestFreeCell(g, Cell{Col: 0, Row: 0}, 0)
	assert.False(t, ok)
}

func TestWaypoints(t *testing.T) {
	g := testGrid()

	assert.Nil(t, Waypoints(g, nil))
	assert.Nil(t, Waypoints(g, []Cell{{Col: 5, Row: 5}}), "single-cell path has no waypoints")

	wps := Waypoints(g, []Cell{{Col: 5, Row: 5}, {Col: 6, Row: 5}, {Col: 6, Row: 6}})
	require.Len(t, wps, 2)
	assert.Equal(t, entity.Point{X: 130, Y: 110}, wps[0])
	assert.Equal(t, entity.Point{X: 130, Y: 130}, wps[1])
}
