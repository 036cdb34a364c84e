package system

import (
	"container/heap"

	"github.com/younwookim/lair/internal/domain/entity"
)

// Cell addresses a navigation grid cell.
type Cell struct {
	Col, Row int
}

// 4-connected movement only; diagonal steps could clip inflated corners.
var cardinalOffsets = [4]Cell{
	{Col: 0, Row: -1},
	{Col: 1, Row: 0},
	{Col: 0, Row: 1},
	{Col: -1, Row: 0},
}

type pathNode struct {
	cell   Cell
	g      int
	f      int
	seq    int
	index  int
	parent *pathNode
}

// pathQueue is the A* frontier. Ties on f break on insertion order so the
// search is deterministic for identical input.
type pathQueue []*pathNode

func (pq pathQueue) Len() int { return len(pq) }

func (pq pathQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *pathQueue) Push(x any) {
	node := x.(*pathNode)
	node.index = len(*pq)
	*pq = append(*pq, node)
}

func (pq *pathQueue) Pop() any {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*pq = old[:n-1]
	return node
}

func manhattan(a, b Cell) int {
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	return dc + dr
}

// FindPath runs a 4-connected A* search from start to goal, expansion
// ordered by g + Manhattan distance. Returns the full cell sequence from
// start to goal inclusive, or ok=false when either endpoint is blocked or
// the regions are disconnected.
func FindPath(grid *NavGrid, start, goal Cell) ([]Cell, bool) {
	if grid.IsBlocked(start.Col, start.Row) || grid.IsBlocked(goal.Col, goal.Row) {
		return nil, false
	}

	open := &pathQueue{}
	heap.Init(open)
	seq := 0
	heap.Push(open, &pathNode{cell: start, g: 0, f: manhattan(start, goal), seq: seq})

	gScore := map[int]int{grid.index(start.Col, start.Row): 0}
	closed := make(map[int]struct{})

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		currIdx := grid.index(current.cell.Col, current.cell.Row)
		if _, seen := closed[currIdx]; seen {
			continue
		}
		closed[currIdx] = struct{}{}

		if current.cell == goal {
			return reconstructPath(current), true
		}

		for _, delta := range cardinalOffsets {
			next := Cell{Col: current.cell.Col + delta.Col, Row: current.cell.Row + delta.Row}
			if grid.IsBlocked(next.Col, next.Row) {
				continue
			}
			idx := grid.index(next.Col, next.Row)
			if _, seen := closed[idx]; seen {
				continue
			}
			tentativeG := current.g + 1
			if prev, ok := gScore[idx]; ok && tentativeG >= prev {
				continue
			}
			gScore[idx] = tentativeG
			seq++
			heap.Push(open, &pathNode{
				cell:   next,
				g:      tentativeG,
				f:      tentativeG + manhattan(next, goal),
				seq:    seq,
				parent: current,
			})
		}
	}

	return nil, false
}

func reconstructPath(end *pathNode) []Cell {
	var path []Cell
	for node := end; node != nil; node = node.parent {
		path = append(path, node.cell)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// NearestFreeCell returns c if it is free, otherwise scans expanding rings
// around it up to maxRadius cells and returns the first free cell found.
// Ring cells are visited in a fixed row-major order so the result is
// deterministic.
func NearestFreeCell(grid *NavGrid, c Cell, maxRadius int) (Cell, bool) {
	if !grid.IsBlocked(c.Col, c.Row) {
		return c, true
	}
	for radius := 1; radius <= maxRadius; radius++ {
		for row := c.Row - radius; row <= c.Row+radius; row++ {
			for col := c.Col - radius; col <= c.Col+radius; col++ {
				// ring only: skip the interior already scanned
				if col != c.Col-radius && col != c.Col+radius &&
					row != c.Row-radius && row != c.Row+radius {
					continue
				}
				if !grid.IsBlocked(col, row) {
					return Cell{Col: col, Row: row}, true
				}
			}
		}
	}
	return Cell{}, false
}

// Waypoints converts a cell path into world-space waypoint centers,
// stripping the first cell (the mover's current cell).
func Waypoints(grid *NavGrid, cells []Cell) []entity.Point {
	if len(cells) <= 1 {
		return nil
	}
	points := make([]entity.Point, 0, len(cells)-1)
	for _, c := range cells[1:] {
		x, y := grid.CellCenter(c.Col, c.Row)
		points = append(points, entity.Point{X: x, Y: y})
	}
	return points
}
