package entity

// Arena is the fixed play field: outer dimensions, the wall set (border
// plus interior obstacles) and the spawn points. Walls are established at
// construction and never mutated during play.
type Arena struct {
	Width  float64
	Height float64
	Walls  []Rect

	PlayerSpawn Point
	DragonSpawn Point
}

// HasLineOfSight returns true if the straight segment between the two
// points crosses no wall.
func (a *Arena) HasLineOfSight(x1, y1, x2, y2 float64) bool {
	for _, w := range a.Walls {
		if SegmentIntersectsRect(x1, y1, x2, y2, w) {
			return false
		}
	}
	return true
}
