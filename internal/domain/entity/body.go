package entity

// Point is a world-space coordinate, used for waypoints and wander targets.
type Point struct {
	X, Y float64
}

// Body is the positional state shared by moving entities.
// Position is the top-left corner of the bounding box in arena pixels.
type Body struct {
	X, Y float64
	W, H float64
}

// Bounds returns the entity's bounding box at its current position.
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Center returns the center of the bounding box.
func (b *Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// SetPos places the body's top-left corner at (x, y).
func (b *Body) SetPos(x, y float64) {
	b.X = x
	b.Y = y
}
