package entity

// Rect is an axis-aligned rectangle in arena pixels.
// Walls are immutable Rects; entity bounding boxes are rebuilt from the
// entity position every tick.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects returns true if the two rectangles overlap on both axes.
// Comparison is strict: rectangles that merely touch edges do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Contains returns true if the point (x, y) lies inside the rectangle,
// edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// ResolveStaticCollision pushes mover out of obstacle along the axis of
// smaller overlap. No-op when the two rectangles are already separated.
func ResolveStaticCollision(mover *Rect, obstacle Rect) {
	if !mover.Intersects(obstacle) {
		return
	}

	overlapX := min(mover.Right(), obstacle.Right()) - max(mover.X, obstacle.X)
	overlapY := min(mover.Bottom(), obstacle.Bottom()) - max(mover.Y, obstacle.Y)

	mcx, mcy := mover.Center()
	ocx, ocy := obstacle.Center()

	if overlapX < overlapY {
		if mcx < ocx {
			mover.X -= overlapX
		} else {
			mover.X += overlapX
		}
	} else {
		if mcy < ocy {
			mover.Y -= overlapY
		} else {
			mover.Y += overlapY
		}
	}
}

// SegmentIntersectsRect reports whether the segment (x1,y1)-(x2,y2) touches
// the rectangle. Endpoints inside the rectangle count as intersections;
// otherwise the segment is clipped against the rectangle's four half-plane
// constraints (Liang-Barsky) and intersects iff the admissible parameter
// range stays non-empty. A zero delta on an axis is no constraint unless
// the segment already lies outside that slab, so degenerate segments are
// safe.
func SegmentIntersectsRect(x1, y1, x2, y2 float64, r Rect) bool {
	if r.Contains(x1, y1) || r.Contains(x2, y2) {
		return true
	}

	dx := x2 - x1
	dy := y2 - y1
	t0, t1 := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}

	return clip(-dx, x1-r.X) &&
		clip(dx, r.Right()-x1) &&
		clip(-dy, y1-r.Y) &&
		clip(dy, r.Bottom()-y1)
}
