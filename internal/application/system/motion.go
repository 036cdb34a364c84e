package system

import "github.com/younwookim/lair/internal/domain/entity"

// Move integrates the body's position by velocity, resolves the resulting
// bounding box against every wall in list order, then clamps it inside the
// arena. Used identically for the player and the dragon; only the velocity
// differs. Wall-by-wall resolution is order-dependent for an entity
// overlapping two walls at once, but always ends outside all walls for
// convex non-overlapping wall sets.
func Move(b *entity.Body, vx, vy, dt float64, arena *entity.Arena) {
	b.X += vx * dt
	b.Y += vy * dt

	r := b.Bounds()
	for _, w := range arena.Walls {
		entity.ResolveStaticCollision(&r, w)
	}

	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	if r.X+r.W > arena.Width {
		r.X = arena.Width - r.W
	}
	if r.Y+r.H > arena.Height {
		r.Y = arena.Height - r.H
	}

	b.X = r.X
	b.Y = r.Y
}
