package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/lair/internal/domain/entity"
	"github.com/younwookim/lair/internal/infrastructure/config"
)

// BehaviorSystem drives the dragon's perception, state transitions, target
// acquisition, path planning and breath attack. One Update per tick.
type BehaviorSystem struct {
	cfg    *config.DragonConfig
	nav    *config.NavConfig
	arena  *entity.Arena
	grid   *NavGrid
	flames *FlameSystem
	rng    *rand.Rand
}

// NewBehaviorSystem creates the dragon behavior system.
func NewBehaviorSystem(cfg *config.DragonConfig, nav *config.NavConfig, arena *entity.Arena, grid *NavGrid, flames *FlameSystem, rng *rand.Rand) *BehaviorSystem {
	return &BehaviorSystem{
		cfg:    cfg,
		nav:    nav,
		arena:  arena,
		grid:   grid,
		flames: flames,
		rng:    rng,
	}
}

// Update runs one perception/behavior/motion tick for the dragon.
//
// Transition rule: line of sight to the player forces Pursue and refreshes
// the last-seen memory; without sight a still-open memory window yields
// Investigate toward the remembered position; otherwise the dragon patrols
// a wander point. Breathing only happens while sight holds.
func (s *BehaviorSystem) Update(d *entity.Dragon, p *entity.Player, now, dt float64) {
	px, py := p.Center()
	dx, dy := d.Center()
	los := s.arena.HasLineOfSight(dx, dy, px, py)

	var targetX, targetY float64
	switch {
	case los:
		d.State = entity.StatePursue
		d.RememberSighting(px, py, now)
		targetX, targetY = px, py
	case d.Remembers(now, s.cfg.MemoryWindow):
		d.State = entity.StateInvestigate
		targetX, targetY = d.LastSeenX, d.LastSeenY
	default:
		d.State = entity.StatePatrol
		targetX, targetY = s.wanderTarget(d, now)
	}

	s.steer(d, targetX, targetY, now, dt)

	if los {
		s.updateBreath(d, px, py, now)
	}
}

// steer moves the dragon toward the target for this tick. While pursuing,
// a distance band keeps the breath cone relevant: back away under
// TooClose, hold inside the band, advance above DesiredDistance.
func (s *BehaviorSystem) steer(d *entity.Dragon, targetX, targetY, now, dt float64) {
	cx, cy := d.Center()

	if d.State == entity.StatePursue {
		dist := math.Hypot(targetX-cx, targetY-cy)
		if dist < s.cfg.TooClose {
			vx, vy := direction(targetX-cx, targetY-cy)
			Move(&d.Body, -vx*d.Speed(), -vy*d.Speed(), dt, s.arena)
			return
		}
		if dist <= s.cfg.DesiredDistance {
			return
		}
	}

	s.planPath(d, cx, cy, targetX, targetY, now)

	// Consume waypoints the dragon has already reached.
	wp, ok := d.CurrentWaypoint()
	for ok && math.Hypot(wp.X-cx, wp.Y-cy) <= s.cfg.ArrivalRadius {
		d.AdvanceWaypoint()
		wp, ok = d.CurrentWaypoint()
	}

	// Exhausted or failed path: steer straight at the target, never stall.
	aimX, aimY := targetX, targetY
	if ok {
		aimX, aimY = wp.X, wp.Y
	}

	vx, vy := direction(aimX-cx, aimY-cy)
	Move(&d.Body, vx*d.Speed(), vy*d.Speed(), dt, s.arena)
}

// planPath replaces the dragon's path when the replan cooldown has elapsed
// or the target moved to a different grid cell. A clear straight line to
// the target skips the grid search entirely.
func (s *BehaviorSystem) planPath(d *entity.Dragon, cx, cy, targetX, targetY, now float64) {
	goalCol, goalRow := s.grid.WorldToCell(targetX, targetY)
	if now < d.NextReplanAt && d.HasGoal && goalCol == d.LastGoalCol && goalRow == d.LastGoalRow {
		return
	}

	cooldown := s.cfg.ReplanCooldownPatrol
	if d.State != entity.StatePatrol {
		cooldown = s.cfg.ReplanCooldownChase
	}
	d.NextReplanAt = now + cooldown
	d.LastGoalCol, d.LastGoalRow = goalCol, goalRow
	d.HasGoal = true

	if s.arena.HasLineOfSight(cx, cy, targetX, targetY) {
		d.SetPath([]entity.Point{{X: targetX, Y: targetY}})
		return
	}

	start, ok := NearestFreeCell(s.grid, cellAt(s.grid, cx, cy), s.nav.GoalRemapRadius)
	if !ok {
		d.SetPath(nil)
		return
	}
	goal, ok := NearestFreeCell(s.grid, Cell{Col: goalCol, Row: goalRow}, s.nav.GoalRemapRadius)
	if !ok {
		d.SetPath(nil)
		return
	}

	cells, ok := FindPath(s.grid, start, goal)
	if !ok {
		d.SetPath(nil)
		return
	}
	d.SetPath(Waypoints(s.grid, cells))
}

// wanderTarget returns the current patrol point, sampling a fresh one when
// the dwell timer expires. Candidates whose local probe overlaps a wall
// are rejected; repeated failure falls back to the arena center.
func (s *BehaviorSystem) wanderTarget(d *entity.Dragon, now float64) (float64, float64) {
	if d.HasWander && now < d.WanderUntil {
		return d.WanderX, d.WanderY
	}

	x, y := s.arena.Width/2, s.arena.Height/2
	for i := 0; i < s.cfg.WanderAttempts; i++ {
		cx := d.W/2 + s.rng.Float64()*(s.arena.Width-d.W)
		cy := d.H/2 + s.rng.Float64()*(s.arena.Height-d.H)
		probe := entity.Rect{X: cx - d.W/2, Y: cy - d.H/2, W: d.W, H: d.H}
		if !s.overlapsWall(probe) {
			x, y = cx, cy
			break
		}
	}

	dwell := s.cfg.WanderDwellMin + s.rng.Float64()*(s.cfg.WanderDwellMax-s.cfg.WanderDwellMin)
	d.WanderX, d.WanderY = x, y
	d.WanderUntil = now + dwell
	d.HasWander = true
	return x, y
}

// updateBreath gates the attack window on its cooldown and emits one cone
// burst per tick while the window is open.
func (s *BehaviorSystem) updateBreath(d *entity.Dragon, targetX, targetY, now float64) {
	if now >= d.BreathReadyAt && now >= d.BreathUntil {
		d.BreathUntil = now + s.flames.cfg.Duration
		d.BreathReadyAt = now + s.flames.cfg.Cooldown
	}
	if now < d.BreathUntil {
		cx, cy := d.Center()
		s.flames.EmitCone(cx, cy, targetX-cx, targetY-cy, now)
	}
}

func (s *BehaviorSystem) overlapsWall(probe entity.Rect) bool {
	for _, w := range s.arena.Walls {
		if probe.Intersects(w) {
			return true
		}
	}
	return false
}

func cellAt(grid *NavGrid, x, y float64) Cell {
	col, row := grid.WorldToCell(x, y)
	return Cell{Col: col, Row: row}
}

// direction normalizes a vector, returning zero for a (near-)zero input
// instead of dividing by zero.
func direction(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length < 1e-9 {
		return 0, 0
	}
	return x / length, y / length
}
