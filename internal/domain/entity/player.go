package entity

import "math"

// Shield absorbs flame hits while raised. Durability is clamped to
// [0, Max]; when it reaches zero the shield breaks and cannot be raised
// again until BrokenUntil has elapsed, after which durability is restored.
type Shield struct {
	Durability    float64
	Max           float64
	HitCost       float64
	BreakCooldown float64

	Raised      bool
	BrokenUntil float64
}

// Broken returns true while the post-break cooldown is still running.
func (s *Shield) Broken(now float64) bool {
	return now < s.BrokenUntil
}

// Update applies the raise/lower input for this tick. Raising is refused
// during the break cooldown regardless of input; once the cooldown has
// elapsed a depleted shield recovers to full.
func (s *Shield) Update(want bool, now float64) {
	if s.Broken(now) {
		s.Raised = false
		return
	}
	if s.Durability <= 0 {
		s.Durability = s.Max
	}
	s.Raised = want
}

// Blocking returns true if the shield will absorb a hit right now.
func (s *Shield) Blocking(now float64) bool {
	return s.Raised && !s.Broken(now) && s.Durability > 0
}

// Absorb subtracts one hit's cost, clamping at zero. Reaching zero breaks
// the shield and starts the cooldown.
func (s *Shield) Absorb(now float64) {
	s.Durability -= s.HitCost
	if s.Durability <= 0 {
		s.Durability = 0
		s.Raised = false
		s.BrokenUntil = now + s.BreakCooldown
	}
}

// Player is the knight: walk/sprint speeds, a sprint stamina pool and a
// shield. Movement intent arrives from the input layer each tick.
type Player struct {
	Body

	WalkSpeed   float64
	SprintSpeed float64

	Stamina        float64
	MaxStamina     float64
	StaminaDrain   float64
	StaminaRegen   float64
	SprintRecovery float64

	// SprintDepleted latches when stamina runs dry and holds sprinting off
	// until stamina climbs back to SprintRecovery.
	SprintDepleted bool

	Shield Shield
}

// NewPlayer creates a player at (x, y) with full stamina and shield.
func NewPlayer(x, y, w, h float64) *Player {
	return &Player{
		Body: Body{X: x, Y: y, W: w, H: h},
	}
}

// Steer resolves the movement intent into a velocity vector and updates
// stamina. The intent vector is normalized so diagonals are not faster;
// a zero vector yields zero velocity without dividing by zero. Sprinting
// requires remaining stamina and actual movement; running the pool dry
// locks sprinting out until stamina regenerates back to SprintRecovery,
// so a single regen tick never re-enables it.
func (p *Player) Steer(moveX, moveY float64, sprint bool, dt float64) (vx, vy float64) {
	length := math.Hypot(moveX, moveY)
	if length > 1e-9 {
		moveX /= length
		moveY /= length
	} else {
		moveX, moveY = 0, 0
	}

	moving := moveX != 0 || moveY != 0
	speed := p.WalkSpeed
	if sprint && moving && p.Stamina > 0 && !p.SprintDepleted {
		speed = p.SprintSpeed
		p.Stamina -= p.StaminaDrain * dt
		if p.Stamina <= 0 {
			p.Stamina = 0
			p.SprintDepleted = true
		}
	} else {
		p.Stamina += p.StaminaRegen * dt
		if p.Stamina > p.MaxStamina {
			p.Stamina = p.MaxStamina
		}
		if p.SprintDepleted && p.Stamina >= p.SprintRecovery {
			p.SprintDepleted = false
		}
	}

	return moveX * speed, moveY * speed
}
