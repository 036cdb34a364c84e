package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/lair/internal/domain/entity"
	"github.com/younwookim/lair/internal/infrastructure/config"
)

// FlameSystem owns the live breath particles: cone emission, per-tick
// ballistic motion and collision resolution against walls and the player.
type FlameSystem struct {
	cfg    *config.BreathConfig
	arena  *entity.Arena
	rng    *rand.Rand
	flames []*entity.Flame
}

// NewFlameSystem creates a flame system over the given arena.
func NewFlameSystem(cfg *config.BreathConfig, arena *entity.Arena, rng *rand.Rand) *FlameSystem {
	return &FlameSystem{
		cfg:    cfg,
		arena:  arena,
		rng:    rng,
		flames: make([]*entity.Flame, 0, 64),
	}
}

// Flames returns the live particle collection for rendering.
func (s *FlameSystem) Flames() []*entity.Flame {
	return s.flames
}

// Clear removes every live particle.
func (s *FlameSystem) Clear() {
	s.flames = s.flames[:0]
}

// Spawn adds one particle to the live set.
func (s *FlameSystem) Spawn(f *entity.Flame) {
	s.flames = append(s.flames, f)
}

// EmitCone emits one burst: N particles evenly spread across the cone's
// angular range around the aim direction, each with small angular jitter
// and speed/size variance, launched from a standoff distance along the aim
// so they never collide with the emitter itself. A zero aim vector emits
// nothing.
func (s *FlameSystem) EmitCone(originX, originY, aimX, aimY, now float64) {
	if math.Hypot(aimX, aimY) < 1e-9 {
		return
	}

	base := math.Atan2(aimY, aimX)
	half := s.cfg.HalfAngleDeg * math.Pi / 180
	jitter := s.cfg.JitterDeg * math.Pi / 180
	n := s.cfg.ParticlesPerTick
	if n <= 0 {
		return
	}

	for i := 0; i < n; i++ {
		frac := 0.5
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		angle := base - half + 2*half*frac + (s.rng.Float64()*2-1)*jitter
		speed := s.cfg.Speed + (s.rng.Float64()*2-1)*s.cfg.SpeedJitter
		radius := s.cfg.Radius + (s.rng.Float64()*2-1)*s.cfg.RadiusJitter

		s.Spawn(&entity.Flame{
			X:      originX + math.Cos(base)*s.cfg.Standoff,
			Y:      originY + math.Sin(base)*s.cfg.Standoff,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			Radius: radius,
			BornAt: now,
			TTL:    s.cfg.TTL,
		})
	}
}

// Update advances every live particle and resolves its terminal
// conditions: TTL expiry, wall extinguish, or player hit. A raised shield
// absorbs the hit at a fixed durability cost; otherwise the hit is fatal
// and reported to the caller. Each particle sees at most one terminal
// event per tick; survivors are compacted in place.
func (s *FlameSystem) Update(p *entity.Player, now, dt float64) (burned bool) {
	playerRect := p.Bounds()
	kept := s.flames[:0]

	for _, f := range s.flames {
		f.Advance(dt)

		if f.Expired(now) {
			continue
		}

		probe := f.Probe()
		if s.hitsWall(probe) {
			continue
		}

		if probe.Intersects(playerRect) || playerRect.Contains(f.X, f.Y) {
			if p.Shield.Blocking(now) {
				p.Shield.Absorb(now)
			} else {
				burned = true
			}
			continue
		}

		kept = append(kept, f)
	}

	// nil out the tail so dropped particles don't linger
	for i := len(kept); i < len(s.flames); i++ {
		s.flames[i] = nil
	}
	s.flames = kept
	return burned
}

func (s *FlameSystem) hitsWall(probe entity.Rect) bool {
	for _, w := range s.arena.Walls {
		if probe.Intersects(w) {
			return true
		}
	}
	return false
}
