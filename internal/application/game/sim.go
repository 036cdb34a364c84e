// Package game owns the per-tick simulation: player motion, dragon
// behavior, flame resolution and the win/loss evaluation. The presentation
// layer feeds it Intents and a delta time and reads the resulting state.
package game

import (
	"math/rand"

	"github.com/younwookim/lair/internal/application/state"
	"github.com/younwookim/lair/internal/application/system"
	"github.com/younwookim/lair/internal/domain/entity"
	"github.com/younwookim/lair/internal/infrastructure/config"
)

// Simulation holds all round-owned mutable state. Single-threaded: one
// Step per rendered frame, no background work. All cooldowns and windows
// are timestamp comparisons against the internal clock.
type Simulation struct {
	cfg   *config.GameConfig
	arena *entity.Arena
	grid  *system.NavGrid

	player   *entity.Player
	dragon   *entity.Dragon
	flames   *system.FlameSystem
	behavior *system.BehaviorSystem

	clock float64
	round state.RoundState
	cause state.EndCause

	seed int64
	rng  *rand.Rand
}

// NewSimulation builds a round over the given arena. The navigation grid
// is derived once here; seed makes every run reproducible.
func NewSimulation(cfg *config.GameConfig, arena *entity.Arena, seed int64) *Simulation {
	rng := rand.New(rand.NewSource(seed))
	grid := system.BuildNavGrid(arena, cfg.Nav.CellSize, cfg.Nav.InflateMargin)
	flames := system.NewFlameSystem(&cfg.Breath, arena, rng)

	s := &Simulation{
		cfg:      cfg,
		arena:    arena,
		grid:     grid,
		flames:   flames,
		behavior: system.NewBehaviorSystem(&cfg.Dragon, &cfg.Nav, arena, grid, flames, rng),
		seed:     seed,
		rng:      rng,
	}
	s.spawn()
	return s
}

// spawn (re)creates the entities at their configured starting positions
// with full stamina and shield, no path and no memory.
func (s *Simulation) spawn() {
	pc := s.cfg.Player
	s.player = entity.NewPlayer(s.arena.PlayerSpawn.X, s.arena.PlayerSpawn.Y, pc.Width, pc.Height)
	s.player.WalkSpeed = pc.WalkSpeed
	s.player.SprintSpeed = pc.SprintSpeed
	s.player.Stamina = pc.Stamina.Max
	s.player.MaxStamina = pc.Stamina.Max
	s.player.StaminaDrain = pc.Stamina.DrainPerSec
	s.player.StaminaRegen = pc.Stamina.RegenPerSec
	s.player.SprintRecovery = pc.Stamina.SprintRecovery
	s.player.Shield = entity.Shield{
		Durability:    pc.Shield.Max,
		Max:           pc.Shield.Max,
		HitCost:       pc.Shield.HitCost,
		BreakCooldown: pc.Shield.BreakCooldown,
	}

	dc := s.cfg.Dragon
	s.dragon = entity.NewDragon(s.arena.DragonSpawn.X, s.arena.DragonSpawn.Y, dc.Width, dc.Height)
	s.dragon.PatrolSpeed = dc.PatrolSpeed
	s.dragon.ChaseSpeed = dc.ChaseSpeed
}

// Step advances the round by dt seconds, clamped to the configured
// per-tick maximum to bound integration error during frame hitches.
// Update order: player input/motion, dragon behavior/motion, flame
// resolution, terminal checks. No-op once the round has ended.
func (s *Simulation) Step(in system.Intent, dt float64) {
	if s.round != state.RoundRunning || dt <= 0 {
		return
	}
	if limit := s.cfg.Round.MaxTickDelta; limit > 0 && dt > limit {
		dt = limit
	}

	s.clock += dt
	now := s.clock

	s.player.Shield.Update(in.Shield, now)
	vx, vy := s.player.Steer(in.MoveX, in.MoveY, in.Sprint, dt)
	system.Move(&s.player.Body, vx, vy, dt, s.arena)

	s.behavior.Update(s.dragon, s.player, now, dt)

	if s.flames.Update(s.player, now, dt) {
		s.round = state.RoundLost
		s.cause = state.CauseBurned
		return
	}

	if s.dragon.Bounds().Intersects(s.player.Bounds()) {
		s.round = state.RoundLost
		s.cause = state.CauseContact
		return
	}

	if s.clock >= s.cfg.Round.GoalSeconds {
		s.round = state.RoundWon
		s.cause = state.CauseSurvived
	}
}

// Reset deterministically restores the round to its initial state: same
// spawns, full stamina and shield, cleared path and flame set, reseeded
// RNG. Safe to call between any two ticks.
func (s *Simulation) Reset() {
	s.rng.Seed(s.seed)
	s.clock = 0
	s.round = state.RoundRunning
	s.cause = state.CauseNone
	s.flames.Clear()
	s.spawn()
}

// Reseed changes the seed used by Reset and reseeds immediately.
func (s *Simulation) Reseed(seed int64) {
	s.seed = seed
	s.rng.Seed(seed)
}

// Player returns the player entity.
func (s *Simulation) Player() *entity.Player { return s.player }

// Dragon returns the dragon entity.
func (s *Simulation) Dragon() *entity.Dragon { return s.dragon }

// Flames returns the live flame particles for rendering.
func (s *Simulation) Flames() []*entity.Flame { return s.flames.Flames() }

// Arena returns the static arena.
func (s *Simulation) Arena() *entity.Arena { return s.arena }

// Round returns the terminal state of the round.
func (s *Simulation) Round() state.RoundState { return s.round }

// Cause returns why the round ended, or CauseNone while running.
func (s *Simulation) Cause() state.EndCause { return s.cause }

// Clock returns the elapsed simulated time in seconds.
func (s *Simulation) Clock() float64 { return s.clock }
