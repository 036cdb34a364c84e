package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/lair/internal/application/state"
	"github.com/younwookim/lair/internal/application/system"
	"github.com/younwookim/lair/internal/domain/entity"
	"github.com/younwookim/lair/internal/infrastructure/config"
)

func testGameConfig() *config.GameConfig {
	return &config.GameConfig{
		Round: config.RoundConfig{GoalSeconds: 3.0, MaxTickDelta: 0.033},
		Player: config.PlayerConfig{
			Width: 22, Height: 22, WalkSpeed: 150, SprintSpeed: 240,
			Stamina: config.StaminaConfig{Max: 100, DrainPerSec: 35, RegenPerSec: 20, SprintRecovery: 30},
			Shield:  config.ShieldConfig{Max: 100, HitCost: 25, BreakCooldown: 3},
		},
		Dragon: config.DragonConfig{
			Width: 30, Height: 30, PatrolSpeed: 90, ChaseSpeed: 170,
			TooClose: 70, DesiredDistance: 110, ArrivalRadius: 6,
			MemoryWindow:        2.5,
			ReplanCooldownChase: 0.25, ReplanCooldownPatrol: 0.8,
			WanderDwellMin: 1.5, WanderDwellMax: 4.0, WanderAttempts: 40,
		},
		Breath: config.BreathConfig{
			Cooldown: 2.2, Duration: 0.6, ParticlesPerTick: 3,
			HalfAngleDeg: 18, JitterDeg: 3,
			Speed: 260, SpeedJitter: 40, Radius: 5, RadiusJitter: 2,
			TTL: 0.9, Standoff: 24,
		},
		Nav: config.NavConfig{CellSize: 20, InflateMargin: 8, GoalRemapRadius: 4},
	}
}

// boxedArena pens the dragon inside a closed wall box so it can never
// see, reach or burn the player.
func boxedArena() *entity.Arena {
	return &entity.Arena{
		Width:  400,
		Height: 300,
		Walls: []entity.Rect{
			{X: 250, Y: 170, W: 120, H: 10},
			{X: 250, Y: 260, W: 120, H: 10},
			{X: 250, Y: 180, W: 10, H: 80},
			{X: 360, Y: 180, W: 10, H: 80},
		},
		PlayerSpawn: entity.Point{X: 60, Y: 60},
		DragonSpawn: entity.Point{X: 290, Y: 210},
	}
}

func TestSimulation_WinBySurviving(t *testing.T) {
	sim := NewSimulation(testGameConfig(), boxedArena(), 1)

	for i := 0; i < 200 && sim.Round() == state.RoundRunning; i++ {
		sim.Step(system.Intent{}, 0.033)
	}

	assert.Equal(t, state.RoundWon, sim.Round())
	assert.Equal(t, state.CauseSurvived, sim.Cause())
	assert.GreaterOrEqual(t, sim.Clock(), 3.0)
}

func TestSimulation_LossByContact(t *testing.T) {
	arena := boxedArena()
	// Same center as the player so the bodies overlap from tick one.
	arena.DragonSpawn = entity.Point{X: 56, Y: 56}
	sim := NewSimulation(testGameConfig(), arena, 1)

	sim.Step(system.Intent{}, 0.016)

	assert.Equal(t, state.RoundLost, sim.Round())
	assert.Equal(t, state.CauseContact, sim.Cause())
}

func TestSimulation_LossByFlame(t *testing.T) {
	sim := NewSimulation(testGameConfig(), boxedArena(), 1)

	px, py := sim.Player().Center()
	sim.flames.Spawn(&entity.Flame{X: px, Y: py, Radius: 5, BornAt: 0, TTL: 5})

	sim.Step(system.Intent{}, 0.016)

	assert.Equal(t, state.RoundLost, sim.Round())
	assert.Equal(t, state.CauseBurned, sim.Cause())
}

func TestSimulation_ShieldAbsorbsFlame(t *testing.T) {
	sim := NewSimulation(testGameConfig(), boxedArena(), 1)

	px, py := sim.Player().Center()
	sim.flames.Spawn(&entity.Flame{X: px, Y: py, Radius: 5, BornAt: 0, TTL: 5})

	sim.Step(system.Intent{Shield: true}, 0.016)

	assert.Equal(t, state.RoundRunning, sim.Round())
	assert.Equal(t, state.CauseNone, sim.Cause())
	assert.Equal(t, 75.0, sim.Player().Shield.Durability)
	assert.Empty(t, sim.Flames(), "the absorbed particle is consumed")
}

func TestSimulation_TickDeltaClamped(t *testing.T) {
	sim := NewSimulation(testGameConfig(), boxedArena(), 1)

	sim.Step(system.Intent{}, 10.0)

	assert.InDelta(t, 0.033, sim.Clock(), 1e-9)
	assert.Equal(t, state.RoundRunning, sim.Round())
}

func TestSimulation_NoOpAfterEnd(t *testing.T) {
	arena := boxedArena()
	arena.DragonSpawn = entity.Point{X: 56, Y: 56}
	sim := NewSimulation(testGameConfig(), arena, 1)

	sim.Step(system.Intent{}, 0.016)
	require.Equal(t, state.RoundLost, sim.Round())
	clock := sim.Clock()

	sim.Step(system.Intent{MoveX: 1}, 0.016)

	assert.Equal(t, clock, sim.Clock())
	assert.Equal(t, state.RoundLost, sim.Round())
}

func TestSimulation_PlayerMoves(t *testing.T) {
	sim := NewSimulation(testGameConfig(), boxedArena(), 1)
	x0 := sim.Player().X

	sim.Step(system.Intent{MoveX: 1}, 0.016)

	assert.InDelta(t, x0+150*0.016, sim.Player().X, 1e-9)
}

func TestSimulation_ResetIsDeterministic(t *testing.T) {
	sim := NewSimulation(testGameConfig(), boxedArena(), 42)

	run := func() (float64, float64, float64, float64) {
		for i := 0; i < 60; i++ {
			sim.Step(system.Intent{MoveX: 1, MoveY: 0.5}, 0.016)
		}
		return sim.Player().X, sim.Player().Y, sim.Dragon().X, sim.Dragon().Y
	}

	px1, py1, dx1, dy1 := run()

	sim.Reset()
	require.Equal(t, state.RoundRunning, sim.Round())
	require.Equal(t, 0.0, sim.Clock())
	require.Empty(t, sim.Flames())
	assert.Equal(t, boxedArena().PlayerSpawn.X, sim.Player().X)
	assert.Equal(t, 100.0, sim.Player().Stamina)

	px2, py2, dx2, dy2 := run()

	assert.Equal(t, px1, px2)
	assert.Equal(t, py1, py2)
	assert.Equal(t, dx1, dx2)
	assert.Equal(t, dy1, dy2)
}
