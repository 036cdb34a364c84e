package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Display DisplayConfig `json:"display"`
	Round   RoundConfig   `json:"round"`
	Player  PlayerConfig  `json:"player"`
	Dragon  DragonConfig  `json:"dragon"`
	Breath  BreathConfig  `json:"breath"`
	Nav     NavConfig     `json:"nav"`
}

type DisplayConfig struct {
	Scale     int `json:"scale"`
	Framerate int `json:"framerate"`
}

// RoundConfig controls round length and the integration-error cap.
type RoundConfig struct {
	GoalSeconds  float64 `json:"goalSeconds"`
	MaxTickDelta float64 `json:"maxTickDelta"` // seconds, per-tick dt clamp
}

type PlayerConfig struct {
	Width       float64       `json:"width"`
	Height      float64       `json:"height"`
	WalkSpeed   float64       `json:"walkSpeed"`   // pixels/sec
	SprintSpeed float64       `json:"sprintSpeed"` // pixels/sec
	Stamina     StaminaConfig `json:"stamina"`
	Shield      ShieldConfig  `json:"shield"`
}

// StaminaConfig tunes the sprint pool. SprintRecovery is the level a
// drained pool must regenerate back to before sprinting unlocks again.
type StaminaConfig struct {
	Max            float64 `json:"max"`
	DrainPerSec    float64 `json:"drainPerSec"`
	RegenPerSec    float64 `json:"regenPerSec"`
	SprintRecovery float64 `json:"sprintRecovery"`
}

type ShieldConfig struct {
	Max           float64 `json:"max"`
	HitCost       float64 `json:"hitCost"`
	BreakCooldown float64 `json:"breakCooldown"` // seconds
}

// DragonConfig holds the behavior tunables. TooClose must stay below
// DesiredDistance: under TooClose the dragon backs away, between the two
// it holds, above it advances.
type DragonConfig struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	PatrolSpeed float64 `json:"patrolSpeed"` // pixels/sec
	ChaseSpeed  float64 `json:"chaseSpeed"`  // pixels/sec

	TooClose        float64 `json:"tooClose"`        // pixels
	DesiredDistance float64 `json:"desiredDistance"` // pixels
	ArrivalRadius   float64 `json:"arrivalRadius"`   // pixels

	MemoryWindow float64 `json:"memoryWindow"` // seconds

	ReplanCooldownChase  float64 `json:"replanCooldownChase"`  // seconds
	ReplanCooldownPatrol float64 `json:"replanCooldownPatrol"` // seconds

	WanderDwellMin float64 `json:"wanderDwellMin"` // seconds
	WanderDwellMax float64 `json:"wanderDwellMax"` // seconds
	WanderAttempts int     `json:"wanderAttempts"`
}

type BreathConfig struct {
	Cooldown         float64 `json:"cooldown"` // seconds between windows
	Duration         float64 `json:"duration"` // seconds per window
	ParticlesPerTick int     `json:"particlesPerTick"`
	HalfAngleDeg     float64 `json:"halfAngleDeg"`
	JitterDeg        float64 `json:"jitterDeg"`
	Speed            float64 `json:"speed"` // pixels/sec
	SpeedJitter      float64 `json:"speedJitter"`
	Radius           float64 `json:"radius"` // pixels
	RadiusJitter     float64 `json:"radiusJitter"`
	TTL              float64 `json:"ttl"`      // seconds
	Standoff         float64 `json:"standoff"` // pixels along aim
}

// NavConfig sizes the occupancy grid. CellSize is tuned so corridors
// between walls still resolve as free cells; InflateMargin keeps planned
// paths clear of wall corners.
type NavConfig struct {
	CellSize        float64 `json:"cellSize"`      // pixels
	InflateMargin   float64 `json:"inflateMargin"` // pixels
	GoalRemapRadius int     `json:"goalRemapRadius"`
}

// ArenaConfig is the root config for arena.json: outer size, border wall
// thickness, spawns and interior obstacle rectangles.
type ArenaConfig struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Border float64 `json:"border"`

	PlayerSpawn PointConfig  `json:"playerSpawn"`
	DragonSpawn PointConfig  `json:"dragonSpawn"`
	Walls       []RectConfig `json:"walls"`
}

type PointConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type RectConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}
