package entity

// BehaviorState is the dragon's current perception state.
type BehaviorState int

const (
	// StatePatrol wanders between sampled points; the player is unseen
	// and forgotten.
	StatePatrol BehaviorState = iota
	// StatePursue tracks the currently visible player.
	StatePursue
	// StateInvestigate heads for the remembered last-seen position while
	// the memory window is still open.
	StateInvestigate
)

// String returns the state name for the diagnostic HUD.
func (s BehaviorState) String() string {
	switch s {
	case StatePatrol:
		return "Patrol"
	case StatePursue:
		return "Pursue"
	case StateInvestigate:
		return "Investigate"
	default:
		return "Unknown"
	}
}

// Dragon is the antagonist: a path-following hunter with a short memory of
// where it last saw the player and a flame-breath attack.
type Dragon struct {
	Body

	PatrolSpeed float64
	ChaseSpeed  float64

	State BehaviorState

	// Path following. Path holds world-space waypoint centers consumed
	// front-to-back; the whole path is replaced on replan.
	Path      []Point
	PathIndex int

	// Replan throttling
	NextReplanAt float64
	LastGoalCol  int
	LastGoalRow  int
	HasGoal      bool

	// Last-seen memory
	LastSeenX  float64
	LastSeenY  float64
	LastSeenAt float64
	Seen       bool

	// Patrol wander target
	WanderX     float64
	WanderY     float64
	WanderUntil float64
	HasWander   bool

	// Breath attack timestamps
	BreathReadyAt float64
	BreathUntil   float64
}

// NewDragon creates a dragon at (x, y) in patrol state with no path.
func NewDragon(x, y, w, h float64) *Dragon {
	return &Dragon{
		Body:        Body{X: x, Y: y, W: w, H: h},
		State:       StatePatrol,
		LastGoalCol: -1,
		LastGoalRow: -1,
	}
}

// SetPath replaces the current path wholesale and rewinds the cursor.
func (d *Dragon) SetPath(waypoints []Point) {
	d.Path = waypoints
	d.PathIndex = 0
}

// CurrentWaypoint returns the waypoint under the cursor, or ok=false when
// the path is empty or exhausted.
func (d *Dragon) CurrentWaypoint() (Point, bool) {
	if d.PathIndex >= len(d.Path) {
		return Point{}, false
	}
	return d.Path[d.PathIndex], true
}

// AdvanceWaypoint moves the cursor to the next waypoint. The cursor never
// exceeds the path length.
func (d *Dragon) AdvanceWaypoint() {
	if d.PathIndex < len(d.Path) {
		d.PathIndex++
	}
}

// RememberSighting refreshes the last-seen memory with the player's
// current position.
func (d *Dragon) RememberSighting(x, y, now float64) {
	d.LastSeenX = x
	d.LastSeenY = y
	d.LastSeenAt = now
	d.Seen = true
}

// Remembers returns true while the last sighting is within the memory
// window.
func (d *Dragon) Remembers(now, window float64) bool {
	return d.Seen && now-d.LastSeenAt < window
}

// Speed returns the movement speed for the current state.
func (d *Dragon) Speed() float64 {
	if d.State == StatePatrol {
		return d.PatrolSpeed
	}
	return d.ChaseSpeed
}
