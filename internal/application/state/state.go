package state

// RoundState represents the terminal state of a round.
type RoundState int

const (
	RoundRunning RoundState = iota
	RoundWon
	RoundLost
)

// String returns the string representation of the round state.
func (s RoundState) String() string {
	switch s {
	case RoundRunning:
		return "Running"
	case RoundWon:
		return "Won"
	case RoundLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// EndCause names why a round terminated.
type EndCause int

const (
	CauseNone EndCause = iota
	// CauseContact: the dragon's bounding box touched the player's.
	CauseContact
	// CauseBurned: a flame particle hit the unshielded player.
	CauseBurned
	// CauseSurvived: the round timer reached the goal.
	CauseSurvived
)

// String returns a human-readable cause for the HUD.
func (c EndCause) String() string {
	switch c {
	case CauseContact:
		return "caught by the dragon"
	case CauseBurned:
		return "burned"
	case CauseSurvived:
		return "time elapsed"
	default:
		return ""
	}
}
