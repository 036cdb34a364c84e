package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundState_String(t *testing.T) {
	tests := []struct {
		state    RoundState
		expected string
	}{
		{RoundRunning, "Running"},
		{RoundWon, "Won"},
		{RoundLost, "Lost"},
		{RoundState(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestEndCause_String(t *testing.T) {
	assert.Equal(t, "", CauseNone.String())
	assert.Equal(t, "caught by the dragon", CauseContact.String())
	assert.Equal(t, "burned", CauseBurned.String())
	assert.Equal(t, "time elapsed", CauseSurvived.String())
}
