package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionXP(t *testing.T) {
	tests := []struct {
		score int
		xp    int
	}{
		{0, 15},
		{49, 15},
		{50, 16},
		{85, 16},
		{99, 16},
		{100, 17},
		{-40, 15}, // misbehaving game, clamped
	}

	for _, tt := range tests {
		assert.Equal(t, tt.xp, SessionXP(tt.score), "score=%d", tt.score)
	}
}

func TestSessionCoins(t *testing.T) {
	tests := []struct {
		score int
		coins int
	}{
		{0, 2},
		{79, 2},
		{80, 5},
		{94, 5},
		{95, 8},
		{100, 8},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.coins, SessionCoins(tt.score), "score=%d", tt.score)
	}
}
