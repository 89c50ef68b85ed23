package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neuroleaf/models"
)

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{199, 1},
		{200, 2},
		{399, 2},
		{400, 3},
		{1799, 9},
		{1800, 10},
		{1999, 10},
		{2000, 10},
		{2299, 10},
		{2300, 11},
		{2599, 11},
		{2600, 12},
		{5000, 20},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, LevelForXP(tt.xp), "xp=%d", tt.xp)
	}
}

func TestXPForLevelRoundTrip(t *testing.T) {
	for level := 1; level <= 30; level++ {
		xp := XPForLevel(level)
		assert.Equal(t, level, LevelForXP(xp), "level=%d xp=%d", level, xp)
		if xp > 0 {
			assert.Equal(t, level-1, LevelForXP(xp-1), "one XP short of level %d", level)
		}
	}
}

func TestApplyXP(t *testing.T) {
	user := models.User{Level: 1}

	user, err := ApplyXP(user, 250)
	require.NoError(t, err)
	assert.Equal(t, 250, user.XP)
	assert.Equal(t, 2, user.Level)
}

func TestApplyXPRejectsNegativeGain(t *testing.T) {
	user := models.User{XP: 100, Level: 1}

	unchanged, err := ApplyXP(user, -10)
	require.ErrorIs(t, err, ErrNegativeXPGain)
	assert.Equal(t, user, unchanged)
}

func TestApplyXPLevelMonotonic(t *testing.T) {
	user := models.User{Level: 1}
	gains := []int{0, 17, 16, 150, 0, 300, 42, 1200, 16, 500, 0, 999}

	prevLevel := user.Level
	for _, gain := range gains {
		var err error
		user, err = ApplyXP(user, gain)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, user.Level, prevLevel)
		prevLevel = user.Level
	}
}

func TestApplyXPNeverLowersInflatedLevel(t *testing.T) {
	// A level above what the XP implies stays put.
	user := models.User{XP: 0, Level: 7}

	user, err := ApplyXP(user, 10)
	require.NoError(t, err)
	assert.Equal(t, 7, user.Level)
}
