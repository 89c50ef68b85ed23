// progression/level.go - XP accumulation and level computation
package progression

import (
	"errors"

	"neuroleaf/models"
)

// ErrNegativeXPGain is returned when a caller tries to apply a negative XP
// gain. Level monotonicity only holds for non-negative gains, so negative
// input is a caller bug, not a recoverable condition.
var ErrNegativeXPGain = errors.New("xp gain must be non-negative")

const (
	fastRegimeCap    = 2000 // XP covered by the 200-XP-per-level regime
	fastRegimeStep   = 200
	slowRegimeStep   = 300
	fastRegimeLevels = 10
)

// LevelForXP maps total XP to a level. Levels 1-10 cost 200 XP each; past
// 2000 XP the rate coarsens to 300 XP per level with no cap.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	if xp < fastRegimeCap {
		level := xp/fastRegimeStep + 1
		if level > fastRegimeLevels {
			level = fastRegimeLevels
		}
		return level
	}
	return fastRegimeLevels + (xp-fastRegimeCap)/slowRegimeStep
}

// XPForLevel returns the total XP at which the given level is first reached.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	if level <= fastRegimeLevels {
		return (level - 1) * fastRegimeStep
	}
	return fastRegimeCap + (level-fastRegimeLevels)*slowRegimeStep
}

// ApplyXP returns a copy of the user with the gain added and the level
// recomputed. The level never decreases.
func ApplyXP(user models.User, gain int) (models.User, error) {
	if gain < 0 {
		return user, ErrNegativeXPGain
	}
	user.XP += gain
	if level := LevelForXP(user.XP); level > user.Level {
		user.Level = level
	}
	if user.Level < 1 {
		user.Level = 1
	}
	return user, nil
}
