package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neuroleaf/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 14, 30, 0, 0, time.UTC)
}

func TestApplyStreakFirstLogin(t *testing.T) {
	user := models.User{}

	user = ApplyStreak(user, day(2025, time.March, 10))
	assert.Equal(t, 1, user.Streak)
	require.NotNil(t, user.LastLoginDate)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), *user.LastLoginDate)
}

func TestApplyStreakConsecutiveDays(t *testing.T) {
	user := models.User{}

	user = ApplyStreak(user, day(2025, time.March, 10))
	user = ApplyStreak(user, day(2025, time.March, 11))
	user = ApplyStreak(user, day(2025, time.March, 12))
	assert.Equal(t, 3, user.Streak)
}

func TestApplyStreakSameDayIdempotent(t *testing.T) {
	user := models.User{}

	user = ApplyStreak(user, day(2025, time.March, 10))
	user = ApplyStreak(user, day(2025, time.March, 11))
	assert.Equal(t, 2, user.Streak)

	// A second login later the same day must not inflate the streak.
	user = ApplyStreak(user, time.Date(2025, time.March, 11, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, 2, user.Streak)
}

func TestApplyStreakBroken(t *testing.T) {
	last := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	user := models.User{Streak: 5, LastLoginDate: &last}

	user = ApplyStreak(user, day(2025, time.March, 10))
	assert.Equal(t, 1, user.Streak)
}

func TestApplyStreakCrossesMidnight(t *testing.T) {
	// 23:50 one day and 00:10 the next is still a one-day gap.
	user := models.User{}

	user = ApplyStreak(user, time.Date(2025, time.June, 1, 23, 50, 0, 0, time.UTC))
	user = ApplyStreak(user, time.Date(2025, time.June, 2, 0, 10, 0, 0, time.UTC))
	assert.Equal(t, 2, user.Streak)
}
