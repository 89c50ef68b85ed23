// progression/streak.go - consecutive-day login streaks
package progression

import (
	"time"

	"neuroleaf/models"
)

// ApplyStreak updates the user's streak for a login happening at "today".
// Rules, in calendar days:
//   - no prior login: streak starts at 1
//   - exactly one day since last login: streak continues
//   - same day: streak unchanged (a second login must not inflate it)
//   - more than one day: streak broken, reset to 1
//
// LastLoginDate is always moved to today.
func ApplyStreak(user models.User, today time.Time) models.User {
	day := truncateToDay(today)

	if user.LastLoginDate == nil {
		user.Streak = 1
		user.LastLoginDate = &day
		return user
	}

	switch daysBetween(*user.LastLoginDate, day) {
	case 0:
		// same calendar day, idempotent
	case 1:
		user.Streak++
	default:
		user.Streak = 1
	}

	user.LastLoginDate = &day
	return user
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(truncateToDay(to).Sub(truncateToDay(from)).Hours() / 24)
}
