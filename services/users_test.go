package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neuroleaf/models"
)

func TestCreateUserWelcomeBonus(t *testing.T) {
	svc, _, user := newTestService(t)

	assert.Equal(t, 50, user.Coins)
	assert.Equal(t, 1, user.Level)

	transactions, err := svc.CoinHistory(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, models.TxTypeWelcomeBonus, transactions[0].TransactionType)
	assert.Equal(t, 50, transactions[0].Amount)
}

func TestRecordLoginStreak(t *testing.T) {
	svc, _, user := newTestService(t)

	at := func(y int, m time.Month, d, hour int) time.Time {
		return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
	}

	updated, _, err := svc.RecordLogin(user.ID, at(2025, time.May, 1, 9))
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Streak)

	// Second login the same day is a no-op on the streak.
	updated, _, err = svc.RecordLogin(user.ID, at(2025, time.May, 1, 20))
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Streak)

	updated, _, err = svc.RecordLogin(user.ID, at(2025, time.May, 2, 8))
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Streak)

	// Three silent days break the streak.
	updated, _, err = svc.RecordLogin(user.ID, at(2025, time.May, 5, 8))
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Streak)
}

func TestRecordLoginUnlocksStreakAchievement(t *testing.T) {
	svc, repo, user := newTestService(t)
	seedAchievement(t, repo, models.Achievement{
		Key: "streak-2", Name: "Two Days",
		RequirementType: models.RequirementStreak, RequirementValue: 2, XPReward: 20,
	})

	_, newAchievements, err := svc.RecordLogin(user.ID, time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, newAchievements)

	updated, newAchievements, err := svc.RecordLogin(user.ID, time.Date(2025, time.May, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, newAchievements, 1)
	assert.Equal(t, "streak-2", newAchievements[0].Key)
	assert.Equal(t, 20, updated.XP)
}

func TestLeaderboard(t *testing.T) {
	svc, repo, _ := newTestService(t)

	for _, u := range []models.User{
		{Username: "low", XP: 100, Level: 1},
		{Username: "high", XP: 900, Level: 5},
		{Username: "mid", XP: 400, Level: 3},
		{Username: "ghost", XP: 9999, Level: 20, IsGuest: true},
	} {
		user := u
		require.NoError(t, repo.CreateUser(&user))
	}

	users, err := svc.Leaderboard("xp", 10)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(users), 3)
	assert.Equal(t, "high", users[0].Username)
	// Guests never appear on the leaderboard.
	for _, u := range users {
		assert.False(t, u.IsGuest)
	}
}
