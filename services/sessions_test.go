package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neuroleaf/models"
	"neuroleaf/storage"
)

func newTestService(t *testing.T) (*Service, *storage.MemoryRepository, *models.User) {
	t.Helper()
	repo := storage.NewMemoryRepository()
	svc := New(repo)

	user := &models.User{Username: "tester", Level: 1}
	require.NoError(t, svc.CreateUser(user))
	return svc, repo, user
}

func seedAchievement(t *testing.T, repo *storage.MemoryRepository, a models.Achievement) models.Achievement {
	t.Helper()
	require.NoError(t, repo.CreateAchievement(&a))
	return a
}

func TestIngestSessionRewardMath(t *testing.T) {
	svc, _, user := newTestService(t)

	outcome, err := svc.IngestSession(user.ID, "memory-matrix", 85, 30, "medium")
	require.NoError(t, err)

	assert.Equal(t, 16, outcome.XPEarned) // 15 + 85/50
	assert.Equal(t, 5, outcome.CoinsEarned)
}

func TestIngestSessionNewUserScenario(t *testing.T) {
	svc, repo, user := newTestService(t)
	seedAchievement(t, repo, models.Achievement{
		Key: "xp-50", Name: "Getting Warmed Up",
		RequirementType: models.RequirementXP, RequirementValue: 50,
	})

	// Fresh account: welcome bonus only.
	assert.Equal(t, 50, user.Coins)

	outcome, err := svc.IngestSession(user.ID, "color-echo", 100, 12, "easy")
	require.NoError(t, err)

	assert.Equal(t, 17, outcome.XPEarned)
	assert.Equal(t, 8, outcome.CoinsEarned)
	assert.Equal(t, 17, outcome.TotalXP)
	assert.Equal(t, 1, outcome.NewLevel)
	assert.False(t, outcome.LeveledUp)
	assert.Equal(t, 58, outcome.Coins)
	assert.Empty(t, outcome.NewAchievements) // 17 XP is short of the 50 threshold

	stored, err := svc.User(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 17, stored.XP)
	assert.Equal(t, 58, stored.Coins)

	sessions, err := svc.SessionHistory(user.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "color-echo", sessions[0].GameType)
	assert.Equal(t, 100, sessions[0].Score)
}

func TestIngestSessionLevelUp(t *testing.T) {
	svc, repo, user := newTestService(t)

	user.XP = 195
	require.NoError(t, repo.SaveUser(user))

	outcome, err := svc.IngestSession(user.ID, "shape-sequence", 85, 20, "hard")
	require.NoError(t, err)

	assert.Equal(t, 211, outcome.TotalXP)
	assert.Equal(t, 2, outcome.NewLevel)
	assert.True(t, outcome.LeveledUp)
}

func TestIngestSessionUnlocksAchievement(t *testing.T) {
	svc, repo, user := newTestService(t)
	a := seedAchievement(t, repo, models.Achievement{
		Key: "first-xp", Name: "First Steps",
		RequirementType: models.RequirementXP, RequirementValue: 15, XPReward: 10,
	})

	outcome, err := svc.IngestSession(user.ID, "color-echo", 0, 10, "easy")
	require.NoError(t, err)

	require.Len(t, outcome.NewAchievements, 1)
	assert.Equal(t, a.Key, outcome.NewAchievements[0].Key)
	// 15 session XP + 10 achievement reward
	assert.Equal(t, 25, outcome.TotalXP)
}

func TestIngestSessionAchievementIdempotent(t *testing.T) {
	svc, repo, user := newTestService(t)
	seedAchievement(t, repo, models.Achievement{
		Key: "first-xp", Name: "First Steps",
		RequirementType: models.RequirementXP, RequirementValue: 15,
	})

	first, err := svc.IngestSession(user.ID, "color-echo", 0, 10, "easy")
	require.NoError(t, err)
	require.Len(t, first.NewAchievements, 1)

	second, err := svc.IngestSession(user.ID, "color-echo", 0, 10, "easy")
	require.NoError(t, err)
	assert.Empty(t, second.NewAchievements)

	unlocks, err := repo.UnlocksByUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, unlocks, 1)
}

func TestIngestSessionEvaluatesAgainstSnapshot(t *testing.T) {
	// One evaluation pass works on a single snapshot: an unlock's XP reward
	// cannot satisfy another achievement until the next evaluation.
	svc, repo, user := newTestService(t)
	seedAchievement(t, repo, models.Achievement{
		Key: "a", Name: "A",
		RequirementType: models.RequirementXP, RequirementValue: 15, XPReward: 100,
	})
	seedAchievement(t, repo, models.Achievement{
		Key: "b", Name: "B",
		RequirementType: models.RequirementXP, RequirementValue: 50,
	})

	first, err := svc.IngestSession(user.ID, "color-echo", 0, 10, "easy")
	require.NoError(t, err)
	require.Len(t, first.NewAchievements, 1)
	assert.Equal(t, "a", first.NewAchievements[0].Key)
	assert.Equal(t, 115, first.TotalXP) // reward applied, but b not re-checked

	second, err := svc.IngestSession(user.ID, "color-echo", 0, 10, "easy")
	require.NoError(t, err)
	require.Len(t, second.NewAchievements, 1)
	assert.Equal(t, "b", second.NewAchievements[0].Key)
}

func TestIngestSessionGameCountAchievement(t *testing.T) {
	svc, repo, user := newTestService(t)
	seedAchievement(t, repo, models.Achievement{
		Key: "matrix-3", Name: "Matrix Regular",
		RequirementType: models.RequirementGameCount, RequirementGame: "memory-matrix", RequirementValue: 3,
	})

	for i := 0; i < 2; i++ {
		outcome, err := svc.IngestSession(user.ID, "memory-matrix", 60, 20, "easy")
		require.NoError(t, err)
		assert.Empty(t, outcome.NewAchievements)
	}
	// Sessions of a different game do not count.
	outcome, err := svc.IngestSession(user.ID, "color-echo", 60, 20, "easy")
	require.NoError(t, err)
	assert.Empty(t, outcome.NewAchievements)

	outcome, err = svc.IngestSession(user.ID, "memory-matrix", 60, 20, "easy")
	require.NoError(t, err)
	require.Len(t, outcome.NewAchievements, 1)
	assert.Equal(t, "matrix-3", outcome.NewAchievements[0].Key)
}

func TestIngestSessionGamesPlayedAchievement(t *testing.T) {
	svc, repo, user := newTestService(t)
	seedAchievement(t, repo, models.Achievement{
		Key: "explorer", Name: "Explorer",
		RequirementType: models.RequirementGamesPlayed, RequirementValue: 3,
	})

	games := []string{"memory-matrix", "memory-matrix", "color-echo"}
	for _, game := range games {
		outcome, err := svc.IngestSession(user.ID, game, 60, 20, "easy")
		require.NoError(t, err)
		assert.Empty(t, outcome.NewAchievements)
	}

	outcome, err := svc.IngestSession(user.ID, "shape-sequence", 60, 20, "easy")
	require.NoError(t, err)
	require.Len(t, outcome.NewAchievements, 1)
}

func TestIngestSessionValidation(t *testing.T) {
	svc, _, user := newTestService(t)

	_, err := svc.IngestSession(user.ID, "", 50, 10, "easy")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.IngestSession(9999, "color-echo", 50, 10, "easy")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
