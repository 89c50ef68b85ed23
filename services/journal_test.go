package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neuroleaf/models"
)

func TestAddJournalEntry(t *testing.T) {
	svc, _, user := newTestService(t)

	entry, newAchievements, err := svc.AddJournalEntry(user.ID, 7, "high", "felt sharp today")
	require.NoError(t, err)
	assert.Equal(t, 7, entry.FocusLevel)
	assert.Equal(t, "high", entry.EnergyLevel)
	assert.Empty(t, newAchievements)

	entries, err := svc.JournalEntries(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "felt sharp today", entries[0].Reflection)
}

func TestAddJournalEntryValidation(t *testing.T) {
	svc, _, user := newTestService(t)

	_, _, err := svc.AddJournalEntry(user.ID, 0, "high", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.AddJournalEntry(user.ID, 11, "high", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.AddJournalEntry(user.ID, 5, "exhausted", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddJournalEntryUnlocksAchievement(t *testing.T) {
	svc, repo, user := newTestService(t)
	seedAchievement(t, repo, models.Achievement{
		Key: "journal-2", Name: "Reflective",
		RequirementType: models.RequirementJournalCount, RequirementValue: 2, XPReward: 15,
	})

	_, newAchievements, err := svc.AddJournalEntry(user.ID, 5, "medium", "first")
	require.NoError(t, err)
	assert.Empty(t, newAchievements)

	_, newAchievements, err = svc.AddJournalEntry(user.ID, 6, "low", "second")
	require.NoError(t, err)
	require.Len(t, newAchievements, 1)
	assert.Equal(t, "journal-2", newAchievements[0].Key)

	stored, err := svc.User(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, stored.XP)
}
