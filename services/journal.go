// services/journal.go - daily check-ins
package services

import (
	"fmt"
	"time"

	"neuroleaf/models"
	"neuroleaf/storage"
)

var validEnergyLevels = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
}

// AddJournalEntry records a check-in and re-evaluates achievements, since
// journal_count requirements may now be satisfied.
func (s *Service) AddJournalEntry(userID uint, focusLevel int, energyLevel, reflection string) (*models.JournalEntry, []models.Achievement, error) {
	if focusLevel < 1 || focusLevel > 10 {
		return nil, nil, fmt.Errorf("%w: focus level must be 1-10", ErrInvalidInput)
	}
	if !validEnergyLevels[energyLevel] {
		return nil, nil, fmt.Errorf("%w: energy level must be low, medium or high", ErrInvalidInput)
	}

	var entry *models.JournalEntry
	var newAchievements []models.Achievement
	err := s.repo.Transact(func(tx storage.Repository) error {
		user, err := tx.GetUser(userID)
		if err != nil {
			return err
		}

		entry = &models.JournalEntry{
			UserID:      userID,
			FocusLevel:  focusLevel,
			EnergyLevel: energyLevel,
			Reflection:  reflection,
			CreatedAt:   time.Now(),
		}
		if err := tx.CreateJournalEntry(entry); err != nil {
			return err
		}

		newAchievements, err = evaluateAchievements(tx, user)
		if err != nil {
			return err
		}
		return tx.SaveUser(user)
	})
	if err != nil {
		return nil, nil, err
	}
	return entry, newAchievements, nil
}

// JournalEntries lists the user's check-ins, newest first.
func (s *Service) JournalEntries(userID uint) ([]models.JournalEntry, error) {
	return s.repo.JournalEntriesByUser(userID)
}
