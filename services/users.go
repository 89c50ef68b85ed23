// services/users.go - user lifecycle and login streaks
package services

import (
	"time"

	"neuroleaf/models"
	"neuroleaf/progression"
	"neuroleaf/storage"
)

// WelcomeBonus is the coin balance every new account starts with, granted
// through the ledger so the first entry explains where the coins came from.
const WelcomeBonus = 50

// CreateUser persists a new user and grants the welcome bonus.
func (s *Service) CreateUser(user *models.User) error {
	return s.repo.Transact(func(tx storage.Repository) error {
		if user.Level < 1 {
			user.Level = 1
		}
		if err := tx.CreateUser(user); err != nil {
			return err
		}
		if _, err := applyCoinTransaction(tx, user, WelcomeBonus, models.TxTypeWelcomeBonus, "Welcome to Neuroleaf", ""); err != nil {
			return err
		}
		return tx.SaveUser(user)
	})
}

// RecordLogin applies the daily streak rule for a login happening at "now"
// and evaluates achievements, since streak requirements may newly hold.
// Calling it twice in one calendar day leaves the streak unchanged.
func (s *Service) RecordLogin(userID uint, now time.Time) (*models.User, []models.Achievement, error) {
	var user *models.User
	var newAchievements []models.Achievement
	err := s.repo.Transact(func(tx storage.Repository) error {
		current, err := tx.GetUser(userID)
		if err != nil {
			return err
		}

		updated := progression.ApplyStreak(*current, now)
		*current = updated

		newAchievements, err = evaluateAchievements(tx, current)
		if err != nil {
			return err
		}
		if err := tx.SaveUser(current); err != nil {
			return err
		}
		user = current
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return user, newAchievements, nil
}

// User fetches a user by id.
func (s *Service) User(userID uint) (*models.User, error) {
	return s.repo.GetUser(userID)
}

// UserByUsername fetches a user by username.
func (s *Service) UserByUsername(username string) (*models.User, error) {
	return s.repo.GetUserByUsername(username)
}

// Leaderboard returns the top users for a category (xp, level, streak,
// trees).
func (s *Service) Leaderboard(category string, limit int) ([]models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.TopUsers(category, limit)
}
