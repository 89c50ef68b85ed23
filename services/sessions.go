// services/sessions.go - the "game completed" ingestion pipeline
package services

import (
	"fmt"
	"time"

	"neuroleaf/models"
	"neuroleaf/progression"
	"neuroleaf/storage"
)

// SessionOutcome is what the presentation layer gets back after a completed
// game: earned rewards, new totals and any fresh achievement unlocks.
type SessionOutcome struct {
	XPEarned        int                  `json:"xp_earned"`
	CoinsEarned     int                  `json:"coins_earned"`
	NewLevel        int                  `json:"new_level"`
	LeveledUp       bool                 `json:"leveled_up"`
	TotalXP         int                  `json:"total_xp"`
	Coins           int                  `json:"coins"`
	NewAchievements []models.Achievement `json:"new_achievements"`
}

// IngestSession records one completed mini-game round and applies its
// rewards: session record, XP, coins, achievement evaluation. The whole
// pipeline runs in one transaction; on any repository failure none of it
// becomes visible.
func (s *Service) IngestSession(userID uint, gameType string, score, timeTaken int, difficulty string) (*SessionOutcome, error) {
	if gameType == "" {
		return nil, fmt.Errorf("%w: game type required", ErrInvalidInput)
	}

	var outcome *SessionOutcome
	err := s.repo.Transact(func(tx storage.Repository) error {
		user, err := tx.GetUser(userID)
		if err != nil {
			return err
		}
		oldLevel := user.Level

		xpEarned := progression.SessionXP(score)
		coinsEarned := progression.SessionCoins(score)

		session := &models.GameSession{
			UserID:      userID,
			GameType:    gameType,
			Score:       score,
			TimeTaken:   timeTaken,
			Difficulty:  difficulty,
			XPEarned:    xpEarned,
			CoinsEarned: coinsEarned,
			CompletedAt: time.Now(),
		}
		if err := tx.CreateSession(session); err != nil {
			return err
		}

		updated, err := progression.ApplyXP(*user, xpEarned)
		if err != nil {
			return err
		}
		*user = updated

		description := fmt.Sprintf("Completed %s (score %d)", gameType, score)
		if _, err := applyCoinTransaction(tx, user, coinsEarned, models.TxTypeGameReward, description, gameType); err != nil {
			return err
		}

		newAchievements, err := evaluateAchievements(tx, user)
		if err != nil {
			return err
		}

		if err := tx.SaveUser(user); err != nil {
			return err
		}

		outcome = &SessionOutcome{
			XPEarned:        xpEarned,
			CoinsEarned:     coinsEarned,
			NewLevel:        user.Level,
			LeveledUp:       user.Level > oldLevel,
			TotalXP:         user.XP,
			Coins:           user.Coins,
			NewAchievements: newAchievements,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// SessionHistory returns the user's completed sessions, newest first.
func (s *Service) SessionHistory(userID uint) ([]models.GameSession, error) {
	return s.repo.SessionsByUser(userID)
}
