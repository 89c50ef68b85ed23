// services/achievements.go - achievement evaluation
package services

import (
	"time"

	"neuroleaf/models"
	"neuroleaf/progression"
	"neuroleaf/storage"
)

// evaluateAchievements checks every not-yet-unlocked achievement against the
// user's current aggregates, records unlocks and applies XP rewards to the
// user in place.
//
// Evaluation runs against a single snapshot per call: XP rewards granted
// here do not re-trigger evaluation within the same call, so an unlock whose
// reward crosses another XP threshold surfaces on the next evaluation (in
// practice, the next completed session or login).
func evaluateAchievements(repo storage.Repository, user *models.User) ([]models.Achievement, error) {
	all, err := repo.Achievements()
	if err != nil {
		return nil, err
	}
	unlocks, err := repo.UnlocksByUser(user.ID)
	if err != nil {
		return nil, err
	}
	sessions, err := repo.SessionsByUser(user.ID)
	if err != nil {
		return nil, err
	}
	journal, err := repo.JournalEntriesByUser(user.ID)
	if err != nil {
		return nil, err
	}

	unlocked := make(map[uint]bool, len(unlocks))
	for _, u := range unlocks {
		unlocked[u.AchievementID] = true
	}

	snapshot := *user
	newly := []models.Achievement{}
	for _, achievement := range all {
		if unlocked[achievement.ID] {
			continue
		}
		if !requirementMet(achievement, &snapshot, sessions, len(journal)) {
			continue
		}

		unlock := &models.UserAchievement{
			UserID:        user.ID,
			AchievementID: achievement.ID,
			UnlockedAt:    time.Now(),
		}
		if err := repo.CreateUnlock(unlock); err != nil {
			return nil, err
		}
		newly = append(newly, achievement)
	}

	// Rewards are applied after the loop so they cannot feed back into the
	// snapshot being evaluated.
	for _, achievement := range newly {
		if achievement.XPReward <= 0 {
			continue
		}
		updated, err := progression.ApplyXP(*user, achievement.XPReward)
		if err != nil {
			return nil, err
		}
		*user = updated
	}

	return newly, nil
}

func requirementMet(a models.Achievement, user *models.User, sessions []models.GameSession, journalCount int) bool {
	switch a.RequirementType {
	case models.RequirementXP:
		return user.XP >= a.RequirementValue
	case models.RequirementStreak:
		return user.Streak >= a.RequirementValue
	case models.RequirementGameCount:
		count := 0
		for _, s := range sessions {
			if s.GameType == a.RequirementGame {
				count++
			}
		}
		return count >= a.RequirementValue
	case models.RequirementGamesPlayed:
		distinct := make(map[string]bool)
		for _, s := range sessions {
			distinct[s.GameType] = true
		}
		return len(distinct) >= a.RequirementValue
	case models.RequirementJournalCount:
		return journalCount >= a.RequirementValue
	}
	return false
}

// AchievementStatus is one row of the merged locked/unlocked achievement
// view.
type AchievementStatus struct {
	models.Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// AchievementsForUser returns every achievement with its unlock status for
// the user.
func (s *Service) AchievementsForUser(userID uint) ([]AchievementStatus, error) {
	all, err := s.repo.Achievements()
	if err != nil {
		return nil, err
	}
	unlocks, err := s.repo.UnlocksByUser(userID)
	if err != nil {
		return nil, err
	}

	unlockedAt := make(map[uint]time.Time, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.AchievementID] = u.UnlockedAt
	}

	statuses := make([]AchievementStatus, 0, len(all))
	for _, achievement := range all {
		status := AchievementStatus{Achievement: achievement}
		if at, ok := unlockedAt[achievement.ID]; ok {
			status.Unlocked = true
			t := at
			status.UnlockedAt = &t
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
