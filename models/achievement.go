// models/achievement.go
package models

import "time"

// RequirementType tags the condition an achievement is gated on.
type RequirementType string

const (
	RequirementXP           RequirementType = "xp"            // total XP >= value
	RequirementStreak       RequirementType = "streak"        // login streak >= value
	RequirementGameCount    RequirementType = "game_count"    // sessions of one game >= value
	RequirementGamesPlayed  RequirementType = "games_played"  // distinct game types >= value
	RequirementJournalCount RequirementType = "journal_count" // journal entries >= value
)

type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Key         string `gorm:"not null;uniqueIndex" json:"key"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	IconType    string `json:"icon_type"`

	// Requirement is a tagged condition. RequirementGame is only set for
	// game_count requirements.
	RequirementType  RequirementType `gorm:"not null;index" json:"requirement_type"`
	RequirementValue int             `gorm:"not null" json:"requirement_value"`
	RequirementGame  string          `gorm:"size:50" json:"requirement_game,omitempty"`

	// Rewards
	XPReward int `gorm:"default:0" json:"xp_reward"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
