// models/user.go
package models

import (
	"time"
)

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Username string  `gorm:"uniqueIndex;not null" json:"username"`
	Email    *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password string  `gorm:"not null" json:"-"`
	IsGuest  bool    `gorm:"default:false" json:"is_guest"`

	// Progression
	Level int `gorm:"default:1" json:"level"`
	XP    int `gorm:"default:0" json:"xp"`
	Coins int `gorm:"default:0" json:"coins"`

	// Daily activity
	Streak        int        `gorm:"default:0" json:"streak"`
	LastLoginDate *time.Time `json:"last_login_date,omitempty"`

	// Stats
	TotalTreesPlanted int `gorm:"default:0" json:"total_trees_planted"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Achievements []UserAchievement `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
	Sessions     []GameSession     `gorm:"foreignKey:UserID" json:"sessions,omitempty"`
	Trees        []UserTree        `gorm:"foreignKey:UserID" json:"trees,omitempty"`
}

type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementID uint      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`

	// Relationships
	User        User        `gorm:"foreignKey:UserID" json:"-"`
	Achievement Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}
