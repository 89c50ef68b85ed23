// models/models.go - Core Models
package models

import (
	"time"
)

// GameSession is one completed mini-game attempt. Append-only per user.
type GameSession struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	User        *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	GameType    string    `json:"game_type" gorm:"not null;size:50;index"`
	Score       int       `json:"score" gorm:"default:0"`
	TimeTaken   int       `json:"time_taken" gorm:"default:0"` // in seconds
	Difficulty  string    `json:"difficulty" gorm:"size:20"`
	XPEarned    int       `json:"xp_earned" gorm:"default:0"`
	CoinsEarned int       `json:"coins_earned" gorm:"default:0"`
	CompletedAt time.Time `json:"completed_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// CoinTransaction is a signed ledger entry. Positive amounts are credits,
// negative amounts are debits.
type CoinTransaction struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"not null;index"`
	User            *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Amount          int       `json:"amount" gorm:"not null"`
	TransactionType string    `json:"transaction_type" gorm:"not null;size:50"`
	Description     string    `json:"description" gorm:"size:255"`
	GameType        string    `json:"game_type,omitempty" gorm:"size:50"`
	CreatedAt       time.Time `json:"created_at"`
}

// Transaction types accepted by the coin ledger.
const (
	TxTypeGameReward        = "game_reward"
	TxTypeAchievementReward = "achievement_reward"
	TxTypePurchase          = "purchase"
	TxTypeWelcomeBonus      = "welcome_bonus"
)

// JournalEntry is a free-form daily check-in. Only its count feeds
// achievement requirements; the content is opaque to the engine.
type JournalEntry struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	User        *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	FocusLevel  int       `json:"focus_level" gorm:"default:5"` // 1-10
	EnergyLevel string    `json:"energy_level" gorm:"size:20"`  // low, medium, high
	Reflection  string    `json:"reflection" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

// StoreItem is a catalog entry. Global reference data, never owned by a user.
type StoreItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category" gorm:"not null;size:50;index"` // decoration, tree, boost
	ItemType    string    `json:"item_type" gorm:"not null;size:50"`
	Price       int       `json:"price" gorm:"not null"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InventoryItem tracks how many of a store item a user owns. Quantity
// accumulates across purchases.
type InventoryItem struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_store_item"`
	StoreItemID uint       `json:"store_item_id" gorm:"not null;uniqueIndex:idx_user_store_item"`
	StoreItem   *StoreItem `json:"store_item,omitempty" gorm:"foreignKey:StoreItemID"`
	Quantity    int        `json:"quantity" gorm:"default:0"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName methods for custom table names
func (GameSession) TableName() string {
	return "game_sessions"
}

func (CoinTransaction) TableName() string {
	return "coin_transactions"
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

func (StoreItem) TableName() string {
	return "store_items"
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
