// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"neuroleaf/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.GameSession{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.CoinTransaction{},
		&models.UserTree{},
		&models.JournalEntry{},
		&models.StoreItem{},
		&models.InventoryItem{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()
	SeedReferenceData()

	log.Println("✅ All migrations completed successfully")
}

func createIndexes() {
	db := GetDB()

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_xp ON users(xp DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_level ON users(level DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_guest ON users(is_guest)")

	// Session indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_game_sessions_user ON game_sessions(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_game_sessions_completed ON game_sessions(completed_at DESC)")

	// Ledger indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_coin_transactions_user ON coin_transactions(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_coin_transactions_created ON coin_transactions(created_at DESC)")

	// Tree and journal indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_trees_user ON user_trees(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_journal_entries_user ON journal_entries(user_id)")
}
