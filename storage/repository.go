// storage/repository.go - repository interface consumed by the engine
package storage

import (
	"errors"

	"neuroleaf/models"
)

// ErrNotFound is returned when a record does not exist. Both implementations
// map their own not-found conditions onto it.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateUnlock is returned when an achievement unlock already exists
// for the (user, achievement) pair.
var ErrDuplicateUnlock = errors.New("achievement already unlocked")

// Repository abstracts persistence for users, sessions, achievements, the
// coin ledger, trees, journal entries and the store. The engine depends only
// on this interface; GormRepository backs it with Postgres and
// MemoryRepository backs it with process memory.
type Repository interface {
	// Transact runs fn against a transaction-scoped repository. If fn
	// returns an error nothing it did becomes visible; otherwise all of it
	// does.
	Transact(fn func(Repository) error) error

	// Users
	CreateUser(user *models.User) error
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	SaveUser(user *models.User) error
	TopUsers(category string, limit int) ([]models.User, error)

	// Game sessions (append-only)
	CreateSession(session *models.GameSession) error
	SessionsByUser(userID uint) ([]models.GameSession, error)

	// Achievements
	Achievements() ([]models.Achievement, error)
	UnlocksByUser(userID uint) ([]models.UserAchievement, error)
	CreateUnlock(unlock *models.UserAchievement) error

	// Coin ledger (append-only)
	CreateCoinTransaction(tx *models.CoinTransaction) error
	CoinTransactionsByUser(userID uint, limit int) ([]models.CoinTransaction, error)

	// Trees
	CreateTree(tree *models.UserTree) error
	GetTree(id uint) (*models.UserTree, error)
	TreesByUser(userID uint) ([]models.UserTree, error)
	SaveTree(tree *models.UserTree) error

	// Journal
	CreateJournalEntry(entry *models.JournalEntry) error
	JournalEntriesByUser(userID uint) ([]models.JournalEntry, error)

	// Store
	StoreItems() ([]models.StoreItem, error)
	GetStoreItem(id uint) (*models.StoreItem, error)
	InventoryByUser(userID uint) ([]models.InventoryItem, error)
	GetInventoryItem(userID, storeItemID uint) (*models.InventoryItem, error)
	SaveInventoryItem(item *models.InventoryItem) error
}
