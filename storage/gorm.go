// storage/gorm.go - Postgres-backed repository
package storage

import (
	"errors"

	"gorm.io/gorm"

	"neuroleaf/models"
)

// GormRepository implements Repository on top of a *gorm.DB. Inside Transact
// the receiver is rebound to the transaction handle, so every method works
// the same whether or not a transaction is open.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Transact(fn func(Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}

func wrapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Users

func (r *GormRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *GormRepository) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (r *GormRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (r *GormRepository) SaveUser(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *GormRepository) TopUsers(category string, limit int) ([]models.User, error) {
	var orderBy string
	switch category {
	case "level":
		orderBy = "level DESC, xp DESC"
	case "streak":
		orderBy = "streak DESC, xp DESC"
	case "trees":
		orderBy = "total_trees_planted DESC, xp DESC"
	default:
		orderBy = "xp DESC, level DESC"
	}

	var users []models.User
	err := r.db.Where("is_guest = ?", false).
		Order(orderBy).
		Limit(limit).
		Find(&users).Error
	return users, err
}

// Game sessions

func (r *GormRepository) CreateSession(session *models.GameSession) error {
	return r.db.Create(session).Error
}

func (r *GormRepository) SessionsByUser(userID uint) ([]models.GameSession, error) {
	var sessions []models.GameSession
	err := r.db.Where("user_id = ?", userID).Order("completed_at DESC").Find(&sessions).Error
	return sessions, err
}

// Achievements

func (r *GormRepository) Achievements() ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := r.db.Order("id ASC").Find(&achievements).Error
	return achievements, err
}

func (r *GormRepository) UnlocksByUser(userID uint) ([]models.UserAchievement, error) {
	var unlocks []models.UserAchievement
	err := r.db.Where("user_id = ?", userID).Find(&unlocks).Error
	return unlocks, err
}

func (r *GormRepository) CreateUnlock(unlock *models.UserAchievement) error {
	var count int64
	if err := r.db.Model(&models.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ?", unlock.UserID, unlock.AchievementID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateUnlock
	}
	return r.db.Create(unlock).Error
}

// Coin ledger

func (r *GormRepository) CreateCoinTransaction(tx *models.CoinTransaction) error {
	return r.db.Create(tx).Error
}

func (r *GormRepository) CoinTransactionsByUser(userID uint, limit int) ([]models.CoinTransaction, error) {
	var txs []models.CoinTransaction
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&txs).Error
	return txs, err
}

// Trees

func (r *GormRepository) CreateTree(tree *models.UserTree) error {
	return r.db.Create(tree).Error
}

func (r *GormRepository) GetTree(id uint) (*models.UserTree, error) {
	var tree models.UserTree
	if err := r.db.First(&tree, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &tree, nil
}

func (r *GormRepository) TreesByUser(userID uint) ([]models.UserTree, error) {
	var trees []models.UserTree
	err := r.db.Where("user_id = ?", userID).Order("planted_at ASC").Find(&trees).Error
	return trees, err
}

func (r *GormRepository) SaveTree(tree *models.UserTree) error {
	return r.db.Save(tree).Error
}

// Journal

func (r *GormRepository) CreateJournalEntry(entry *models.JournalEntry) error {
	return r.db.Create(entry).Error
}

func (r *GormRepository) JournalEntriesByUser(userID uint) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}

// Store

func (r *GormRepository) StoreItems() ([]models.StoreItem, error) {
	var items []models.StoreItem
	err := r.db.Where("is_available = ?", true).Order("category, price").Find(&items).Error
	return items, err
}

func (r *GormRepository) GetStoreItem(id uint) (*models.StoreItem, error) {
	var item models.StoreItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &item, nil
}

func (r *GormRepository) InventoryByUser(userID uint) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.Preload("StoreItem").Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

func (r *GormRepository) GetInventoryItem(userID, storeItemID uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.Where("user_id = ? AND store_item_id = ?", userID, storeItemID).First(&item).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return &item, nil
}

func (r *GormRepository) SaveInventoryItem(item *models.InventoryItem) error {
	return r.db.Save(item).Error
}
