// storage/memory.go - in-memory reference repository
package storage

import (
	"sort"
	"sync"
	"time"

	"neuroleaf/models"
)

// MemoryRepository is the reference Repository implementation: a single
// process-local store for tests and single-device use. Transact clones the
// whole state, runs fn against the clone, and swaps it in only on success,
// so a failed operation leaves no trace.
type MemoryRepository struct {
	mu    sync.Mutex
	state *memoryState
	inTx  bool
}

type memoryState struct {
	users      map[uint]models.User
	sessions   []models.GameSession
	achievs    []models.Achievement
	unlocks    []models.UserAchievement
	coinTxs    []models.CoinTransaction
	trees      map[uint]models.UserTree
	journal    []models.JournalEntry
	storeItems map[uint]models.StoreItem
	inventory  []models.InventoryItem
	nextID     uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{state: &memoryState{
		users:      make(map[uint]models.User),
		trees:      make(map[uint]models.UserTree),
		storeItems: make(map[uint]models.StoreItem),
		nextID:     1,
	}}
}

func (s *memoryState) clone() *memoryState {
	c := &memoryState{
		users:      make(map[uint]models.User, len(s.users)),
		sessions:   append([]models.GameSession(nil), s.sessions...),
		achievs:    append([]models.Achievement(nil), s.achievs...),
		unlocks:    append([]models.UserAchievement(nil), s.unlocks...),
		coinTxs:    append([]models.CoinTransaction(nil), s.coinTxs...),
		trees:      make(map[uint]models.UserTree, len(s.trees)),
		journal:    append([]models.JournalEntry(nil), s.journal...),
		storeItems: make(map[uint]models.StoreItem, len(s.storeItems)),
		inventory:  append([]models.InventoryItem(nil), s.inventory...),
		nextID:     s.nextID,
	}
	for id, u := range s.users {
		c.users[id] = u
	}
	for id, t := range s.trees {
		c.trees[id] = t
	}
	for id, it := range s.storeItems {
		c.storeItems[id] = it
	}
	return c
}

func (s *memoryState) allocID() uint {
	id := s.nextID
	s.nextID++
	return id
}

// lock is a no-op inside a transaction: the parent repository already holds
// the mutex for the whole transaction.
func (r *MemoryRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *MemoryRepository) Transact(fn func(Repository) error) error {
	if r.inTx {
		return fn(r)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := r.state.clone()
	if err := fn(&MemoryRepository{state: clone, inTx: true}); err != nil {
		return err
	}
	r.state = clone
	return nil
}

// Users

func (r *MemoryRepository) CreateUser(user *models.User) error {
	defer r.lock()()
	user.ID = r.state.allocID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.state.users[user.ID] = *user
	return nil
}

func (r *MemoryRepository) GetUser(id uint) (*models.User, error) {
	defer r.lock()()
	user, ok := r.state.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *MemoryRepository) GetUserByUsername(username string) (*models.User, error) {
	defer r.lock()()
	for _, user := range r.state.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) SaveUser(user *models.User) error {
	defer r.lock()()
	if _, ok := r.state.users[user.ID]; !ok {
		return ErrNotFound
	}
	user.UpdatedAt = time.Now()
	r.state.users[user.ID] = *user
	return nil
}

func (r *MemoryRepository) TopUsers(category string, limit int) ([]models.User, error) {
	defer r.lock()()
	users := make([]models.User, 0, len(r.state.users))
	for _, user := range r.state.users {
		if !user.IsGuest {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		a, b := users[i], users[j]
		switch category {
		case "level":
			if a.Level != b.Level {
				return a.Level > b.Level
			}
		case "streak":
			if a.Streak != b.Streak {
				return a.Streak > b.Streak
			}
		case "trees":
			if a.TotalTreesPlanted != b.TotalTreesPlanted {
				return a.TotalTreesPlanted > b.TotalTreesPlanted
			}
		}
		return a.XP > b.XP
	})
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

// Game sessions

func (r *MemoryRepository) CreateSession(session *models.GameSession) error {
	defer r.lock()()
	session.ID = r.state.allocID()
	session.CreatedAt = time.Now()
	r.state.sessions = append(r.state.sessions, *session)
	return nil
}

func (r *MemoryRepository) SessionsByUser(userID uint) ([]models.GameSession, error) {
	defer r.lock()()
	var sessions []models.GameSession
	for _, s := range r.state.sessions {
		if s.UserID == userID {
			sessions = append(sessions, s)
		}
	}
	return sessions, nil
}

// Achievements

func (r *MemoryRepository) CreateAchievement(achievement *models.Achievement) error {
	defer r.lock()()
	achievement.ID = r.state.allocID()
	r.state.achievs = append(r.state.achievs, *achievement)
	return nil
}

func (r *MemoryRepository) Achievements() ([]models.Achievement, error) {
	defer r.lock()()
	return append([]models.Achievement(nil), r.state.achievs...), nil
}

func (r *MemoryRepository) UnlocksByUser(userID uint) ([]models.UserAchievement, error) {
	defer r.lock()()
	var unlocks []models.UserAchievement
	for _, u := range r.state.unlocks {
		if u.UserID == userID {
			unlocks = append(unlocks, u)
		}
	}
	return unlocks, nil
}

func (r *MemoryRepository) CreateUnlock(unlock *models.UserAchievement) error {
	defer r.lock()()
	for _, u := range r.state.unlocks {
		if u.UserID == unlock.UserID && u.AchievementID == unlock.AchievementID {
			return ErrDuplicateUnlock
		}
	}
	unlock.ID = r.state.allocID()
	r.state.unlocks = append(r.state.unlocks, *unlock)
	return nil
}

// Coin ledger

func (r *MemoryRepository) CreateCoinTransaction(tx *models.CoinTransaction) error {
	defer r.lock()()
	tx.ID = r.state.allocID()
	tx.CreatedAt = time.Now()
	r.state.coinTxs = append(r.state.coinTxs, *tx)
	return nil
}

func (r *MemoryRepository) CoinTransactionsByUser(userID uint, limit int) ([]models.CoinTransaction, error) {
	defer r.lock()()
	var txs []models.CoinTransaction
	for i := len(r.state.coinTxs) - 1; i >= 0; i-- {
		if r.state.coinTxs[i].UserID == userID {
			txs = append(txs, r.state.coinTxs[i])
			if limit > 0 && len(txs) == limit {
				break
			}
		}
	}
	return txs, nil
}

// Trees

func (r *MemoryRepository) CreateTree(tree *models.UserTree) error {
	defer r.lock()()
	tree.ID = r.state.allocID()
	tree.CreatedAt = time.Now()
	r.state.trees[tree.ID] = *tree
	return nil
}

func (r *MemoryRepository) GetTree(id uint) (*models.UserTree, error) {
	defer r.lock()()
	tree, ok := r.state.trees[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &tree, nil
}

func (r *MemoryRepository) TreesByUser(userID uint) ([]models.UserTree, error) {
	defer r.lock()()
	var trees []models.UserTree
	for _, t := range r.state.trees {
		if t.UserID == userID {
			trees = append(trees, t)
		}
	}
	sort.Slice(trees, func(i, j int) bool { return trees[i].PlantedAt.Before(trees[j].PlantedAt) })
	return trees, nil
}

func (r *MemoryRepository) SaveTree(tree *models.UserTree) error {
	defer r.lock()()
	if _, ok := r.state.trees[tree.ID]; !ok {
		return ErrNotFound
	}
	tree.UpdatedAt = time.Now()
	r.state.trees[tree.ID] = *tree
	return nil
}

// Journal

func (r *MemoryRepository) CreateJournalEntry(entry *models.JournalEntry) error {
	defer r.lock()()
	entry.ID = r.state.allocID()
	entry.CreatedAt = time.Now()
	r.state.journal = append(r.state.journal, *entry)
	return nil
}

func (r *MemoryRepository) JournalEntriesByUser(userID uint) ([]models.JournalEntry, error) {
	defer r.lock()()
	var entries []models.JournalEntry
	for _, e := range r.state.journal {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// Store

func (r *MemoryRepository) CreateStoreItem(item *models.StoreItem) error {
	defer r.lock()()
	item.ID = r.state.allocID()
	r.state.storeItems[item.ID] = *item
	return nil
}

func (r *MemoryRepository) StoreItems() ([]models.StoreItem, error) {
	defer r.lock()()
	var items []models.StoreItem
	for _, it := range r.state.storeItems {
		if it.IsAvailable {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *MemoryRepository) GetStoreItem(id uint) (*models.StoreItem, error) {
	defer r.lock()()
	item, ok := r.state.storeItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (r *MemoryRepository) InventoryByUser(userID uint) ([]models.InventoryItem, error) {
	defer r.lock()()
	var items []models.InventoryItem
	for _, it := range r.state.inventory {
		if it.UserID == userID {
			items = append(items, it)
		}
	}
	return items, nil
}

func (r *MemoryRepository) GetInventoryItem(userID, storeItemID uint) (*models.InventoryItem, error) {
	defer r.lock()()
	for _, it := range r.state.inventory {
		if it.UserID == userID && it.StoreItemID == storeItemID {
			item := it
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) SaveInventoryItem(item *models.InventoryItem) error {
	defer r.lock()()
	item.UpdatedAt = time.Now()
	if item.ID == 0 {
		item.ID = r.state.allocID()
		item.CreatedAt = item.UpdatedAt
		r.state.inventory = append(r.state.inventory, *item)
		return nil
	}
	for i := range r.state.inventory {
		if r.state.inventory[i].ID == item.ID {
			r.state.inventory[i] = *item
			return nil
		}
	}
	return ErrNotFound
}
