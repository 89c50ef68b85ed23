// services/ledger.go - the coin ledger gateway
package services

import (
	"time"

	"neuroleaf/models"
	"neuroleaf/storage"
)

// applyCoinTransaction is the single gateway through which every coin
// balance change flows: game rewards, welcome bonuses and purchases. A debit
// that would drive the balance negative fails with ErrInsufficientFunds
// before anything is recorded. The caller is responsible for persisting the
// mutated user inside the same transaction.
func applyCoinTransaction(repo storage.Repository, user *models.User, amount int, txType, description, gameType string) (*models.CoinTransaction, error) {
	if amount < 0 && user.Coins+amount < 0 {
		return nil, ErrInsufficientFunds
	}

	entry := &models.CoinTransaction{
		UserID:          user.ID,
		Amount:          amount,
		TransactionType: txType,
		Description:     description,
		GameType:        gameType,
		CreatedAt:       time.Now(),
	}
	if err := repo.CreateCoinTransaction(entry); err != nil {
		return nil, err
	}

	user.Coins += amount
	return entry, nil
}

// CoinHistory returns the most recent ledger entries for a user.
func (s *Service) CoinHistory(userID uint, limit int) ([]models.CoinTransaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.CoinTransactionsByUser(userID, limit)
}
