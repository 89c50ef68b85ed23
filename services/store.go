// services/store.go - store purchases
package services

import (
	"errors"
	"fmt"

	"neuroleaf/models"
	"neuroleaf/storage"
)

// PurchaseReceipt summarizes a successful purchase.
type PurchaseReceipt struct {
	Item      models.StoreItem `json:"item"`
	Quantity  int              `json:"quantity"`
	TotalCost int              `json:"total_cost"`
	Coins     int              `json:"coins"` // balance after purchase
}

// Purchase debits the user's coins for quantity * price and credits the
// item to their inventory. ErrItemUnavailable if the item is unknown or
// disabled; ErrInsufficientFunds if the balance cannot cover the cost. On
// either failure nothing changes.
func (s *Service) Purchase(userID, storeItemID uint, quantity int) (*PurchaseReceipt, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	var receipt *PurchaseReceipt
	err := s.repo.Transact(func(tx storage.Repository) error {
		item, err := tx.GetStoreItem(storeItemID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrItemUnavailable
			}
			return err
		}
		if !item.IsAvailable {
			return ErrItemUnavailable
		}

		user, err := tx.GetUser(userID)
		if err != nil {
			return err
		}

		totalCost := item.Price * quantity
		description := fmt.Sprintf("Purchased %dx %s", quantity, item.Name)
		if _, err := applyCoinTransaction(tx, user, -totalCost, models.TxTypePurchase, description, ""); err != nil {
			return err
		}

		entry, err := tx.GetInventoryItem(userID, storeItemID)
		if errors.Is(err, storage.ErrNotFound) {
			entry = &models.InventoryItem{UserID: userID, StoreItemID: storeItemID}
		} else if err != nil {
			return err
		}
		entry.Quantity += quantity
		if err := tx.SaveInventoryItem(entry); err != nil {
			return err
		}

		if err := tx.SaveUser(user); err != nil {
			return err
		}

		receipt = &PurchaseReceipt{
			Item:      *item,
			Quantity:  quantity,
			TotalCost: totalCost,
			Coins:     user.Coins,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// Catalog returns all available store items.
func (s *Service) Catalog() ([]models.StoreItem, error) {
	return s.repo.StoreItems()
}

// Inventory returns everything the user owns.
func (s *Service) Inventory(userID uint) ([]models.InventoryItem, error) {
	return s.repo.InventoryByUser(userID)
}
