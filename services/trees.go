// services/trees.go - growth-tree care
package services

import (
	"fmt"
	"time"

	"neuroleaf/models"
	"neuroleaf/progression"
	"neuroleaf/storage"
)

// WateringXP is the contribution a single watering adds to a tree.
const WateringXP = 10

// PlantTree creates a new tree for the user and bumps their planted
// counter.
func (s *Service) PlantTree(userID uint, treeType string) (*models.UserTree, error) {
	if treeType == "" {
		return nil, fmt.Errorf("%w: tree type required", ErrInvalidInput)
	}

	var tree *models.UserTree
	err := s.repo.Transact(func(tx storage.Repository) error {
		user, err := tx.GetUser(userID)
		if err != nil {
			return err
		}

		tree = &models.UserTree{
			UserID:      userID,
			TreeType:    treeType,
			GrowthStage: 1,
			PlantedAt:   time.Now(),
		}
		if err := tx.CreateTree(tree); err != nil {
			return err
		}

		user.TotalTreesPlanted++
		return tx.SaveUser(user)
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// GrowTree contributes XP to one of the user's trees and recomputes its
// stage.
func (s *Service) GrowTree(userID, treeID uint, xp int) (*models.UserTree, error) {
	var tree *models.UserTree
	err := s.repo.Transact(func(tx storage.Repository) error {
		current, err := s.ownedTree(tx, userID, treeID)
		if err != nil {
			return err
		}
		grown, err := progression.GrowTree(*current, xp)
		if err != nil {
			return err
		}
		if err := tx.SaveTree(&grown); err != nil {
			return err
		}
		tree = &grown
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// WaterTree records a watering and contributes a small fixed amount of XP.
func (s *Service) WaterTree(userID, treeID uint) (*models.UserTree, error) {
	var tree *models.UserTree
	err := s.repo.Transact(func(tx storage.Repository) error {
		current, err := s.ownedTree(tx, userID, treeID)
		if err != nil {
			return err
		}
		grown, err := progression.GrowTree(*current, WateringXP)
		if err != nil {
			return err
		}
		now := time.Now()
		grown.LastWatered = &now
		if err := tx.SaveTree(&grown); err != nil {
			return err
		}
		tree = &grown
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// DecorateTree attaches a decoration to the tree. Duplicate decorations are
// no-ops.
func (s *Service) DecorateTree(userID, treeID uint, decoration string) (*models.UserTree, error) {
	if decoration == "" {
		return nil, fmt.Errorf("%w: decoration required", ErrInvalidInput)
	}

	var tree *models.UserTree
	err := s.repo.Transact(func(tx storage.Repository) error {
		current, err := s.ownedTree(tx, userID, treeID)
		if err != nil {
			return err
		}
		current.AddDecoration(decoration)
		if err := tx.SaveTree(current); err != nil {
			return err
		}
		tree = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// Trees lists the user's trees, oldest planted first.
func (s *Service) Trees(userID uint) ([]models.UserTree, error) {
	return s.repo.TreesByUser(userID)
}

// ownedTree fetches a tree and hides other users' trees behind ErrNotFound.
func (s *Service) ownedTree(tx storage.Repository, userID, treeID uint) (*models.UserTree, error) {
	tree, err := tx.GetTree(treeID)
	if err != nil {
		return nil, err
	}
	if tree.UserID != userID {
		return nil, storage.ErrNotFound
	}
	return tree, nil
}
