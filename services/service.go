// services/service.go - orchestration layer over the repository
package services

import (
	"errors"

	"neuroleaf/storage"
)

// Service wires the pure progression engine to a Repository. Every mutating
// operation runs inside Repository.Transact, so callers observe either the
// full pre-state or the full post-state.
type Service struct {
	repo storage.Repository
}

func New(repo storage.Repository) *Service {
	return &Service{repo: repo}
}

// Repo exposes the underlying repository for read-only accessors.
func (s *Service) Repo() storage.Repository {
	return s.repo
}

var (
	// ErrInsufficientFunds means a coin debit would drive the balance
	// negative. The transaction is aborted and nothing is recorded.
	ErrInsufficientFunds = errors.New("insufficient coins")

	// ErrItemUnavailable means the store item does not exist or is disabled.
	ErrItemUnavailable = errors.New("store item unavailable")

	// ErrInvalidInput covers malformed caller input (bad quantity, focus
	// level out of range, unknown energy level).
	ErrInvalidInput = errors.New("invalid input")
)
