// Package memory provides the in-memory implementation of the account store.
// It is the whole ledger for this service: a single-process map of account
// id to account, safe for concurrent use.
package memory

import (
	"context"
	"sync"

	"github.com/paydesk/transfer-service/internal/domain"
)

// Store is a concurrency-safe in-memory domain.AccountStore.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

// NewStore creates an empty in-memory account store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*domain.Account),
	}
}

// Create registers a new account, rejecting duplicate ids.
func (s *Store) Create(_ context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.ID()]; exists {
		return domain.ErrDuplicateAccount
	}

	s.accounts[account.ID()] = account
	return nil
}

// Lookup retrieves an account by id.
func (s *Store) Lookup(_ context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, exists := s.accounts[id]
	if !exists {
		return nil, domain.ErrAccountNotFound
	}

	return account, nil
}

// Clear removes all accounts. Intended for tests.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = make(map[string]*domain.Account)
}
