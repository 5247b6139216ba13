package account

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/paydesk/transfer-service/internal/domain"
)

// OpenAccountInput represents the input for opening an account
type OpenAccountInput struct {
	ID             string
	InitialBalance decimal.Decimal
}

// Service handles account creation and retrieval.
type Service struct {
	Store domain.AccountStore
}

// NewService creates a new account Service instance
func NewService(store domain.AccountStore) *Service {
	return &Service{Store: store}
}

// Open creates an account with the given id and initial balance.
// Returns domain.ErrDuplicateAccount if the id is already taken.
func (s *Service) Open(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	acc, err := domain.NewAccount(input.ID, input.InitialBalance)
	if err != nil {
		return nil, err
	}

	if err := s.Store.Create(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

// Get retrieves an account by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.Store.Lookup(ctx, id)
}
