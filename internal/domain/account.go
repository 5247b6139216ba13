package domain

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Account represents an account entity in the domain layer.
// The balance is guarded by the account's own mutex and is only reachable
// through the atomic operations below; callers never see the lock.
type Account struct {
	id string

	mu      sync.Mutex
	balance decimal.Decimal
}

// NewAccount creates an account with the given id and initial balance.
// Returns an error if the id is empty or the balance is negative.
func NewAccount(id string, initialBalance decimal.Decimal) (*Account, error) {
	if id == "" {
		return nil, ErrEmptyAccountID
	}
	if initialBalance.IsNegative() {
		return nil, ErrNegativeBalance
	}

	return &Account{
		id:      id,
		balance: initialBalance,
	}, nil
}

// ID returns the account identifier. Immutable once created.
func (a *Account) ID() string {
	return a.id
}

// Balance returns an atomic snapshot of the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit atomically adds amount to the balance.
// The amount is pre-validated positive by the caller's contract.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
}

// TryWithdraw atomically subtracts amount from the balance if the balance
// covers it, returning true. Otherwise the balance is left unchanged and
// false is returned. The check and the subtraction happen under the same
// lock, so no concurrent operation can slip between them.
func (a *Account) TryWithdraw(amount decimal.Decimal) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.balance.LessThan(amount) {
		return false
	}

	a.balance = a.balance.Sub(amount)
	return true
}
