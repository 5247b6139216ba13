package domain

import "context"

// AccountStore defines the interface for account storage operations.
// The store owns the canonical Account instances; services borrow
// references for the duration of an operation.
type AccountStore interface {
	// Create registers a new account.
	// Returns ErrDuplicateAccount if the id is already present.
	Create(ctx context.Context, account *Account) error

	// Lookup retrieves an account by its id.
	// Returns ErrAccountNotFound if the id is unknown.
	Lookup(ctx context.Context, id string) (*Account, error)

	// Clear removes all accounts. Test/reset hook.
	Clear()
}

// Notifier informs an account holder about a transfer they took part in.
// Notification is best-effort: it runs after the transfer has committed
// and its failure never affects the transfer outcome.
type Notifier interface {
	NotifyAboutTransfer(account *Account, message string) error
}
