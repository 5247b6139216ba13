package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paydesk/transfer-service/internal/domain"
)

// TransferInput represents the input for a fund transfer
type TransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
}

// Service coordinates fund transfers between two accounts.
// It owns a per-account lock table used to serialize transfers that touch
// the same accounts; the locks are acquired in lexicographic id order,
// independent of transfer direction, so opposite-direction transfers over
// the same pair can never deadlock against each other.
type Service struct {
	Store    domain.AccountStore
	Notifier domain.Notifier

	// account id -> *sync.Mutex, populated lazily. Entries are never
	// removed, matching the account lifecycle (accounts are never
	// destroyed during the process lifetime).
	locks sync.Map
}

// NewService creates a new transfer Service instance
func NewService(store domain.AccountStore, notifier domain.Notifier) *Service {
	return &Service{
		Store:    store,
		Notifier: notifier,
	}
}

// Transfer moves input.Amount from the source account to the destination
// account as a single atomic unit.
// Logic:
//  1. Validate the input (positive amount, distinct accounts) before any
//     lookup or locking; validation failures have no side effects.
//  2. Resolve both accounts via the store.
//  3. Lock both accounts in lexicographic id order.
//  4. Withdraw from the source; on insufficient funds, release and fail
//     with no mutation. Otherwise deposit to the destination. Once the
//     withdrawal has succeeded the deposit cannot fail, so there is no
//     interleaving in which the debit lands without the credit.
//  5. Outside the locks, notify both parties best-effort.
func (s *Service) Transfer(ctx context.Context, input TransferInput) (*domain.Transfer, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	if input.FromAccountID == input.ToAccountID {
		return nil, domain.ErrSameAccount
	}

	from, err := s.Store.Lookup(ctx, input.FromAccountID)
	if err != nil {
		return nil, err
	}
	to, err := s.Store.Lookup(ctx, input.ToAccountID)
	if err != nil {
		return nil, err
	}

	if !s.withBothLocked(input.FromAccountID, input.ToAccountID, func() bool {
		if !from.TryWithdraw(input.Amount) {
			return false
		}
		to.Deposit(input.Amount)
		return true
	}) {
		return nil, domain.ErrInsufficientBalance
	}

	// The transfer is committed; notifications are a courtesy and their
	// failure must not surface as a transfer failure.
	s.notify(from, fmt.Sprintf("Amount %s has been transferred to account %s", input.Amount, to.ID()))
	s.notify(to, fmt.Sprintf("Amount %s received from account %s", input.Amount, from.ID()))

	return &domain.Transfer{
		ID:            uuid.New(),
		FromAccountID: from.ID(),
		ToAccountID:   to.ID(),
		Amount:        input.Amount,
		Date:          time.Now(),
	}, nil
}

// withBothLocked runs fn while holding the pair locks for both account
// ids, acquiring them in lexicographic order regardless of which side is
// the source. Both locks are released before it returns.
func (s *Service) withBothLocked(aID, bID string, fn func() bool) bool {
	firstID, secondID := aID, bID
	if secondID < firstID {
		firstID, secondID = secondID, firstID
	}

	first := s.lockFor(firstID)
	second := s.lockFor(secondID)

	first.Lock()
	defer first.Unlock()
	second.Lock()
	defer second.Unlock()

	return fn()
}

// lockFor returns the mutex for the given account id, creating it on
// first use.
func (s *Service) lockFor(id string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (s *Service) notify(account *domain.Account, message string) {
	if err := s.Notifier.NotifyAboutTransfer(account, message); err != nil {
		slog.Warn("transfer notification failed", "account_id", account.ID(), "error", err)
	}
}
