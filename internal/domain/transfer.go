package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer represents a completed fund transfer between two accounts.
// It is a record of an already committed movement, never a pending one:
// a transfer either fully completes or no Transfer value exists.
type Transfer struct {
	ID            uuid.UUID
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Date          time.Time
}
