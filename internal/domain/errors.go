package domain

import "errors"

// Domain errors
var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrSameAccount         = errors.New("source and destination accounts cannot be the same")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInsufficientBalance = errors.New("insufficient balance in the source account")
	ErrDuplicateAccount    = errors.New("account already exists")
	ErrEmptyAccountID      = errors.New("account id cannot be empty")
	ErrNegativeBalance     = errors.New("initial balance cannot be negative")
)
