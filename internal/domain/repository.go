package domain

import (
	"context"
)

// LedgerRepository defines the capability set every backing store implements
type LedgerRepository interface {
	Transactor

	// CreateAccount inserts a new account.
	// Returns ErrAlreadyExists when the id is taken.
	CreateAccount(ctx context.Context, account *Account) error

	// GetBalance returns the current balance of an account.
	// Returns ErrNotFound when no such account exists.
	GetBalance(ctx context.Context, id AccountID) (int64, error)

	// ListEntries returns the log rows recorded under a request id, ordered
	// by creation time then leg position.
	ListEntries(ctx context.Context, requestID RequestID) ([]Entry, error)

	// Summary returns the account count and exact total balance.
	Summary(ctx context.Context) (*Summary, error)

	// Reset destroys and recreates all accounts and log rows.
	Reset(ctx context.Context) error
}

// LedgerTx is the view of the store available inside a transaction.
type LedgerTx interface {
	// ApplyLegs adds each delta to its account and appends a log row, in leg
	// order. A missing account or a balance that would go negative returns
	// ErrLegFailure; the caller's transaction must then be discarded.
	ApplyLegs(ctx context.Context, requestID RequestID, legs []Leg) error
}

// Transactor runs a unit of work atomically. Implementations retry the unit of
// work on serialization conflicts, so work must have no effects outside tx.
type Transactor interface {
	RunInTx(ctx context.Context, work func(ctx context.Context, tx LedgerTx) error) error
}
