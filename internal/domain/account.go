package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// AccountID is the caller-assigned, immutable account identity.
type AccountID int64

// RequestID is the caller-supplied request identity. It is not unique at the
// store level.
type RequestID int64

// Account represents an account entity in the domain layer
type Account struct {
	ID              AccountID
	Balance         int64 // minor units, never negative once persisted
	CreationRequest RequestID
	CreatedAt       time.Time
}

// Validate ensures the account adheres to domain rules
func (a *Account) Validate() error {
	if a.Balance < 0 {
		return fmt.Errorf("%w: initial balance must be non-negative, got %d", ErrValidation, a.Balance)
	}
	return nil
}

// AddDelta returns balance+delta, rejecting results that would wrap around
// int64 or go negative.
func AddDelta(balance, delta int64) (int64, error) {
	if (delta > 0 && balance > math.MaxInt64-delta) || (delta < 0 && balance < math.MinInt64-delta) {
		return 0, fmt.Errorf("%w: balance %d %+d out of range", ErrLegFailure, balance, delta)
	}
	next := balance + delta
	if next < 0 {
		return 0, fmt.Errorf("%w: insufficient funds: balance %d, delta %d", ErrLegFailure, balance, delta)
	}
	return next, nil
}

// Summary is a ledger-wide snapshot used for conservation checks.
type Summary struct {
	AccountCount int64
	TotalBalance decimal.Decimal
}
