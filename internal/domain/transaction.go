package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrUnbalancedTransfer is the reason attached to ErrValidation when the
// deltas of a transfer do not sum to zero.
var ErrUnbalancedTransfer = errors.New("sum of deltas must be zero")

// Leg is one (account, signed delta) pair within a transfer
type Leg struct {
	AccountID AccountID
	Delta     int64
}

// Transfer represents a multi-leg money movement in the domain layer.
// Legs are applied and logged in slice order.
type Transfer struct {
	RequestID RequestID
	Legs      []Leg
}

// Validate ensures the transfer conserves money.
// The sum is computed exactly, so legs whose int64 sum would wrap to zero are
// still rejected.
func (t *Transfer) Validate() error {
	total := decimal.Zero
	for _, leg := range t.Legs {
		total = total.Add(decimal.NewFromInt(leg.Delta))
	}

	if !total.IsZero() {
		return fmt.Errorf("%w: %w (got %s)", ErrValidation, ErrUnbalancedTransfer, total.String())
	}

	return nil
}

// Entry is one row of the append-only transaction log: a single applied leg.
type Entry struct {
	ID        uuid.UUID
	Index     int // position of the leg within its transfer
	RequestID RequestID
	AccountID AccountID
	Amount    int64
	CreatedAt time.Time
}
