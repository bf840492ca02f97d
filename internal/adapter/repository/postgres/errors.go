package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/simaogato/ledger-backend/internal/domain"
)

// SQLSTATE codes the ledger reacts to.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeForeignKeyViolation  = "23503"
	codeNumericOutOfRange    = "22003"
)

// classify wraps err with the domain category matching its SQLSTATE so that
// nothing above this package inspects vendor codes. op names the failed step.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeSerializationFailure, codeDeadlockDetected:
			return fmt.Errorf("%w: %s: %v", domain.ErrTransientConflict, op, err)
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s: %v", domain.ErrAlreadyExists, op, err)
		case codeCheckViolation:
			return fmt.Errorf("%w: %s: insufficient funds: %v", domain.ErrLegFailure, op, err)
		case codeNumericOutOfRange:
			return fmt.Errorf("%w: %s: balance out of range: %v", domain.ErrLegFailure, op, err)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s: unknown account: %v", domain.ErrLegFailure, op, err)
		}
		return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
	}

	// connection, pool and driver failures
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
}
