package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/simaogato/ledger-backend/internal/domain"
	"github.com/simaogato/ledger-backend/internal/txn"
)

// ledgerRepository implements domain.LedgerRepository
type ledgerRepository struct {
	db     *DB
	schema Schema
	exec   *txn.Executor[*session]
}

// NewLedgerRepository creates a new ledger repository. Transfers run through a
// retrying executor configured by policy.
func NewLedgerRepository(db *DB, schema Schema, policy txn.Policy, logger *zap.Logger) domain.LedgerRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &ledgerRepository{db: db, schema: schema}
	r.exec = txn.NewExecutor(r.beginSerializable, policy, logger.Named("txn"))
	return r
}

// RunInTx runs work in a serializable transaction, retrying on conflicts
func (r *ledgerRepository) RunInTx(ctx context.Context, work func(ctx context.Context, tx domain.LedgerTx) error) error {
	return r.exec.Run(ctx, func(ctx context.Context, s *session) error {
		return work(ctx, s)
	})
}

// CreateAccount creates a new account. The insert runs as a one-statement
// unit of work so serialization conflicts are retried like any transfer.
func (r *ledgerRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	err := r.exec.Run(ctx, func(ctx context.Context, s *session) error {
		return s.insertAccount(ctx, account)
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("%w: id %d", domain.ErrAlreadyExists, account.ID)
	}
	return err
}

// GetBalance retrieves the balance of an account by its ID
func (r *ledgerRepository) GetBalance(ctx context.Context, id domain.AccountID) (int64, error) {
	var balance int64
	err := r.exec.Run(ctx, func(ctx context.Context, s *session) error {
		var err error
		balance, err = s.balance(ctx, id)
		return err
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}

// ListEntries retrieves the log rows recorded under a request id
func (r *ledgerRepository) ListEntries(ctx context.Context, requestID domain.RequestID) ([]domain.Entry, error) {
	var entries []domain.Entry
	err := r.exec.Run(ctx, func(ctx context.Context, s *session) error {
		var err error
		entries, err = s.entries(ctx, requestID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Summary returns the account count and the exact sum of all balances
func (r *ledgerRepository) Summary(ctx context.Context) (*domain.Summary, error) {
	var summary *domain.Summary
	err := r.exec.Run(ctx, func(ctx context.Context, s *session) error {
		var err error
		summary, err = s.summary(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// Reset drops and recreates the ledger schema
func (r *ledgerRepository) Reset(ctx context.Context) error {
	if err := r.schema.Reset(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("reset: %w", err)
		}
		return fmt.Errorf("%w: reset: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}
