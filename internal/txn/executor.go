// Package txn runs units of work inside serializable transactions and
// transparently retries them on serialization conflicts.
package txn

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/simaogato/ledger-backend/internal/domain"
)

// Session is an open serializable transaction with a single restart point.
// Implementations report serialization conflicts wrapped in
// domain.ErrTransientConflict from any method.
type Session interface {
	// Savepoint establishes the restart point.
	Savepoint(ctx context.Context) error
	// ReleaseSavepoint finalizes the work done since the restart point.
	ReleaseSavepoint(ctx context.Context) error
	// RollbackToSavepoint discards the work done since the restart point,
	// leaving the restart point in place.
	RollbackToSavepoint(ctx context.Context) error
	Commit() error
	Rollback() error
}

// BeginFunc opens a serializable transaction.
type BeginFunc[S Session] func(ctx context.Context) (S, error)

// Work is a unit of work. It may run several times for one Run call and must
// not have effects outside the session.
type Work[S Session] func(ctx context.Context, s S) error

// Executor is the only place conflict-retry policy lives.
type Executor[S Session] struct {
	begin  BeginFunc[S]
	policy Policy
	logger *zap.Logger
}

// NewExecutor creates a new Executor
func NewExecutor[S Session](begin BeginFunc[S], policy Policy, logger *zap.Logger) *Executor[S] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor[S]{begin: begin, policy: policy, logger: logger}
}

// errRestart asks Run to open a new transaction.
var errRestart = errors.New("restart transaction")

// attempts tracks the retry budget of one Run call.
type attempts struct {
	policy  Policy
	backoff backoff.BackOff
	n       int
}

// Run executes work in a transaction and commits it. Conflicts roll back to
// the restart point (or restart the transaction, per policy) and run work
// again. Any other error aborts and is returned as-is.
func (e *Executor[S]) Run(ctx context.Context, work Work[S]) error {
	budget := &attempts{policy: e.policy, backoff: e.policy.newBackOff(), n: 1}

	for {
		err := e.runTx(ctx, budget, work)
		if !errors.Is(err, errRestart) {
			return err
		}
	}
}

func (e *Executor[S]) runTx(ctx context.Context, budget *attempts, work Work[S]) error {
	s, err := e.begin(ctx)
	if err != nil {
		return err
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		if rbErr := s.Rollback(); rbErr != nil {
			e.logger.Warn("rollback failed", zap.Error(rbErr))
		}
	}()

	if err := s.Savepoint(ctx); err != nil {
		return err
	}

	for {
		err := work(ctx, s)
		if err == nil {
			err = s.ReleaseSavepoint(ctx)
		}
		if err == nil {
			break
		}
		if !domain.IsConflict(err) {
			return err
		}
		if err := e.wait(ctx, budget, err); err != nil {
			return err
		}
		if e.policy.RestartTransaction {
			return errRestart
		}
		if err := s.RollbackToSavepoint(ctx); err != nil {
			return err
		}
	}

	finished = true
	if err := s.Commit(); err != nil {
		if !domain.IsConflict(err) {
			return err
		}
		if err := e.wait(ctx, budget, err); err != nil {
			return err
		}
		return errRestart
	}

	return nil
}

// wait charges one attempt for conflict and sleeps for the next backoff
// interval. It returns an ErrRetryLimit error when the budget is spent.
func (e *Executor[S]) wait(ctx context.Context, budget *attempts, conflict error) error {
	if budget.policy.MaxAttempts > 0 && budget.n >= budget.policy.MaxAttempts {
		e.logger.Warn("giving up after serialization conflicts",
			zap.Int("attempts", budget.n),
			zap.Error(conflict),
		)
		return fmt.Errorf("%w: gave up after %d attempts (last: %v)", domain.ErrRetryLimit, budget.n, conflict)
	}

	delay := budget.backoff.NextBackOff()
	if delay == backoff.Stop {
		delay = budget.policy.MaxBackoff
	}

	e.logger.Debug("retrying after serialization conflict",
		zap.Int("attempt", budget.n),
		zap.Duration("backoff", delay),
		zap.Error(conflict),
	)
	budget.n++

	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting to retry: %w", ctx.Err())
	}
}
