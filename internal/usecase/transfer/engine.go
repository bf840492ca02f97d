package transfer

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/simaogato/ledger-backend/internal/domain"
)

// Engine applies multi-leg transfers atomically
type Engine struct {
	Transactor domain.Transactor
	logger     *zap.Logger
}

// NewEngine creates a new Engine instance
func NewEngine(transactor domain.Transactor, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		Transactor: transactor,
		logger:     logger,
	}
}

// Transfer validates and applies a transfer
// Logic:
//  1. Reject the transfer when its deltas do not sum to zero. No transaction
//     is opened for a rejected transfer.
//  2. Apply every leg, in request order, as one unit of work. Conflicts are
//     retried by the transactor; any other failure rolls back all legs.
func (e *Engine) Transfer(ctx context.Context, t domain.Transfer) error {
	// 1. Conservation check
	if err := t.Validate(); err != nil {
		return err
	}

	// work may run more than once; it reads a private copy of the legs
	legs := slices.Clone(t.Legs)
	for i, leg := range legs {
		if leg.Delta == 0 {
			e.logger.Debug("zero delta leg", zap.Int64("req_id", int64(t.RequestID)), zap.Int("index", i))
		}
	}

	// 2. Atomic application
	return e.Transactor.RunInTx(ctx, func(ctx context.Context, tx domain.LedgerTx) error {
		return tx.ApplyLegs(ctx, t.RequestID, legs)
	})
}
