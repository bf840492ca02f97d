package ledger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/simaogato/ledger-backend/internal/domain"
	"github.com/simaogato/ledger-backend/internal/usecase/transfer"
)

// CreateAccountInput represents the input for creating an account
type CreateAccountInput struct {
	RequestID domain.RequestID
	AccountID domain.AccountID
	Balance   int64
}

// GetBalanceInput represents the input for a balance query
type GetBalanceInput struct {
	RequestID domain.RequestID
	AccountID domain.AccountID
}

// TransferInput represents the input for a multi-leg transfer
type TransferInput struct {
	RequestID domain.RequestID
	Legs      []domain.Leg
}

// LedgerService is the entry point the transport binds to. Every error it
// returns carries exactly one domain category.
type LedgerService struct {
	Repo   domain.LedgerRepository
	engine *transfer.Engine
	logger *zap.Logger
}

// NewLedgerService creates a new LedgerService instance
func NewLedgerService(repo domain.LedgerRepository, logger *zap.Logger) *LedgerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerService{
		Repo:   repo,
		engine: transfer.NewEngine(repo, logger.Named("transfer")),
		logger: logger,
	}
}

// CreateAccount creates an account with an initial balance
func (s *LedgerService) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	account := &domain.Account{
		ID:              input.AccountID,
		Balance:         input.Balance,
		CreationRequest: input.RequestID,
	}

	if err := account.Validate(); err != nil {
		return nil, s.fail("create account", err, zap.Int64("req_id", int64(input.RequestID)), zap.Int64("account_id", int64(input.AccountID)))
	}

	if err := s.Repo.CreateAccount(ctx, account); err != nil {
		return nil, s.fail("create account", err, zap.Int64("req_id", int64(input.RequestID)), zap.Int64("account_id", int64(input.AccountID)))
	}

	s.logger.Info("account created",
		zap.Int64("req_id", int64(input.RequestID)),
		zap.Int64("account_id", int64(input.AccountID)),
		zap.Int64("balance", input.Balance),
	)

	return account, nil
}

// GetBalance returns the current balance of an account
func (s *LedgerService) GetBalance(ctx context.Context, input GetBalanceInput) (int64, error) {
	balance, err := s.Repo.GetBalance(ctx, input.AccountID)
	if err != nil {
		return 0, s.fail("get balance", err, zap.Int64("req_id", int64(input.RequestID)), zap.Int64("account_id", int64(input.AccountID)))
	}
	return balance, nil
}

// Transfer applies all legs atomically, or none of them
func (s *LedgerService) Transfer(ctx context.Context, input TransferInput) error {
	err := s.engine.Transfer(ctx, domain.Transfer{
		RequestID: input.RequestID,
		Legs:      input.Legs,
	})
	if err != nil {
		return s.fail("transfer", err, zap.Int64("req_id", int64(input.RequestID)), zap.Int("legs", len(input.Legs)))
	}

	s.logger.Debug("transfer applied",
		zap.Int64("req_id", int64(input.RequestID)),
		zap.Int("legs", len(input.Legs)),
	)

	return nil
}

// Reset destroys and recreates all ledger state. Administrative use only.
func (s *LedgerService) Reset(ctx context.Context) error {
	if err := s.Repo.Reset(ctx); err != nil {
		return s.fail("reset", err)
	}

	s.logger.Warn("ledger reset")
	return nil
}

// ListTransactions returns the log rows recorded under a request id
func (s *LedgerService) ListTransactions(ctx context.Context, requestID domain.RequestID) ([]domain.Entry, error) {
	entries, err := s.Repo.ListEntries(ctx, requestID)
	if err != nil {
		return nil, s.fail("list transactions", err, zap.Int64("req_id", int64(requestID)))
	}
	return entries, nil
}

// GetSummary returns the account count and exact total balance
func (s *LedgerService) GetSummary(ctx context.Context) (*domain.Summary, error) {
	summary, err := s.Repo.Summary(ctx)
	if err != nil {
		return nil, s.fail("get summary", err)
	}
	return summary, nil
}

// fail logs err at the level its category calls for and returns it with a
// guaranteed category.
func (s *LedgerService) fail(op string, err error, fields ...zap.Field) error {
	category := domain.CategoryOf(err)
	if category == domain.CategoryNone || category == domain.CategoryConflict {
		// a conflict escaping the executor is as opaque to callers as any
		// other store fault
		err = fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
		category = domain.CategoryStoreUnavailable
	}

	fields = append(fields,
		zap.String("op", op),
		zap.String("category", string(category)),
		zap.Error(err),
	)

	switch category {
	case domain.CategoryStoreUnavailable:
		s.logger.Error("ledger operation failed", fields...)
	case domain.CategoryRetryLimit:
		s.logger.Warn("ledger operation gave up", fields...)
	case domain.CategoryCanceled:
		s.logger.Debug("ledger operation canceled", fields...)
	default:
		s.logger.Info("ledger operation rejected", fields...)
	}

	return err
}
