package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/simaogato/ledger-backend/internal/domain"
)

// MockLedgerRepository is a mock implementation of LedgerRepository for testing
type MockLedgerRepository struct {
	mock.Mock
	Tx *MockLedgerTx
}

func (m *MockLedgerRepository) RunInTx(ctx context.Context, work func(ctx context.Context, tx domain.LedgerTx) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return work(ctx, m.Tx)
}

func (m *MockLedgerRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetBalance(ctx context.Context, id domain.AccountID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context, requestID domain.RequestID) ([]domain.Entry, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockLedgerRepository) Summary(ctx context.Context) (*domain.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

func (m *MockLedgerRepository) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockLedgerTx is a mock implementation of LedgerTx for testing
type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) ApplyLegs(ctx context.Context, requestID domain.RequestID, legs []domain.Leg) error {
	args := m.Called(ctx, requestID, legs)
	return args.Error(0)
}

func newTestService() (*LedgerService, *MockLedgerRepository, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	repo := &MockLedgerRepository{Tx: new(MockLedgerTx)}
	return NewLedgerService(repo, zap.New(core)), repo, logs
}

func TestCreateAccount_Success(t *testing.T) {
	ctx := context.Background()
	service, repo, logs := newTestService()

	repo.On("CreateAccount", ctx, mock.MatchedBy(func(a *domain.Account) bool {
		return a.ID == 1 && a.Balance == 100 && a.CreationRequest == 11
	})).Return(nil)

	account, err := service.CreateAccount(ctx, CreateAccountInput{RequestID: 11, AccountID: 1, Balance: 100})

	require.NoError(t, err)
	assert.Equal(t, domain.AccountID(1), account.ID)
	assert.Equal(t, 1, logs.FilterMessage("account created").Len())
	repo.AssertExpectations(t)
}

func TestCreateAccount_NegativeBalance(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService()

	_, err := service.CreateAccount(ctx, CreateAccountInput{RequestID: 1, AccountID: 1, Balance: -1})

	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
}

func TestCreateAccount_Duplicate(t *testing.T) {
	ctx := context.Background()
	service, repo, logs := newTestService()

	repo.On("CreateAccount", ctx, mock.Anything).Return(fmt.Errorf("%w: id %d", domain.ErrAlreadyExists, 1))

	_, err := service.CreateAccount(ctx, CreateAccountInput{RequestID: 2, AccountID: 1, Balance: 5})

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	rejected := logs.FilterMessage("ledger operation rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, zapcore.InfoLevel, rejected[0].Level)
	assert.Equal(t, "ALREADY_EXISTS", rejected[0].ContextMap()["category"])
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService()

	repo.On("GetBalance", ctx, domain.AccountID(1)).Return(int64(70), nil)
	repo.On("GetBalance", ctx, domain.AccountID(9)).Return(int64(0), fmt.Errorf("%w: id 9", domain.ErrNotFound))

	balance, err := service.GetBalance(ctx, GetBalanceInput{RequestID: 3, AccountID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(70), balance)

	_, err = service.GetBalance(ctx, GetBalanceInput{RequestID: 4, AccountID: 9})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransfer_Success(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService()

	legs := []domain.Leg{{AccountID: 1, Delta: -30}, {AccountID: 2, Delta: 30}}
	repo.On("RunInTx", ctx).Return(nil)
	repo.Tx.On("ApplyLegs", ctx, domain.RequestID(5), legs).Return(nil)

	err := service.Transfer(ctx, TransferInput{RequestID: 5, Legs: legs})

	assert.NoError(t, err)
	repo.Tx.AssertExpectations(t)
}

func TestTransfer_Unbalanced(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService()

	err := service.Transfer(ctx, TransferInput{RequestID: 6, Legs: []domain.Leg{{AccountID: 1, Delta: -50}, {AccountID: 2, Delta: 40}}})

	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "RunInTx", mock.Anything)
}

func TestTransfer_LegFailure(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService()

	legs := []domain.Leg{{AccountID: 10, Delta: -50}, {AccountID: 105, Delta: 50}}
	repo.On("RunInTx", ctx).Return(nil)
	repo.Tx.On("ApplyLegs", ctx, domain.RequestID(7), legs).
		Return(fmt.Errorf("%w: leg 1: account 105 not found", domain.ErrLegFailure))

	err := service.Transfer(ctx, TransferInput{RequestID: 7, Legs: legs})

	assert.ErrorIs(t, err, domain.ErrLegFailure)
	assert.Contains(t, err.Error(), "account 105 not found")
}

func TestFailuresAlwaysCategorized(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		want      domain.Category
		wantLevel zapcore.Level
	}{
		{"uncategorized", errors.New("boom"), domain.CategoryStoreUnavailable, zapcore.ErrorLevel},
		{"escaped conflict", domain.ErrTransientConflict, domain.CategoryStoreUnavailable, zapcore.ErrorLevel},
		{"store down", fmt.Errorf("%w: dial tcp", domain.ErrStoreUnavailable), domain.CategoryStoreUnavailable, zapcore.ErrorLevel},
		{"retry limit", fmt.Errorf("%w: gave up", domain.ErrRetryLimit), domain.CategoryRetryLimit, zapcore.WarnLevel},
		{"canceled", context.Canceled, domain.CategoryCanceled, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			service, repo, logs := newTestService()
			repo.On("RunInTx", ctx).Return(tt.err)

			err := service.Transfer(ctx, TransferInput{RequestID: 8, Legs: []domain.Leg{{AccountID: 1, Delta: -1}, {AccountID: 2, Delta: 1}}})

			assert.Equal(t, tt.want, domain.CategoryOf(err))
			require.Equal(t, 1, logs.Len())
			assert.Equal(t, tt.wantLevel, logs.All()[0].Level)
		})
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService()

	repo.On("Reset", ctx).Return(nil).Once()
	assert.NoError(t, service.Reset(ctx))

	repo.On("Reset", ctx).Return(errors.New("migration failed")).Once()
	assert.ErrorIs(t, service.Reset(ctx), domain.ErrStoreUnavailable)
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService()

	entries := []domain.Entry{
		{ID: uuid.New(), Index: 0, RequestID: 9, AccountID: 1, Amount: -10},
		{ID: uuid.New(), Index: 1, RequestID: 9, AccountID: 1, Amount: -10},
		{ID: uuid.New(), Index: 2, RequestID: 9, AccountID: 2, Amount: 20},
	}
	repo.On("ListEntries", ctx, domain.RequestID(9)).Return(entries, nil)

	got, err := service.ListTransactions(ctx, 9)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService()

	repo.On("Summary", ctx).Return(&domain.Summary{AccountCount: 2, TotalBalance: decimal.NewFromInt(100)}, nil)

	summary, err := service.GetSummary(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.AccountCount)
	assert.True(t, summary.TotalBalance.Equal(decimal.NewFromInt(100)))
}
