// Package memory is a process-local ledger store. Transactions are serialized
// behind a single lock, so it needs no conflict detection of its own; tests
// can inject conflicts to exercise the retry path.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/simaogato/ledger-backend/internal/domain"
	"github.com/simaogato/ledger-backend/internal/txn"
)

// Store implements domain.LedgerRepository in memory.
type Store struct {
	// txLock is a one-slot semaphore held from begin until commit or rollback.
	txLock chan struct{}

	mu       sync.RWMutex
	accounts map[domain.AccountID]domain.Account
	entries  []domain.Entry

	conflicts atomic.Int64
	now       func() time.Time

	exec *txn.Executor[*session]
}

// NewStore creates an empty store whose transfers run through a retrying
// executor configured by policy.
func NewStore(policy txn.Policy, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		txLock:   make(chan struct{}, 1),
		accounts: make(map[domain.AccountID]domain.Account),
		now:      time.Now,
	}
	s.exec = txn.NewExecutor(s.begin, policy, logger.Named("txn"))
	return s
}

// InjectConflicts makes the next n savepoint releases report a serialization
// conflict.
func (s *Store) InjectConflicts(n int) {
	s.conflicts.Store(int64(n))
}

func (s *Store) lockTx(ctx context.Context) error {
	select {
	case s.txLock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) unlockTx() {
	<-s.txLock
}

// RunInTx runs work in a serialized transaction, retrying on conflicts
func (s *Store) RunInTx(ctx context.Context, work func(ctx context.Context, tx domain.LedgerTx) error) error {
	return s.exec.Run(ctx, func(ctx context.Context, sess *session) error {
		return work(ctx, sess)
	})
}

// CreateAccount inserts a new account
func (s *Store) CreateAccount(ctx context.Context, account *domain.Account) error {
	if err := s.lockTx(ctx); err != nil {
		return err
	}
	defer s.unlockTx()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.ID]; ok {
		return fmt.Errorf("%w: id %d", domain.ErrAlreadyExists, account.ID)
	}

	stored := *account
	stored.CreatedAt = s.now()
	s.accounts[account.ID] = stored

	return nil
}

// GetBalance returns the committed balance of an account
func (s *Store) GetBalance(ctx context.Context, id domain.AccountID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return 0, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return account.Balance, nil
}

// ListEntries returns the log rows recorded under a request id
func (s *Store) ListEntries(ctx context.Context, requestID domain.RequestID) ([]domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// s.entries is in commit order, legs in index order within a commit
	entries := make([]domain.Entry, 0)
	for _, e := range s.entries {
		if e.RequestID == requestID {
			entries = append(entries, e)
		}
	}

	return entries, nil
}

// Summary returns the account count and the exact sum of all balances
func (s *Store) Summary(ctx context.Context) (*domain.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, a := range s.accounts {
		total = total.Add(decimal.NewFromInt(a.Balance))
	}

	return &domain.Summary{
		AccountCount: int64(len(s.accounts)),
		TotalBalance: total,
	}, nil
}

// Reset drops every account and log row and clears injected conflicts
func (s *Store) Reset(ctx context.Context) error {
	if err := s.lockTx(ctx); err != nil {
		return err
	}
	defer s.unlockTx()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = make(map[domain.AccountID]domain.Account)
	s.entries = nil
	s.conflicts.Store(0)

	return nil
}

// session is one serialized transaction. Writes go to an overlay that is
// merged into the store on commit.
type session struct {
	store    *Store
	balances map[domain.AccountID]int64
	entries  []domain.Entry

	savedBalances map[domain.AccountID]int64
	savedEntries  int

	closed bool
}

func (s *Store) begin(ctx context.Context) (*session, error) {
	if err := s.lockTx(ctx); err != nil {
		return nil, err
	}
	return &session{store: s, balances: make(map[domain.AccountID]int64)}, nil
}

func (sess *session) Savepoint(ctx context.Context) error {
	sess.savedBalances = maps.Clone(sess.balances)
	sess.savedEntries = len(sess.entries)
	return ctx.Err()
}

func (sess *session) ReleaseSavepoint(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for {
		n := sess.store.conflicts.Load()
		if n <= 0 {
			return nil
		}
		if sess.store.conflicts.CompareAndSwap(n, n-1) {
			return fmt.Errorf("%w: injected conflict", domain.ErrTransientConflict)
		}
	}
}

func (sess *session) RollbackToSavepoint(ctx context.Context) error {
	sess.balances = maps.Clone(sess.savedBalances)
	sess.entries = sess.entries[:sess.savedEntries]
	return ctx.Err()
}

func (sess *session) Commit() error {
	if sess.closed {
		return fmt.Errorf("%w: transaction already closed", domain.ErrStoreUnavailable)
	}
	defer sess.close()

	st := sess.store
	st.mu.Lock()
	defer st.mu.Unlock()

	for id, balance := range sess.balances {
		account := st.accounts[id]
		account.Balance = balance
		st.accounts[id] = account
	}

	now := st.now()
	for _, e := range sess.entries {
		e.CreatedAt = now
		st.entries = append(st.entries, e)
	}

	return nil
}

func (sess *session) Rollback() error {
	if !sess.closed {
		sess.close()
	}
	return nil
}

func (sess *session) close() {
	sess.closed = true
	sess.store.unlockTx()
}

// ApplyLegs updates each balance in the overlay and appends its log row, in
// leg order. A failing leg leaves earlier legs in the overlay; the executor
// discards the whole transaction.
func (sess *session) ApplyLegs(ctx context.Context, requestID domain.RequestID, legs []domain.Leg) error {
	for i, leg := range legs {
		if err := ctx.Err(); err != nil {
			return err
		}

		current, err := sess.balance(leg.AccountID)
		if err != nil {
			return fmt.Errorf("%w: leg %d", err, i)
		}

		next, err := domain.AddDelta(current, leg.Delta)
		if err != nil {
			return fmt.Errorf("leg %d on account %d: %w", i, leg.AccountID, err)
		}
		sess.balances[leg.AccountID] = next

		sess.entries = append(sess.entries, domain.Entry{
			ID:        uuid.New(),
			Index:     i,
			RequestID: requestID,
			AccountID: leg.AccountID,
			Amount:    leg.Delta,
		})
	}

	return nil
}

func (sess *session) balance(id domain.AccountID) (int64, error) {
	if b, ok := sess.balances[id]; ok {
		return b, nil
	}

	sess.store.mu.RLock()
	defer sess.store.mu.RUnlock()

	account, ok := sess.store.accounts[id]
	if !ok {
		return 0, fmt.Errorf("%w: account %d not found", domain.ErrLegFailure, id)
	}
	return account.Balance, nil
}
