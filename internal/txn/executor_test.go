package txn

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/simaogato/ledger-backend/internal/domain"
)

// fakeSession records the protocol calls made by the executor and fails
// ReleaseSavepoint or Commit with the scripted errors, in order.
type fakeSession struct {
	calls      []string
	releaseErr []error
	commitErr  []error
}

func (f *fakeSession) Savepoint(ctx context.Context) error {
	f.calls = append(f.calls, "savepoint")
	return nil
}

func (f *fakeSession) ReleaseSavepoint(ctx context.Context) error {
	f.calls = append(f.calls, "release")
	return pop(&f.releaseErr)
}

func (f *fakeSession) RollbackToSavepoint(ctx context.Context) error {
	f.calls = append(f.calls, "rollback_to")
	return nil
}

func (f *fakeSession) Commit() error {
	f.calls = append(f.calls, "commit")
	return pop(&f.commitErr)
}

func (f *fakeSession) Rollback() error {
	f.calls = append(f.calls, "rollback")
	return nil
}

func pop(errs *[]error) error {
	if len(*errs) == 0 {
		return nil
	}
	err := (*errs)[0]
	*errs = (*errs)[1:]
	return err
}

func conflict() error {
	return fmt.Errorf("%w: restart transaction", domain.ErrTransientConflict)
}

func noBackoff(max int) Policy {
	return Policy{MaxAttempts: max}
}

func singleSession(s *fakeSession) (BeginFunc[*fakeSession], *int) {
	begins := 0
	return func(ctx context.Context) (*fakeSession, error) {
		begins++
		return s, nil
	}, &begins
}

func TestExecutor_Run_SucceedsFirstTry(t *testing.T) {
	s := &fakeSession{}
	begin, begins := singleSession(s)
	exec := NewExecutor(begin, noBackoff(0), zap.NewNop())

	runs := 0
	err := exec.Run(context.Background(), func(ctx context.Context, s *fakeSession) error {
		runs++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, *begins)
	assert.Equal(t, []string{"savepoint", "release", "commit"}, s.calls)
}

func TestExecutor_Run_RetriesWorkConflictFromSavepoint(t *testing.T) {
	s := &fakeSession{}
	begin, begins := singleSession(s)
	exec := NewExecutor(begin, noBackoff(0), zap.NewNop())

	runs := 0
	err := exec.Run(context.Background(), func(ctx context.Context, s *fakeSession) error {
		runs++
		if runs < 3 {
			return conflict()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, runs)
	assert.Equal(t, 1, *begins, "savepoint retries must reuse the transaction")
	assert.Equal(t, []string{
		"savepoint",
		"rollback_to",
		"rollback_to",
		"release",
		"commit",
	}, s.calls)
}

func TestExecutor_Run_RetriesReleaseConflict(t *testing.T) {
	s := &fakeSession{releaseErr: []error{conflict()}}
	begin, _ := singleSession(s)
	exec := NewExecutor(begin, noBackoff(0), zap.NewNop())

	runs := 0
	err := exec.Run(context.Background(), func(ctx context.Context, s *fakeSession) error {
		runs++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, runs)
	assert.Equal(t, []string{"savepoint", "release", "rollback_to", "release", "commit"}, s.calls)
}

func TestExecutor_Run_NonConflictErrorRollsBack(t *testing.T) {
	s := &fakeSession{}
	begin, _ := singleSession(s)
	exec := NewExecutor(begin, noBackoff(0), zap.NewNop())

	legErr := fmt.Errorf("%w: account 9 not found", domain.ErrLegFailure)
	runs := 0
	err := exec.Run(context.Background(), func(ctx context.Context, s *fakeSession) error {
		runs++
		return legErr
	})

	assert.ErrorIs(t, err, domain.ErrLegFailure)
	assert.Equal(t, 1, runs)
	assert.Equal(t, []string{"savepoint", "rollback"}, s.calls)
}

func TestExecutor_Run_GivesUpAtMaxAttempts(t *testing.T) {
	s := &fakeSession{}
	begin, _ := singleSession(s)
	core, logs := observer.New(zap.WarnLevel)
	exec := NewExecutor(begin, noBackoff(3), zap.New(core))

	runs := 0
	err := exec.Run(context.Background(), func(ctx context.Context, s *fakeSession) error {
		runs++
		return conflict()
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRetryLimit)
	assert.Equal(t, domain.CategoryRetryLimit, domain.CategoryOf(err))
	assert.Equal(t, 3, runs)
	assert.Equal(t, "rollback", s.calls[len(s.calls)-1])
	assert.Equal(t, 1, logs.FilterMessage("giving up after serialization conflicts").Len())
}

func TestExecutor_Run_RestartTransactionPolicy(t *testing.T) {
	var sessions []*fakeSession
	begin := func(ctx context.Context) (*fakeSession, error) {
		s := &fakeSession{}
		sessions = append(sessions, s)
		return s, nil
	}
	policy := noBackoff(0)
	policy.RestartTransaction = true
	exec := NewExecutor(begin, policy, zap.NewNop())

	runs := 0
	err := exec.Run(context.Background(), func(ctx context.Context, s *fakeSession) error {
		runs++
		if runs == 1 {
			return conflict()
		}
		return nil
	})

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, []string{"savepoint", "rollback"}, sessions[0].calls)
	assert.Equal(t, []string{"savepoint", "release", "commit"}, sessions[1].calls)
}

func TestExecutor_Run_CommitConflictRestartsTransaction(t *testing.T) {
	first := &fakeSession{commitErr: []error{conflict()}}
	second := &fakeSession{}
	queue := []*fakeSession{first, second}
	begin := func(ctx context.Context) (*fakeSession, error) {
		s := queue[0]
		queue = queue[1:]
		return s, nil
	}
	exec := NewExecutor(begin, noBackoff(0), zap.NewNop())

	runs := 0
	err := exec.Run(context.Background(), func(ctx context.Context, s *fakeSession) error {
		runs++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, runs)
	assert.Equal(t, []string{"savepoint", "release", "commit"}, first.calls)
	assert.Equal(t, []string{"savepoint", "release", "commit"}, second.calls)
}

func TestExecutor_Run_BeginErrorPropagates(t *testing.T) {
	beginErr := fmt.Errorf("%w: connection refused", domain.ErrStoreUnavailable)
	exec := NewExecutor(func(ctx context.Context) (*fakeSession, error) {
		return nil, beginErr
	}, noBackoff(0), zap.NewNop())

	err := exec.Run(context.Background(), func(ctx context.Context, s *fakeSession) error {
		t.Fatal("work must not run without a transaction")
		return nil
	})

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestExecutor_Run_PanicRollsBack(t *testing.T) {
	s := &fakeSession{}
	begin, _ := singleSession(s)
	exec := NewExecutor(begin, noBackoff(0), zap.NewNop())

	assert.Panics(t, func() {
		_ = exec.Run(context.Background(), func(ctx context.Context, s *fakeSession) error {
			panic("boom")
		})
	})
	assert.Equal(t, []string{"savepoint", "rollback"}, s.calls)
}

func TestExecutor_Run_ContextCanceledDuringBackoff(t *testing.T) {
	s := &fakeSession{}
	begin, _ := singleSession(s)
	exec := NewExecutor(begin, Policy{InitialBackoff: time.Hour, MaxBackoff: time.Hour}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	err := exec.Run(ctx, func(ctx context.Context, s *fakeSession) error {
		cancel()
		return conflict()
	})

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, []string{"savepoint", "rollback"}, s.calls)
}

func TestPolicy_NewBackOff(t *testing.T) {
	zero := Policy{}.newBackOff()
	assert.Equal(t, time.Duration(0), zero.NextBackOff())

	b := Policy{InitialBackoff: 10 * time.Millisecond, MaxBackoff: 40 * time.Millisecond, Multiplier: 2}.newBackOff()
	for i := 0; i < 10; i++ {
		d := b.NextBackOff()
		assert.Greater(t, d, time.Duration(0))
		// randomization factor 0.5 may push a capped interval up to 1.5x
		assert.LessOrEqual(t, d, 60*time.Millisecond)
	}
}
