package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/ledger-backend/internal/domain"
)

// restartSavepoint is the save point name CockroachDB recognizes for
// client-side transaction retries. PostgreSQL treats it as a plain save point.
const restartSavepoint = "cockroach_restart"

const (
	insertAccountQuery = `
		INSERT INTO accounts (id, balance, creation_request)
		VALUES ($1, $2, $3)
	`

	selectBalanceQuery = `SELECT balance FROM accounts WHERE id = $1`

	selectEntriesQuery = `
		SELECT id, transaction_index, req_id, account_id, amount, created_at
		FROM transactions
		WHERE req_id = $1
		ORDER BY created_at, transaction_index
	`

	summaryQuery = `SELECT count(*), COALESCE(SUM(balance), 0) FROM accounts`

	updateBalanceQuery = `UPDATE accounts SET balance = balance + $1 WHERE id = $2`

	insertEntryQuery = `
		INSERT INTO transactions (id, transaction_index, req_id, account_id, amount)
		VALUES ($1, $2, $3, $4, $5)
	`
)

// session is one serializable transaction. It implements txn.Session for the
// executor and domain.LedgerTx for units of work.
type session struct {
	tx *sql.Tx
}

// beginSerializable is the executor's BeginFunc; the transaction holds one
// pooled connection until Commit or Rollback.
func (r *ledgerRepository) beginSerializable(ctx context.Context) (*session, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, classify("begin transaction", err)
	}
	return &session{tx: tx}, nil
}

func (s *session) Savepoint(ctx context.Context) error {
	_, err := s.tx.ExecContext(ctx, "SAVEPOINT "+restartSavepoint)
	return classify("savepoint", err)
}

func (s *session) ReleaseSavepoint(ctx context.Context) error {
	_, err := s.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+restartSavepoint)
	return classify("release savepoint", err)
}

func (s *session) RollbackToSavepoint(ctx context.Context) error {
	_, err := s.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+restartSavepoint)
	return classify("rollback to savepoint", err)
}

func (s *session) Commit() error {
	return classify("commit", s.tx.Commit())
}

func (s *session) Rollback() error {
	err := s.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return classify("rollback", err)
}

func (s *session) insertAccount(ctx context.Context, account *domain.Account) error {
	_, err := s.tx.ExecContext(ctx, insertAccountQuery,
		account.ID,
		account.Balance,
		account.CreationRequest,
	)
	return classify("create account", err)
}

func (s *session) balance(ctx context.Context, id domain.AccountID) (int64, error) {
	var balance int64
	err := s.tx.QueryRowContext(ctx, selectBalanceQuery, id).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return balance, classify("get balance", err)
}

func (s *session) entries(ctx context.Context, requestID domain.RequestID) ([]domain.Entry, error) {
	rows, err := s.tx.QueryContext(ctx, selectEntriesQuery, requestID)
	if err != nil {
		return nil, classify("list entries", err)
	}
	defer rows.Close()

	entries := make([]domain.Entry, 0)
	for rows.Next() {
		var entry domain.Entry
		if err := rows.Scan(
			&entry.ID,
			&entry.Index,
			&entry.RequestID,
			&entry.AccountID,
			&entry.Amount,
			&entry.CreatedAt,
		); err != nil {
			return nil, classify("scan entry", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list entries", err)
	}

	return entries, nil
}

func (s *session) summary(ctx context.Context) (*domain.Summary, error) {
	var summary domain.Summary
	var totalStr string

	if err := s.tx.QueryRowContext(ctx, summaryQuery).Scan(&summary.AccountCount, &totalStr); err != nil {
		return nil, classify("summarize ledger", err)
	}

	// SUM over INT8 is NUMERIC/DECIMAL and may exceed int64
	total, err := decimal.NewFromString(totalStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse total balance: %w", err)
	}
	summary.TotalBalance = total

	return &summary, nil
}

// ApplyLegs updates each balance and appends its log row, in leg order.
// The CHECK (balance >= 0) constraint rejects overdrafts at the statement
// that causes them, so intermediate states are never negative either.
func (s *session) ApplyLegs(ctx context.Context, requestID domain.RequestID, legs []domain.Leg) error {
	for i, leg := range legs {
		res, err := s.tx.ExecContext(ctx, updateBalanceQuery, leg.Delta, leg.AccountID)
		if err != nil {
			return classify(fmt.Sprintf("apply leg %d to account %d", i, leg.AccountID), err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return classify(fmt.Sprintf("apply leg %d to account %d", i, leg.AccountID), err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: leg %d: account %d not found", domain.ErrLegFailure, i, leg.AccountID)
		}

		_, err = s.tx.ExecContext(ctx, insertEntryQuery,
			uuid.New(),
			i,
			requestID,
			leg.AccountID,
			leg.Delta,
		)
		if err != nil {
			return classify(fmt.Sprintf("log leg %d", i), err)
		}
	}

	return nil
}
