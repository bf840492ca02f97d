package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL / CockroachDB driver
)

// PoolConfig sizes the shared connection pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
}

// DB wraps the database connection pool. It is the only shared mutable
// resource of the ledger; each call checks out a connection and returns it.
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection pool
// connectionString may be a URL ("postgresql://accountant@localhost:26257/bank?sslmode=disable")
// or a key/value DSN ("host=localhost port=5432 user=postgres dbname=bank sslmode=disable").
func NewDB(ctx context.Context, connectionString string, pool PoolConfig) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if pool.MaxOpenConns > 0 {
		db.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		db.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	if pool.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pool.ConnectTimeout)
		defer cancel()
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close closes the database connection pool
func (db *DB) Close() error {
	return db.DB.Close()
}
