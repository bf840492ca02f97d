package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/cockroachdb" // cockroachdb:// driver
	_ "github.com/golang-migrate/migrate/v4/database/postgres"    // postgres:// driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Dialect selects the SQL engine behind the DSN.
type Dialect string

const (
	DialectPostgres    Dialect = "postgres"
	DialectCockroachDB Dialect = "cockroachdb"
)

// Schema manages the ledger tables.
type Schema interface {
	// Up applies pending migrations.
	Up(ctx context.Context) error
	// Reset drops every ledger table and recreates the schema.
	Reset(ctx context.Context) error
}

// Migrator is the golang-migrate backed Schema. Every call opens and closes
// its own connection, separate from the request pool.
type Migrator struct {
	databaseURL string
	logger      *zap.Logger
}

// NewMigrator creates a Migrator for a URL-form DSN.
func NewMigrator(dsn string, dialect Dialect, logger *zap.Logger) (*Migrator, error) {
	u, err := url.Parse(dsn)
	if err != nil || u.Scheme == "" {
		return nil, fmt.Errorf("migrations need a URL-form DSN (postgresql://...): %q", dsn)
	}

	switch dialect {
	case DialectCockroachDB:
		u.Scheme = "cockroachdb"
	case DialectPostgres:
		u.Scheme = "postgres"
	default:
		return nil, fmt.Errorf("unknown dialect %q", dialect)
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	return &Migrator{databaseURL: u.String(), logger: logger}, nil
}

// Up applies pending migrations
func (m *Migrator) Up(ctx context.Context) error {
	return m.with(ctx, func(mg *migrate.Migrate) error {
		if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		return nil
	})
}

// Reset drops and recreates all ledger tables
func (m *Migrator) Reset(ctx context.Context) error {
	return m.with(ctx, func(mg *migrate.Migrate) error {
		if err := mg.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to drop ledger schema: %w", err)
		}
		if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to recreate ledger schema: %w", err)
		}
		return nil
	})
}

func (m *Migrator) with(ctx context.Context, fn func(mg *migrate.Migrate) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	mg, err := migrate.NewWithSourceInstance("iofs", src, m.databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open migrator: %w", err)
	}
	mg.Log = migrateLogger{logger: m.logger.Sugar()}
	defer func() {
		if srcErr, dbErr := mg.Close(); srcErr != nil || dbErr != nil {
			m.logger.Warn("failed to close migrator", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	return fn(mg)
}

// migrateLogger adapts zap to migrate.Logger.
type migrateLogger struct {
	logger *zap.SugaredLogger
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	l.logger.Debugf(format, v...)
}

func (l migrateLogger) Verbose() bool {
	return false
}
