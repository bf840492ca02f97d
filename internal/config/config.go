// Package config loads the server configuration from LEDGER_* environment
// variables, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/simaogato/ledger-backend/internal/txn"
)

// Prefix is prepended to every variable name.
const Prefix = "LEDGER"

// Store backends.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Dialects accepted by DBConfig.Dialect.
const (
	DialectPostgres    = "postgres"
	DialectCockroachDB = "cockroachdb"
)

type DBConfig struct {
	URL             string        `envconfig:"URL" default:"postgresql://accountant@localhost:26257/bank?sslmode=disable"`
	Dialect         string        `envconfig:"DIALECT" default:"cockroachdb"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
	ConnectTimeout  time.Duration `envconfig:"CONNECT_TIMEOUT" default:"10s"`
	Migrate         bool          `envconfig:"MIGRATE" default:"true"`
}

type RetryConfig struct {
	// MaxAttempts of 0 retries conflicts forever.
	MaxAttempts    int           `envconfig:"MAX_ATTEMPTS" default:"50"`
	InitialBackoff time.Duration `envconfig:"INITIAL_BACKOFF" default:"2ms"`
	MaxBackoff     time.Duration `envconfig:"MAX_BACKOFF" default:"250ms"`
	Multiplier     float64       `envconfig:"MULTIPLIER" default:"2.0"`
}

type LogConfig struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"json"`
}

// Config is the full server configuration
type Config struct {
	GRPCAddr        string        `envconfig:"GRPC_ADDR" default:":3000"`
	Store           string        `envconfig:"STORE" default:"postgres"`
	DB              DBConfig      `envconfig:"DB"`
	Retry           RetryConfig   `envconfig:"RETRY"`
	Log             LogConfig     `envconfig:"LOG"`
	SeedAccounts    string        `envconfig:"SEED_ACCOUNTS"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// Load reads the given .env files (default ".env"), then the environment.
// Missing .env files are not an error; variables already set win.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the server cannot start with
func (c *Config) Validate() error {
	var errs []error

	switch c.Store {
	case StorePostgres, StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("%s_STORE: unknown store %q", Prefix, c.Store))
	}

	if c.Store == StorePostgres {
		switch c.DB.Dialect {
		case DialectPostgres, DialectCockroachDB:
		default:
			errs = append(errs, fmt.Errorf("%s_DB_DIALECT: unknown dialect %q", Prefix, c.DB.Dialect))
		}
		if c.DB.URL == "" {
			errs = append(errs, fmt.Errorf("%s_DB_URL is required", Prefix))
		}
	}

	if c.Retry.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("%s_RETRY_MAX_ATTEMPTS must be >= 0, got %d", Prefix, c.Retry.MaxAttempts))
	}
	if c.Retry.InitialBackoff > 0 && c.Retry.Multiplier < 1 {
		errs = append(errs, fmt.Errorf("%s_RETRY_MULTIPLIER must be >= 1, got %v", Prefix, c.Retry.Multiplier))
	}
	if c.Retry.InitialBackoff > 0 && c.Retry.MaxBackoff < c.Retry.InitialBackoff {
		errs = append(errs, fmt.Errorf("%s_RETRY_MAX_BACKOFF must be >= initial backoff", Prefix))
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%s_LOG_LEVEL: %w", Prefix, err))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("%s_LOG_FORMAT: unknown format %q", Prefix, c.Log.Format))
	}

	if c.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("%s_SHUTDOWN_TIMEOUT must not be negative", Prefix))
	}

	return errors.Join(errs...)
}

// RetryPolicy returns the conflict retry policy for the configured store.
// PostgreSQL keeps its serializable snapshot across a save point rollback, so
// conflicts there restart the whole transaction.
func (c *Config) RetryPolicy() txn.Policy {
	return txn.Policy{
		MaxAttempts:        c.Retry.MaxAttempts,
		InitialBackoff:     c.Retry.InitialBackoff,
		MaxBackoff:         c.Retry.MaxBackoff,
		Multiplier:         c.Retry.Multiplier,
		RestartTransaction: c.Store == StorePostgres && c.DB.Dialect == DialectPostgres,
	}
}
