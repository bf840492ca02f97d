package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMigrator(t *testing.T) {
	tests := []struct {
		name    string
		dsn     string
		dialect Dialect
		wantURL string
		wantErr bool
	}{
		{
			name:    "cockroachdb rewrites scheme",
			dsn:     "postgresql://accountant@localhost:26257/bank?sslmode=disable",
			dialect: DialectCockroachDB,
			wantURL: "cockroachdb://accountant@localhost:26257/bank?sslmode=disable",
		},
		{
			name:    "postgres keeps credentials",
			dsn:     "postgresql://ledger:secret@db:5432/bank?sslmode=disable",
			dialect: DialectPostgres,
			wantURL: "postgres://ledger:secret@db:5432/bank?sslmode=disable",
		},
		{
			name:    "key value DSN rejected",
			dsn:     "host=localhost user=accountant dbname=bank",
			dialect: DialectPostgres,
			wantErr: true,
		},
		{
			name:    "unknown dialect",
			dsn:     "postgresql://localhost/bank",
			dialect: Dialect("mysql"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMigrator(tt.dsn, tt.dialect, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, m.databaseURL)
		})
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	up, err := migrationsFS.ReadFile("migrations/000001_create_ledger.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(up), "CHECK (balance >= 0)")

	_, err = migrationsFS.ReadFile("migrations/000001_create_ledger.down.sql")
	assert.NoError(t, err)
}
