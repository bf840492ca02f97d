package seeder

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/simaogato/ledger-backend/internal/domain"
)

// SeedRequestID is recorded as the creation request of seeded accounts
const SeedRequestID domain.RequestID = 0

// SeedAccount defines an account to be created at startup
type SeedAccount struct {
	ID      domain.AccountID
	Balance int64
}

// AccountCreator is the store capability the seeder needs
type AccountCreator interface {
	CreateAccount(ctx context.Context, account *domain.Account) error
}

// AccountSeeder creates configured accounts that do not exist yet
type AccountSeeder struct {
	repo   AccountCreator
	logger *zap.Logger
}

// NewAccountSeeder creates a new AccountSeeder instance
func NewAccountSeeder(repo AccountCreator, logger *zap.Logger) *AccountSeeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountSeeder{
		repo:   repo,
		logger: logger,
	}
}

// Seed ensures all given accounts exist. Existing accounts keep their
// balance.
func (s *AccountSeeder) Seed(ctx context.Context, accounts []SeedAccount) error {
	created := 0
	for _, seed := range accounts {
		account := &domain.Account{
			ID:              seed.ID,
			Balance:         seed.Balance,
			CreationRequest: SeedRequestID,
		}

		// Validate before creating
		if err := account.Validate(); err != nil {
			return fmt.Errorf("seed account %d: %w", seed.ID, err)
		}

		err := s.repo.CreateAccount(ctx, account)
		if errors.Is(err, domain.ErrAlreadyExists) {
			// If account exists, no action needed
			continue
		}
		if err != nil {
			return fmt.Errorf("seed account %d: %w", seed.ID, err)
		}
		created++
	}

	s.logger.Info("accounts seeded", zap.Int("requested", len(accounts)), zap.Int("created", created))
	return nil
}

// ParseAccounts parses a comma separated "id:balance" list, e.g.
// "1:100,2:0". Blank input yields no accounts.
func ParseAccounts(list string) ([]SeedAccount, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil, nil
	}

	var accounts []SeedAccount
	seen := make(map[domain.AccountID]bool)
	for _, item := range strings.Split(list, ",") {
		idStr, balanceStr, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok {
			return nil, fmt.Errorf("seed account %q: want id:balance", item)
		}

		id, err := strconv.ParseUint(strings.TrimSpace(idStr), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("seed account %q: invalid id: %w", item, err)
		}
		balance, err := strconv.ParseInt(strings.TrimSpace(balanceStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("seed account %q: invalid balance: %w", item, err)
		}

		accountID := domain.AccountID(id)
		if seen[accountID] {
			return nil, fmt.Errorf("seed account %d listed twice", accountID)
		}
		seen[accountID] = true

		accounts = append(accounts, SeedAccount{ID: accountID, Balance: balance})
	}

	return accounts, nil
}
