package repositories

import (
	"context"

	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByIDAndUser retrieves an account by id, scoped to its owner.
	// Returns apperrors.ErrNotFound when absent or owned by someone else.
	FindAccountByIDAndUser(ctx context.Context, accountID string, userID string) (*domain.Account, error)

	// FindDefaultAccount retrieves the account currently flagged default for
	// a user. Returns apperrors.ErrNotFound when the user has no default.
	FindDefaultAccount(ctx context.Context, userID string) (*domain.Account, error)

	// ListAccountsByUser retrieves all accounts owned by a user.
	ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details, including its
	// default flag.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account owned by the given user.
	// Returns apperrors.ErrNotFound when absent or owned by someone else.
	DeleteAccount(ctx context.Context, accountID string, userID string) error
}

// AccountRepository combines all account repository operations.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
