package services

import (
	"context"

	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
	"github.com/wealthfin/finance_dashboard_app/internal/dto"
)

// AccountReaderSvc defines read operations for account data.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account owned by the user.
	GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error)

	// GetDefaultAccount retrieves the user's default account, if any.
	GetDefaultAccount(ctx context.Context, userID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts owned by the user.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data.
type AccountWriterSvc interface {
	// CreateAccount persists a new account, demoting any existing default
	// when the request marks the new account default.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an account's details, preserving the
	// single-default invariant when the default flag changes.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeleteAccount removes an account. Transactions referencing it are left
	// in place.
	DeleteAccount(ctx context.Context, accountID string, userID string) error

	// SetDefaultAccount makes the account the user's sole default. Idempotent.
	SetDefaultAccount(ctx context.Context, accountID string, userID string) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
