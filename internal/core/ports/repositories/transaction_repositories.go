package repositories

import (
	"context"
	"time"

	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
)

// TransactionFilter narrows a transaction scan. Nil fields are ignored.
type TransactionFilter struct {
	AccountID *string
	StartDate *time.Time // Inclusive
	EndDate   *time.Time // Inclusive
	Type      *domain.TransactionType
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByIDAndUser retrieves a transaction by id, scoped to its
	// owner. Returns apperrors.ErrNotFound when absent or owned by someone else.
	FindTransactionByIDAndUser(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)

	// ListTransactionsByUser retrieves a user's transactions matching the
	// filter, most recent first.
	ListTransactionsByUser(ctx context.Context, userID string, filter TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction owned by the given user.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
}

// TransactionRepository combines all transaction repository operations.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
