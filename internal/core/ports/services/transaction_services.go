package services

import (
	"context"

	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
	"github.com/wealthfin/finance_dashboard_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction owned by the user.
	GetTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)

	// ListTransactions retrieves the user's transactions matching the params.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transaction data.
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// UpdateTransaction updates an existing transaction.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction owned by the user.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
}

// ExpenseSummarizer reduces a month of transactions to an ExpenseSummary.
// The summary is budget-agnostic; callers overlay a budget via ApplyBudget.
type ExpenseSummarizer interface {
	GetExpenseSummary(ctx context.Context, userID string, month domain.YearMonth) (*domain.ExpenseSummary, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	ExpenseSummarizer
}
