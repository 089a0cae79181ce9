package services

import (
	"context"

	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
	"github.com/wealthfin/finance_dashboard_app/internal/dto"
)

// BudgetReaderSvc defines read operations for budget data.
type BudgetReaderSvc interface {
	// GetBudgetByMonth retrieves the user's budget for a month.
	// Returns apperrors.ErrNotFound when no budget is set for it.
	GetBudgetByMonth(ctx context.Context, userID string, month domain.YearMonth) (*domain.Budget, error)

	// GetCurrentBudget retrieves the user's most recent budget by month.
	GetCurrentBudget(ctx context.Context, userID string) (*domain.Budget, error)
}

// BudgetWriterSvc defines write operations for budget data.
type BudgetWriterSvc interface {
	// SetBudget creates or replaces the budget for the given month.
	SetBudget(ctx context.Context, req dto.SetBudgetRequest, userID string) (*domain.Budget, error)
}

// BudgetSvcFacade combines all budget-related service interfaces.
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
