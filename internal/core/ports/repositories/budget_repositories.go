package repositories

import (
	"context"

	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
)

// BudgetRepository defines persistence operations for budget data.
type BudgetRepository interface {
	// FindBudgetByUserAndMonth retrieves the budget for a given month.
	// Returns apperrors.ErrNotFound when the user has no budget for it.
	FindBudgetByUserAndMonth(ctx context.Context, userID string, month domain.YearMonth) (*domain.Budget, error)

	// FindLatestBudgetByUser retrieves the user's most recent budget by month.
	// Returns apperrors.ErrNotFound when the user has no budgets at all.
	FindLatestBudgetByUser(ctx context.Context, userID string) (*domain.Budget, error)

	// SaveBudget persists a new budget.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpdateBudget updates an existing budget's amount.
	UpdateBudget(ctx context.Context, budget domain.Budget) error
}
