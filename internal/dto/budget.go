package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
)

// SetBudgetRequest creates or replaces the budget for a month.
// Month uses the custom "yearmonth" validation registered at startup.
type SetBudgetRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Month  string          `json:"month" binding:"required,yearmonth"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID  string          `json:"budgetID"`
	Amount    decimal.Decimal `json:"amount"`
	Month     string          `json:"month"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ToBudgetResponse converts a domain.Budget to a response DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:  b.BudgetID,
		Amount:    b.Amount,
		Month:     b.Month.String(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
