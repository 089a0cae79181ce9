package domain

import (
	"github.com/shopspring/decimal"
)

// CategoryBreakdown is one category's share of a month's expenses.
type CategoryBreakdown struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"` // Share of total spend, 0 when nothing was spent
	Color      string          `json:"color"`      // Display color from the category color table
}

// ExpenseSummary is the derived monthly view over a user's transactions.
// It is a pure function of a transaction set plus an optional budget; it
// owns no state and is never persisted.
type ExpenseSummary struct {
	Month                       YearMonth                  `json:"month"`
	TotalSpent                  decimal.Decimal            `json:"totalSpent"`
	TotalIncome                 decimal.Decimal            `json:"totalIncome"`
	NetFlow                     decimal.Decimal            `json:"netFlow"` // TotalIncome - TotalSpent
	BudgetAmount                decimal.Decimal            `json:"budgetAmount"`
	RemainingBudget             decimal.Decimal            `json:"remainingBudget"` // BudgetAmount - TotalSpent
	BudgetUtilizationPercentage float64                    `json:"budgetUtilizationPercentage"`
	CategoryBreakdown           []CategoryBreakdown        `json:"categoryBreakdown"`
	MonthlyTrend                map[string]decimal.Decimal `json:"monthlyTrend,omitempty"`
}

// ApplyBudget fills in the budget-derived fields of the summary. The
// aggregation itself is budget-agnostic; callers that fetched a budget
// overlay it here so the arithmetic identities stay in one place.
func (s *ExpenseSummary) ApplyBudget(amount decimal.Decimal) {
	s.BudgetAmount = amount
	s.RemainingBudget = amount.Sub(s.TotalSpent)
	if amount.IsPositive() {
		util, _ := s.TotalSpent.Div(amount).Mul(decimal.NewFromInt(100)).Float64()
		s.BudgetUtilizationPercentage = util
	} else {
		s.BudgetUtilizationPercentage = 0
	}
}

// categoryColors maps well-known expense categories to their display colors.
// This table is UI metadata but contractual: the same category name must
// always yield the same color.
var categoryColors = map[string]string{
	"Food & Dining":     "#FF6B6B",
	"Transportation":    "#4ECDC4",
	"Shopping":          "#45B7D1",
	"Entertainment":     "#96CEB4",
	"Bills & Utilities": "#FFEAA7",
	"Healthcare":        "#DDA0DD",
	"Education":         "#98D8C8",
	"Travel":            "#F7DC6F",
	"Other Expense":     "#BB8FCE",
}

// defaultCategoryColor is used for any category not in the table.
const defaultCategoryColor = "#FF6B6B"

// CategoryColor returns the display color for a category.
func CategoryColor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return defaultCategoryColor
}
