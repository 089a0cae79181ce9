package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a monthly spending limit for a user.
// At most one budget exists per (user, month); the budget service enforces
// this through upsert semantics, with a storage unique constraint as backstop.
type Budget struct {
	BudgetID  string          `json:"budgetID"`
	UserID    string          `json:"userID"`
	Amount    decimal.Decimal `json:"amount"` // Strictly positive
	Month     YearMonth       `json:"month"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
