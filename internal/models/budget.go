package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the persistence representation of a monthly budget.
// The month is stored as "YYYY-MM" so the latest budget can be selected
// with a plain ORDER BY.
type Budget struct {
	BudgetID  string          `db:"budget_id"`
	UserID    string          `db:"user_id"`
	Amount    decimal.Decimal `db:"amount"`
	Month     string          `db:"month"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
