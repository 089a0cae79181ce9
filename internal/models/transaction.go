package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a transaction's cash flow.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction is the persistence representation of an income or expense
// entry. RecurringInterval is empty when the transaction is not recurring;
// it maps to a nullable column.
type Transaction struct {
	TransactionID     string          `db:"transaction_id"`
	Description       string          `db:"description"`
	Amount            decimal.Decimal `db:"amount"`
	Category          string          `db:"category"`
	Date              time.Time       `db:"date"`
	AccountID         string          `db:"account_id"`
	UserID            string          `db:"user_id"`
	TransactionType   TransactionType `db:"transaction_type"`
	IsRecurring       bool            `db:"is_recurring"`
	RecurringInterval string          `db:"recurring_interval"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}
