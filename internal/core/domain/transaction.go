package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a transaction's cash flow.
// The sign of the impact is carried by the type; Amount is always positive.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// RecurringInterval describes how often a recurring transaction repeats.
// It is descriptive metadata only; no transactions are generated from it.
type RecurringInterval string

const (
	Daily   RecurringInterval = "DAILY"
	Weekly  RecurringInterval = "WEEKLY"
	Monthly RecurringInterval = "MONTHLY"
	Yearly  RecurringInterval = "YEARLY"
)

// Transaction represents a single income or expense entry.
type Transaction struct {
	TransactionID     string            `json:"transactionID"`
	Description       string            `json:"description"`
	Amount            decimal.Decimal   `json:"amount"` // Strictly positive
	Category          string            `json:"category"`
	Date              time.Time         `json:"date"` // Calendar day, no time component
	AccountID         string            `json:"accountID"`
	UserID            string            `json:"userID"`
	TransactionType   TransactionType   `json:"transactionType"`
	IsRecurring       bool              `json:"isRecurring"`
	RecurringInterval RecurringInterval `json:"recurringInterval,omitempty"` // Set only when IsRecurring
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}
