package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies the kind of account a user holds.
type AccountType string

const (
	Savings AccountType = "SAVINGS"
	Current AccountType = "CURRENT"
	Wallet  AccountType = "WALLET"
)

// Account is the persistence representation of a financial account.
type Account struct {
	AccountID   string          `db:"account_id"`
	Name        string          `db:"name"`
	Balance     decimal.Decimal `db:"balance"`
	AccountType AccountType     `db:"account_type"`
	IsDefault   bool            `db:"is_default"`
	UserID      string          `db:"user_id"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
