package domain

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

// Account represents a user's financial account within the core domain.
// This is the primary representation used by services.
//
// Invariant: for a given UserID, at most one Account has IsDefault set.
// AccountService is responsible for upholding this on every write.
type Account struct {
	AccountID   string          `json:"accountID"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"` // Non-negative, exact decimal
	AccountType AccountType     `json:"accountType"`
	IsDefault   bool            `json:"isDefault"`
	UserID      string          `json:"userID"` // Owning user
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
