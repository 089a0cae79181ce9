package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	Balance     decimal.Decimal    `json:"balance"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=SAVINGS CURRENT WALLET"`
	IsDefault   bool               `json:"isDefault"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name        *string             `json:"name"`
	Balance     *decimal.Decimal    `json:"balance"`
	AccountType *domain.AccountType `json:"accountType" binding:"omitempty,oneof=SAVINGS CURRENT WALLET"`
	IsDefault   *bool               `json:"isDefault"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID   string             `json:"accountID"`
	Name        string             `json:"name"`
	Balance     decimal.Decimal    `json:"balance"`
	AccountType domain.AccountType `json:"accountType"`
	IsDefault   bool               `json:"isDefault"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		Name:        acc.Name,
		Balance:     acc.Balance,
		AccountType: acc.AccountType,
		IsDefault:   acc.IsDefault,
		CreatedAt:   acc.CreatedAt,
		UpdatedAt:   acc.UpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
