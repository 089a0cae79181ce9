package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Dates travel as "YYYY-MM-DD"; the time component is dropped on parse.
type CreateTransactionRequest struct {
	Description       string                   `json:"description" binding:"required"`
	Amount            decimal.Decimal          `json:"amount" binding:"required"`
	Category          string                   `json:"category" binding:"required"`
	Date              string                   `json:"date" binding:"required,datetime=2006-01-02"`
	AccountID         string                   `json:"accountID" binding:"required"`
	TransactionType   domain.TransactionType   `json:"transactionType" binding:"required,oneof=INCOME EXPENSE"`
	IsRecurring       bool                     `json:"isRecurring"`
	RecurringInterval domain.RecurringInterval `json:"recurringInterval" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
}

// UpdateTransactionRequest mirrors CreateTransactionRequest for full updates.
type UpdateTransactionRequest struct {
	Description       string                   `json:"description" binding:"required"`
	Amount            decimal.Decimal          `json:"amount" binding:"required"`
	Category          string                   `json:"category" binding:"required"`
	Date              string                   `json:"date" binding:"required,datetime=2006-01-02"`
	AccountID         string                   `json:"accountID" binding:"required"`
	TransactionType   domain.TransactionType   `json:"transactionType" binding:"required,oneof=INCOME EXPENSE"`
	IsRecurring       bool                     `json:"isRecurring"`
	RecurringInterval domain.RecurringInterval `json:"recurringInterval" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	AccountID *string `form:"accountId"`
	StartDate *string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Type      *string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID     string                   `json:"transactionID"`
	Description       string                   `json:"description"`
	Amount            decimal.Decimal          `json:"amount"`
	Category          string                   `json:"category"`
	Date              string                   `json:"date"`
	AccountID         string                   `json:"accountID"`
	TransactionType   domain.TransactionType   `json:"transactionType"`
	IsRecurring       bool                     `json:"isRecurring"`
	RecurringInterval domain.RecurringInterval `json:"recurringInterval,omitempty"`
	CreatedAt         time.Time                `json:"createdAt"`
	UpdatedAt         time.Time                `json:"updatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to a response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:     txn.TransactionID,
		Description:       txn.Description,
		Amount:            txn.Amount,
		Category:          txn.Category,
		Date:              txn.Date.Format("2006-01-02"),
		AccountID:         txn.AccountID,
		TransactionType:   txn.TransactionType,
		IsRecurring:       txn.IsRecurring,
		RecurringInterval: txn.RecurringInterval,
		CreatedAt:         txn.CreatedAt,
		UpdatedAt:         txn.UpdatedAt,
	}
}

// ToListTransactionResponse converts domain transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
