package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wealthfin/finance_dashboard_app/internal/apperrors"
	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/wealthfin/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/wealthfin/finance_dashboard_app/internal/core/ports/services"
	"github.com/wealthfin/finance_dashboard_app/internal/dto"
)

// TransactionService manages a user's transactions and reduces them to
// monthly expense summaries.
type TransactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(repo portsrepo.TransactionRepository) *TransactionService {
	return &TransactionService{txnRepo: repo}
}

// Ensure TransactionService implements the service facade.
var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

func validateTransactionFields(amount decimal.Decimal, isRecurring bool, interval domain.RecurringInterval) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if isRecurring && interval == "" {
		return fmt.Errorf("%w: recurring transactions require an interval", apperrors.ErrValidation)
	}
	return nil
}

// CreateTransaction persists a new transaction for the user.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if err := validateTransactionFields(req.Amount, req.IsRecurring, req.RecurringInterval); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		Description:     req.Description,
		Amount:          req.Amount,
		Category:        req.Category,
		Date:            date,
		AccountID:       req.AccountID,
		UserID:          userID,
		TransactionType: req.TransactionType,
		IsRecurring:     req.IsRecurring,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.IsRecurring {
		txn.RecurringInterval = req.RecurringInterval
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction in repository", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("type", string(txn.TransactionType)))
	return &txn, nil
}

// GetTransactionByID retrieves a specific transaction owned by the user.
func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByIDAndUser(ctx, transactionID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction in repository", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions retrieves the user's transactions matching the params.
func (s *TransactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter := portsrepo.TransactionFilter{AccountID: params.AccountID}
	if params.StartDate != nil {
		start, err := time.Parse("2006-01-02", *params.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start date %q", apperrors.ErrValidation, *params.StartDate)
		}
		filter.StartDate = &start
	}
	if params.EndDate != nil {
		end, err := time.Parse("2006-01-02", *params.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end date %q", apperrors.ErrValidation, *params.EndDate)
		}
		filter.EndDate = &end
	}
	if params.Type != nil {
		txnType := domain.TransactionType(*params.Type)
		filter.Type = &txnType
	}

	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions from repository", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// UpdateTransaction replaces an existing transaction's details.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	if err := validateTransactionFields(req.Amount, req.IsRecurring, req.RecurringInterval); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	txn, err := s.txnRepo.FindTransactionByIDAndUser(ctx, transactionID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction for update", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	txn.Description = req.Description
	txn.Amount = req.Amount
	txn.Category = req.Category
	txn.Date = date
	txn.AccountID = req.AccountID
	txn.TransactionType = req.TransactionType
	txn.IsRecurring = req.IsRecurring
	txn.RecurringInterval = ""
	if req.IsRecurring {
		txn.RecurringInterval = req.RecurringInterval
	}
	txn.UpdatedAt = time.Now()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction in repository", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

// DeleteTransaction removes a transaction owned by the user.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction in repository", slog.String("transaction_id", transactionID))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// GetExpenseSummary reduces the user's transactions for a month into totals
// and a per-category breakdown. All additions use exact decimal arithmetic;
// only the final percentages are floats. Budget fields are left zero — the
// caller supplies a budget through ApplyBudget.
func (s *TransactionService) GetExpenseSummary(ctx context.Context, userID string, month domain.YearMonth) (*domain.ExpenseSummary, error) {
	first := month.FirstDay()
	last := month.LastDay()

	expenseType := domain.Expense
	expenses, err := s.txnRepo.ListTransactionsByUser(ctx, userID, portsrepo.TransactionFilter{
		StartDate: &first,
		EndDate:   &last,
		Type:      &expenseType,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to scan expenses for summary", slog.String("user_id", userID), slog.String("month", month.String()))
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	incomeType := domain.Income
	incomes, err := s.txnRepo.ListTransactionsByUser(ctx, userID, portsrepo.TransactionFilter{
		StartDate: &first,
		EndDate:   &last,
		Type:      &incomeType,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to scan income for summary", slog.String("user_id", userID), slog.String("month", month.String()))
		return nil, fmt.Errorf("failed to fetch income: %w", err)
	}

	totalSpent := decimal.Zero
	categoryTotals := make(map[string]decimal.Decimal)
	for _, txn := range expenses {
		totalSpent = totalSpent.Add(txn.Amount)
		categoryTotals[txn.Category] = categoryTotals[txn.Category].Add(txn.Amount)
	}

	totalIncome := decimal.Zero
	for _, txn := range incomes {
		totalIncome = totalIncome.Add(txn.Amount)
	}

	// Sorted category names keep the breakdown order deterministic.
	categories := make([]string, 0, len(categoryTotals))
	for category := range categoryTotals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	hundred := decimal.NewFromInt(100)
	breakdown := make([]domain.CategoryBreakdown, 0, len(categories))
	for _, category := range categories {
		amount := categoryTotals[category]
		percentage := 0.0
		if totalSpent.IsPositive() {
			percentage, _ = amount.Div(totalSpent).Mul(hundred).Float64()
		}
		breakdown = append(breakdown, domain.CategoryBreakdown{
			Category:   category,
			Amount:     amount,
			Percentage: percentage,
			Color:      domain.CategoryColor(category),
		})
	}

	summary := &domain.ExpenseSummary{
		Month:             month,
		TotalSpent:        totalSpent,
		TotalIncome:       totalIncome,
		NetFlow:           totalIncome.Sub(totalSpent),
		BudgetAmount:      decimal.Zero,
		RemainingBudget:   decimal.Zero,
		CategoryBreakdown: breakdown,
	}

	s.LogDebug(ctx, "Expense summary computed",
		slog.String("user_id", userID),
		slog.String("month", month.String()),
		slog.Int("expense_count", len(expenses)),
		slog.Int("income_count", len(incomes)))
	return summary, nil
}
