package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/wealthfin/finance_dashboard_app/internal/apperrors"
	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/wealthfin/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/wealthfin/finance_dashboard_app/internal/core/ports/services"
	"github.com/wealthfin/finance_dashboard_app/internal/dto"
)

// BudgetService manages monthly budgets. Uniqueness per (user, month) is
// enforced here through upsert semantics; the storage unique constraint is a
// backstop against concurrent writers.
type BudgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepository
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(repo portsrepo.BudgetRepository) *BudgetService {
	return &BudgetService{budgetRepo: repo}
}

// Ensure BudgetService implements the service facade.
var _ portssvc.BudgetSvcFacade = (*BudgetService)(nil)

// SetBudget creates or replaces the budget for the given month.
func (s *BudgetService) SetBudget(ctx context.Context, req dto.SetBudgetRequest, userID string) (*domain.Budget, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
	}

	month, err := domain.ParseYearMonth(req.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	now := time.Now()
	existing, err := s.budgetRepo.FindBudgetByUserAndMonth(ctx, userID, month)
	if err == nil {
		existing.Amount = req.Amount
		existing.UpdatedAt = now
		if err := s.budgetRepo.UpdateBudget(ctx, *existing); err != nil {
			s.LogError(ctx, err, "Failed to update budget in repository", slog.String("budget_id", existing.BudgetID))
			return nil, err
		}
		s.LogInfo(ctx, "Budget updated", slog.String("budget_id", existing.BudgetID), slog.String("month", month.String()))
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up existing budget", slog.String("user_id", userID), slog.String("month", month.String()))
		return nil, err
	}

	budget := domain.Budget{
		BudgetID:  uuid.NewString(),
		UserID:    userID,
		Amount:    req.Amount,
		Month:     month,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget in repository", slog.String("budget_id", budget.BudgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget created", slog.String("budget_id", budget.BudgetID), slog.String("month", month.String()))
	return &budget, nil
}

// GetBudgetByMonth retrieves the user's budget for a month.
func (s *BudgetService) GetBudgetByMonth(ctx context.Context, userID string, month domain.YearMonth) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByUserAndMonth(ctx, userID, month)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find budget in repository", slog.String("user_id", userID), slog.String("month", month.String()))
		}
		return nil, err
	}
	return budget, nil
}

// GetCurrentBudget retrieves the user's most recent budget by month.
func (s *BudgetService) GetCurrentBudget(ctx context.Context, userID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindLatestBudgetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find latest budget in repository", slog.String("user_id", userID))
		}
		return nil, err
	}
	return budget, nil
}
