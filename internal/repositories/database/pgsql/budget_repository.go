package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wealthfin/finance_dashboard_app/internal/apperrors"
	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/wealthfin/finance_dashboard_app/internal/core/ports/repositories"
	"github.com/wealthfin/finance_dashboard_app/internal/models"
)

type PgxBudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new repository for budget data.
func NewBudgetRepository(pool *pgxpool.Pool) *PgxBudgetRepository {
	return &PgxBudgetRepository{pool: pool}
}

// Ensure PgxBudgetRepository implements portsrepo.BudgetRepository
var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

func toModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:  d.BudgetID,
		UserID:    d.UserID,
		Amount:    d.Amount,
		Month:     d.Month.String(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toDomainBudget(m models.Budget) (domain.Budget, error) {
	month, err := domain.ParseYearMonth(m.Month)
	if err != nil {
		return domain.Budget{}, fmt.Errorf("budget %s has malformed month %q: %w", m.BudgetID, m.Month, err)
	}
	return domain.Budget{
		BudgetID:  m.BudgetID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Month:     month,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

const budgetColumns = `budget_id, user_id, amount, month, created_at, updated_at`

func scanBudget(row pgx.Row) (*domain.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.UserID,
		&m.Amount,
		&m.Month,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan budget: %w", err)
	}
	budget, err := toDomainBudget(m)
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// FindBudgetByUserAndMonth retrieves the budget for a given month.
func (r *PgxBudgetRepository) FindBudgetByUserAndMonth(ctx context.Context, userID string, month domain.YearMonth) (*domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND month = $2;
	`
	return scanBudget(r.pool.QueryRow(ctx, query, userID, month.String()))
}

// FindLatestBudgetByUser retrieves the user's most recent budget by month.
func (r *PgxBudgetRepository) FindLatestBudgetByUser(ctx context.Context, userID string) (*domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1
		ORDER BY month DESC
		LIMIT 1;
	`
	return scanBudget(r.pool.QueryRow(ctx, query, userID))
}

// SaveBudget inserts a new budget.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := toModelBudget(budget)

	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		m.BudgetID,
		m.UserID,
		m.Amount,
		m.Month,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: budget for %s already exists", apperrors.ErrDuplicate, m.Month)
		}
		return fmt.Errorf("failed to save budget %s: %w", m.BudgetID, err)
	}
	return nil
}

// UpdateBudget updates an existing budget's amount.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := toModelBudget(budget)

	query := `
		UPDATE budgets
		SET amount = $3, updated_at = $4
		WHERE budget_id = $1 AND user_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.BudgetID,
		m.UserID,
		m.Amount,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget %s: %w", m.BudgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
