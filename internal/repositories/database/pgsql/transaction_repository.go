package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wealthfin/finance_dashboard_app/internal/apperrors"
	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/wealthfin/finance_dashboard_app/internal/core/ports/repositories"
	"github.com/wealthfin/finance_dashboard_app/internal/models"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new repository for transaction data.
func NewTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:     d.TransactionID,
		Description:       d.Description,
		Amount:            d.Amount,
		Category:          d.Category,
		Date:              d.Date,
		AccountID:         d.AccountID,
		UserID:            d.UserID,
		TransactionType:   models.TransactionType(d.TransactionType),
		IsRecurring:       d.IsRecurring,
		RecurringInterval: string(d.RecurringInterval),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:     m.TransactionID,
		Description:       m.Description,
		Amount:            m.Amount,
		Category:          m.Category,
		Date:              m.Date,
		AccountID:         m.AccountID,
		UserID:            m.UserID,
		TransactionType:   domain.TransactionType(m.TransactionType),
		IsRecurring:       m.IsRecurring,
		RecurringInterval: domain.RecurringInterval(m.RecurringInterval),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

const transactionColumns = `transaction_id, description, amount, category, date, account_id, user_id, transaction_type, is_recurring, recurring_interval, created_at, updated_at`

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	var interval sql.NullString
	if m.RecurringInterval != "" {
		interval = sql.NullString{String: m.RecurringInterval, Valid: true}
	}

	_, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.Description,
		m.Amount,
		m.Category,
		m.Date,
		m.AccountID,
		m.UserID,
		m.TransactionType,
		m.IsRecurring,
		interval,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByIDAndUser retrieves a transaction by its ID, scoped to its owner.
func (r *PgxTransactionRepository) FindTransactionByIDAndUser(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	var m models.Transaction
	var interval sql.NullString

	err := r.pool.QueryRow(ctx, query, transactionID, userID).Scan(
		&m.TransactionID,
		&m.Description,
		&m.Amount,
		&m.Category,
		&m.Date,
		&m.AccountID,
		&m.UserID,
		&m.TransactionType,
		&m.IsRecurring,
		&interval,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	m.RecurringInterval = interval.String
	txn := toDomainTransaction(m)
	return &txn, nil
}

// ListTransactionsByUser retrieves a user's transactions matching the filter,
// most recent first.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`)
	args := []any{userID}

	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		sb.WriteString(` AND account_id = $` + strconv.Itoa(len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		sb.WriteString(` AND date >= $` + strconv.Itoa(len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		sb.WriteString(` AND date <= $` + strconv.Itoa(len(args)))
	}
	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		sb.WriteString(` AND transaction_type = $` + strconv.Itoa(len(args)))
	}
	sb.WriteString(` ORDER BY date DESC, created_at DESC;`)

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var m models.Transaction
		var interval sql.NullString
		if err := rows.Scan(
			&m.TransactionID,
			&m.Description,
			&m.Amount,
			&m.Category,
			&m.Date,
			&m.AccountID,
			&m.UserID,
			&m.TransactionType,
			&m.IsRecurring,
			&interval,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		m.RecurringInterval = interval.String
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// UpdateTransaction updates an existing transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		UPDATE transactions
		SET description = $3, amount = $4, category = $5, date = $6, account_id = $7,
		    transaction_type = $8, is_recurring = $9, recurring_interval = $10, updated_at = $11
		WHERE transaction_id = $1 AND user_id = $2;
	`
	var interval sql.NullString
	if m.RecurringInterval != "" {
		interval = sql.NullString{String: m.RecurringInterval, Valid: true}
	}

	tag, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Description,
		m.Amount,
		m.Category,
		m.Date,
		m.AccountID,
		m.TransactionType,
		m.IsRecurring,
		interval,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction owned by the given user.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`
	tag, err := r.pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
