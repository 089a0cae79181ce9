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

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		Name:        d.Name,
		Balance:     d.Balance,
		AccountType: models.AccountType(d.AccountType),
		IsDefault:   d.IsDefault,
		UserID:      d.UserID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		Name:        m.Name,
		Balance:     m.Balance,
		AccountType: domain.AccountType(m.AccountType),
		IsDefault:   m.IsDefault,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

const accountColumns = `account_id, name, balance, account_type, is_default, user_id, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.Balance,
		&m.AccountType,
		&m.IsDefault,
		&m.UserID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	acc := toDomainAccount(m)
	return &acc, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.Balance,
		m.AccountType,
		m.IsDefault,
		m.UserID,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByIDAndUser retrieves an account by its ID, scoped to its owner.
func (r *PgxAccountRepository) FindAccountByIDAndUser(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1 AND user_id = $2;
	`
	return scanAccount(r.pool.QueryRow(ctx, query, accountID, userID))
}

// FindDefaultAccount retrieves the account currently flagged default for a user.
func (r *PgxAccountRepository) FindDefaultAccount(ctx context.Context, userID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE user_id = $1 AND is_default = TRUE;
	`
	return scanAccount(r.pool.QueryRow(ctx, query, userID))
}

// ListAccountsByUser retrieves all accounts owned by a user.
func (r *PgxAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at;
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for user %s: %w", userID, err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(
			&m.AccountID,
			&m.Name,
			&m.Balance,
			&m.AccountType,
			&m.IsDefault,
			&m.UserID,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// UpdateAccount updates an existing account's details, including its default flag.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $3, balance = $4, account_type = $5, is_default = $6, updated_at = $7
		WHERE account_id = $1 AND user_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.Name,
		m.Balance,
		m.AccountType,
		m.IsDefault,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccount removes an account owned by the given user. Transactions
// referencing the account are left untouched.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string, userID string) error {
	query := `DELETE FROM accounts WHERE account_id = $1 AND user_id = $2;`
	tag, err := r.pool.Exec(ctx, query, accountID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
