package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wealthfin/finance_dashboard_app/internal/apperrors"
	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/wealthfin/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/wealthfin/finance_dashboard_app/internal/core/ports/services"
	"github.com/wealthfin/finance_dashboard_app/internal/dto"
)

// AccountService manages a user's accounts and upholds the invariant that a
// user has at most one default account. Every write that touches the default
// flag runs under a per-user lock, so the read-clear-set sequence is never
// interleaved with another default mutation for the same user.
type AccountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepository
	defaultLocks sync.Map // userID -> *sync.Mutex
}

// NewAccountService creates a new AccountService.
func NewAccountService(repo portsrepo.AccountRepository) *AccountService {
	return &AccountService{accountRepo: repo}
}

// Ensure AccountService implements the service facade.
var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

func (s *AccountService) userLock(userID string) *sync.Mutex {
	mu, _ := s.defaultLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// demoteCurrentDefault clears the existing default account for the user
// unless it is exceptID. Caller must hold the user's default lock.
func (s *AccountService) demoteCurrentDefault(ctx context.Context, userID, exceptID string, now time.Time) error {
	current, err := s.accountRepo.FindDefaultAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil // Zero defaults is a valid state
		}
		return err
	}
	if current.AccountID == exceptID {
		return nil
	}
	current.IsDefault = false
	current.UpdatedAt = now
	return s.accountRepo.UpdateAccount(ctx, *current)
}

// CreateAccount persists a new account for the user. When the request marks
// it default, any existing default is demoted first.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if req.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        req.Name,
		Balance:     req.Balance,
		AccountType: req.AccountType,
		IsDefault:   req.IsDefault,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.IsDefault {
		mu := s.userLock(userID)
		mu.Lock()
		defer mu.Unlock()
		if err := s.demoteCurrentDefault(ctx, userID, account.AccountID, now); err != nil {
			s.LogError(ctx, err, "Failed to demote current default account", slog.String("user_id", userID))
			return nil, err
		}
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account in repository", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.Bool("is_default", account.IsDefault))
	return &account, nil
}

// GetAccountByID retrieves a specific account owned by the user.
func (s *AccountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByIDAndUser(ctx, accountID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID in repository", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetDefaultAccount retrieves the user's default account, if any.
func (s *AccountService) GetDefaultAccount(ctx context.Context, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindDefaultAccount(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find default account in repository", slog.String("user_id", userID))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves all accounts owned by the user.
func (s *AccountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts from repository", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// UpdateAccount updates an account's details. A default-flag change runs
// through the same demotion path as SetDefaultAccount; clearing the flag
// promotes no other account.
func (s *AccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if req.Balance != nil && req.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance must not be negative", apperrors.ErrValidation)
	}

	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	account, err := s.accountRepo.FindAccountByIDAndUser(ctx, accountID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for update", slog.String("account_id", accountID))
		}
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Balance != nil {
		account.Balance = *req.Balance
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
	}

	now := time.Now()
	if req.IsDefault != nil {
		if *req.IsDefault && !account.IsDefault {
			if err := s.demoteCurrentDefault(ctx, userID, account.AccountID, now); err != nil {
				s.LogError(ctx, err, "Failed to demote current default account", slog.String("user_id", userID))
				return nil, err
			}
		}
		account.IsDefault = *req.IsDefault
	}
	account.UpdatedAt = now

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account in repository", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

// SetDefaultAccount makes the account the user's sole default. Calling it on
// the current default is a no-op beyond refreshing the timestamp.
func (s *AccountService) SetDefaultAccount(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	account, err := s.accountRepo.FindAccountByIDAndUser(ctx, accountID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for default toggle", slog.String("account_id", accountID))
		}
		return nil, err
	}

	now := time.Now()
	if err := s.demoteCurrentDefault(ctx, userID, account.AccountID, now); err != nil {
		s.LogError(ctx, err, "Failed to demote current default account", slog.String("user_id", userID))
		return nil, err
	}

	account.IsDefault = true
	account.UpdatedAt = now
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to persist new default account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Default account set", slog.String("account_id", accountID), slog.String("user_id", userID))
	return account, nil
}

// DeleteAccount removes an account. Transactions that reference it keep
// their accountID; they are not cascaded or reassigned.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID string, userID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete account in repository", slog.String("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}
