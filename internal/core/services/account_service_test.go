package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wealthfin/finance_dashboard_app/internal/apperrors"
	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
	"github.com/wealthfin/finance_dashboard_app/internal/core/services"
	"github.com/wealthfin/finance_dashboard_app/internal/dto"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByIDAndUser(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindDefaultAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string, userID string) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  *services.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Name:        "Everyday Savings",
		Balance:     decimal.NewFromInt(250),
		AccountType: domain.Savings,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdAccount)
	suite.NotEmpty(createdAccount.AccountID)
	suite.Equal(req.Name, createdAccount.Name)
	suite.Equal(req.AccountType, createdAccount.AccountType)
	suite.True(createdAccount.Balance.Equal(req.Balance))
	suite.False(createdAccount.IsDefault)
	suite.Equal(userID, createdAccount.UserID)
	suite.WithinDuration(time.Now(), createdAccount.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NegativeBalance() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Bad Balance",
		Balance:     decimal.NewFromInt(-10),
		AccountType: domain.Current,
	}

	createdAccount, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_AsDefaultDemotesExisting() {
	ctx := context.Background()
	userID := uuid.NewString()
	existingDefault := &domain.Account{
		AccountID: uuid.NewString(),
		Name:      "Old Default",
		IsDefault: true,
		UserID:    userID,
	}
	req := dto.CreateAccountRequest{
		Name:        "New Default",
		Balance:     decimal.NewFromInt(100),
		AccountType: domain.Wallet,
		IsDefault:   true,
	}

	suite.mockRepo.On("FindDefaultAccount", ctx, userID).Return(existingDefault, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.AccountID == existingDefault.AccountID && !acc.IsDefault
	})).Return(nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.IsDefault && acc.Name == req.Name
	})).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdAccount)
	suite.True(createdAccount.IsDefault)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_AsDefaultWhenNoneExists() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Name:        "First Account",
		Balance:     decimal.Zero,
		AccountType: domain.Savings,
		IsDefault:   true,
	}

	suite.mockRepo.On("FindDefaultAccount", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req, userID)

	suite.Require().NoError(err)
	suite.True(createdAccount.IsDefault)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount")
}

func (suite *AccountServiceTestSuite) TestSetDefaultAccount_MovesDefault() {
	ctx := context.Background()
	userID := uuid.NewString()
	oldDefault := &domain.Account{
		AccountID: uuid.NewString(),
		Name:      "Account X",
		IsDefault: true,
		UserID:    userID,
	}
	target := &domain.Account{
		AccountID: uuid.NewString(),
		Name:      "Account Y",
		IsDefault: false,
		UserID:    userID,
	}

	suite.mockRepo.On("FindAccountByIDAndUser", ctx, target.AccountID, userID).Return(target, nil).Once()
	suite.mockRepo.On("FindDefaultAccount", ctx, userID).Return(oldDefault, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.AccountID == oldDefault.AccountID && !acc.IsDefault
	})).Return(nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.AccountID == target.AccountID && acc.IsDefault
	})).Return(nil).Once()

	updated, err := suite.service.SetDefaultAccount(ctx, target.AccountID, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.True(updated.IsDefault)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestSetDefaultAccount_AlreadyDefault() {
	ctx := context.Background()
	userID := uuid.NewString()
	account := &domain.Account{
		AccountID: uuid.NewString(),
		Name:      "Current Default",
		IsDefault: true,
		UserID:    userID,
	}

	suite.mockRepo.On("FindAccountByIDAndUser", ctx, account.AccountID, userID).Return(account, nil).Once()
	// The demotion path sees the same account and leaves it alone.
	suite.mockRepo.On("FindDefaultAccount", ctx, userID).Return(account, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.AccountID == account.AccountID && acc.IsDefault
	})).Return(nil).Once()

	updated, err := suite.service.SetDefaultAccount(ctx, account.AccountID, userID)

	suite.Require().NoError(err)
	suite.True(updated.IsDefault)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestSetDefaultAccount_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindAccountByIDAndUser", ctx, accountID, userID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.SetDefaultAccount(ctx, accountID, userID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	// No demotion happens when the target does not exist.
	suite.mockRepo.AssertNotCalled(suite.T(), "FindDefaultAccount")
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount")
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_ClearDefaultPromotesNothing() {
	ctx := context.Background()
	userID := uuid.NewString()
	account := &domain.Account{
		AccountID: uuid.NewString(),
		Name:      "Default Account",
		IsDefault: true,
		UserID:    userID,
	}
	notDefault := false
	req := dto.UpdateAccountRequest{IsDefault: &notDefault}

	suite.mockRepo.On("FindAccountByIDAndUser", ctx, account.AccountID, userID).Return(account, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.AccountID == account.AccountID && !acc.IsDefault
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, account.AccountID, req, userID)

	suite.Require().NoError(err)
	suite.False(updated.IsDefault)
	// Clearing the flag must not hunt for another account to promote.
	suite.mockRepo.AssertNotCalled(suite.T(), "FindDefaultAccount")
}

func (suite *AccountServiceTestSuite) TestGetDefaultAccount_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindDefaultAccount", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetDefaultAccount(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts_EmptyResult() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("ListAccountsByUser", ctx, userID).Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, userID)

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockRepo.On("DeleteAccount", ctx, accountID, userID).Return(expectedErr).Once()

	err := suite.service.DeleteAccount(ctx, accountID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
