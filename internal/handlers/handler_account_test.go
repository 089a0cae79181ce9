package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wealthfin/finance_dashboard_app/internal/apperrors"
	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
	portssvc "github.com/wealthfin/finance_dashboard_app/internal/core/ports/services"
	"github.com/wealthfin/finance_dashboard_app/internal/dto"
	"github.com/wealthfin/finance_dashboard_app/internal/handlers"
	"github.com/wealthfin/finance_dashboard_app/internal/platform/config"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetDefaultAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) SetDefaultAccount(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string, userID string) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	args := m.Called(ctx, transactionID, userID)
	return args.Error(0)
}
func (m *MockTransactionService) GetExpenseSummary(ctx context.Context, userID string, month domain.YearMonth) (*domain.ExpenseSummary, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseSummary), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) SetBudget(ctx context.Context, req dto.SetBudgetRequest, userID string) (*domain.Budget, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetService) GetBudgetByMonth(ctx context.Context, userID string, month domain.YearMonth) (*domain.Budget, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetService) GetCurrentBudget(ctx context.Context, userID string) (*domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Mock InsightService ---
type MockInsightService struct {
	mock.Mock
}

func (m *MockInsightService) GetInsights(ctx context.Context, userID string, month domain.YearMonth) (*domain.FinancialInsights, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialInsights), args.Error(1)
}

var _ portssvc.InsightSvc = (*MockInsightService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockAccountService     *MockAccountService
	mockTransactionService *MockTransactionService
	mockBudgetService      *MockBudgetService
	mockInsightService     *MockInsightService
	jwtSecret              string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *AccountHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "finance-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockAccountService = new(MockAccountService)
	suite.mockTransactionService = new(MockTransactionService)
	suite.mockBudgetService = new(MockBudgetService)
	suite.mockInsightService = new(MockInsightService)

	container := &portssvc.ServiceContainer{
		Account:     suite.mockAccountService,
		Transaction: suite.mockTransactionService,
		Budget:      suite.mockBudgetService,
		Insight:     suite.mockInsightService,
	}
	cfg := &config.Config{JWTSecret: suite.jwtSecret}
	handlers.RegisterRoutes(suite.router, cfg, container, nil)
}

func (suite *AccountHandlerTestSuite) doRequest(method, url, userID string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestSetDefaultAccount_Success() {
	userID := uuid.NewString()
	accountID := uuid.NewString()
	expected := &domain.Account{
		AccountID:   accountID,
		Name:        "Main Account",
		Balance:     decimal.NewFromInt(500),
		AccountType: domain.Savings,
		IsDefault:   true,
		UserID:      userID,
	}

	suite.mockAccountService.On("SetDefaultAccount", mock.Anything, accountID, userID).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPatch, fmt.Sprintf("/api/v1/accounts/%s/default", accountID), userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(accountID, resp.AccountID)
	suite.True(resp.IsDefault)

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestSetDefaultAccount_NotFound() {
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockAccountService.On("SetDefaultAccount", mock.Anything, accountID, userID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodPatch, fmt.Sprintf("/api/v1/accounts/%s/default", accountID), userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetDefaultAccount_NoneSet() {
	userID := uuid.NewString()

	suite.mockAccountService.On("GetDefaultAccount", mock.Anything, userID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/default", userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_ValidationError() {
	userID := uuid.NewString()
	body, _ := json.Marshal(map[string]any{
		"name":        "Bad Type",
		"accountType": "CHECKING",
	})

	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", userID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestMissingToken_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts")
}

func (suite *AccountHandlerTestSuite) TestGetInsights_Success() {
	userID := uuid.NewString()
	month := domain.YearMonth{Year: 2025, Month: time.March}
	expected := &domain.FinancialInsights{
		UserID:   userID,
		Month:    month,
		Insights: []string{"Spending is stable month over month"},
		Summary:  "Your financial summary for this month shows a net flow of $400.00.",
		Source:   domain.InsightSourceAI,
	}

	suite.mockInsightService.On("GetInsights", mock.Anything, userID, month).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/insights?month=2025-03", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.InsightsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-03", resp.Month)
	suite.Equal(domain.InsightSourceAI, resp.Source)
	suite.Equal(expected.Insights, resp.Insights)

	suite.mockInsightService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetInsights_BadMonth() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/insights?month=March", userID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInsightService.AssertNotCalled(suite.T(), "GetInsights")
}

func (suite *AccountHandlerTestSuite) TestSetBudget_Success() {
	userID := uuid.NewString()
	month := domain.YearMonth{Year: 2025, Month: time.March}
	expected := &domain.Budget{
		BudgetID: uuid.NewString(),
		UserID:   userID,
		Amount:   decimal.NewFromInt(2000),
		Month:    month,
	}
	body, _ := json.Marshal(map[string]any{"amount": 2000, "month": "2025-03"})

	suite.mockBudgetService.On("SetBudget", mock.Anything, mock.MatchedBy(func(req dto.SetBudgetRequest) bool {
		return req.Month == "2025-03" && req.Amount.Equal(decimal.NewFromInt(2000))
	}), userID).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/budgets", userID, body)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BudgetResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-03", resp.Month)
}

func (suite *AccountHandlerTestSuite) TestSetBudget_BadMonthFormat() {
	userID := uuid.NewString()
	body, _ := json.Marshal(map[string]any{"amount": 2000, "month": "2025/03"})

	w := suite.doRequest(http.MethodPost, "/api/v1/budgets", userID, body)

	// Rejected by the yearmonth binding validator before the service runs.
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBudgetService.AssertNotCalled(suite.T(), "SetBudget")
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
