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
)

// MockExpenseSummarizer is a mock type for the ExpenseSummarizer interface
type MockExpenseSummarizer struct {
	mock.Mock
}

func (m *MockExpenseSummarizer) GetExpenseSummary(ctx context.Context, userID string, month domain.YearMonth) (*domain.ExpenseSummary, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseSummary), args.Error(1)
}

// MockBudgetReader is a mock type for the BudgetReaderSvc interface
type MockBudgetReader struct {
	mock.Mock
}

func (m *MockBudgetReader) GetBudgetByMonth(ctx context.Context, userID string, month domain.YearMonth) (*domain.Budget, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetReader) GetCurrentBudget(ctx context.Context, userID string) (*domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

// MockNarrativeProvider is a mock type for the NarrativeProvider interface
type MockNarrativeProvider struct {
	mock.Mock
}

func (m *MockNarrativeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// --- Test Suite Setup ---

type InsightServiceTestSuite struct {
	suite.Suite
	mockSummarizer *MockExpenseSummarizer
	mockBudgets    *MockBudgetReader
	mockProvider   *MockNarrativeProvider
	service        *services.InsightService
}

func (suite *InsightServiceTestSuite) SetupTest() {
	suite.mockSummarizer = new(MockExpenseSummarizer)
	suite.mockBudgets = new(MockBudgetReader)
	suite.mockProvider = new(MockNarrativeProvider)
	suite.service = services.NewInsightService(suite.mockSummarizer, suite.mockBudgets, suite.mockProvider)
}

func (suite *InsightServiceTestSuite) summaryFixture(month domain.YearMonth) *domain.ExpenseSummary {
	return &domain.ExpenseSummary{
		Month:       month,
		TotalSpent:  decimal.NewFromInt(100),
		TotalIncome: decimal.NewFromInt(500),
		NetFlow:     decimal.NewFromInt(400),
		CategoryBreakdown: []domain.CategoryBreakdown{
			{Category: "Food & Dining", Amount: decimal.NewFromInt(40), Percentage: 40, Color: "#FF6B6B"},
			{Category: "Transportation", Amount: decimal.NewFromInt(60), Percentage: 60, Color: "#4ECDC4"},
		},
	}
}

// --- Test Cases ---

func (suite *InsightServiceTestSuite) TestGetInsights_AISuccess() {
	ctx := context.Background()
	userID := uuid.NewString()
	month := domain.YearMonth{Year: 2025, Month: time.March}

	suite.mockSummarizer.On("GetExpenseSummary", ctx, userID, month).Return(suite.summaryFixture(month), nil).Once()
	suite.mockBudgets.On("GetBudgetByMonth", ctx, userID, month).Return(&domain.Budget{
		BudgetID: uuid.NewString(),
		UserID:   userID,
		Amount:   decimal.NewFromInt(400),
		Month:    month,
	}, nil).Once()

	reply := "```json\n" +
		`{"insights": ["Dining spend is concentrated on weekends"],` +
		`"recommendations": [{"category": "Food & Dining", "suggestion": "Meal prep twice a week", "impact": "HIGH", "potentialSavings": "$80"}],` +
		`"assessment": "Healthy"}` + "\n```"
	suite.mockProvider.On("Generate", ctx, mock.AnythingOfType("string")).Return(reply, nil).Once()

	insights, err := suite.service.GetInsights(ctx, userID, month)

	suite.Require().NoError(err)
	suite.Require().NotNil(insights)
	suite.Equal(domain.InsightSourceAI, insights.Source)
	suite.Equal([]string{"Dining spend is concentrated on weekends"}, insights.Insights)
	suite.Require().Len(insights.Recommendations, 1)
	suite.Equal("Meal prep twice a week", insights.Recommendations[0].Suggestion)
	suite.Contains(insights.Summary, "400.00")
	suite.Contains(insights.Summary, "2 categories")

	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *InsightServiceTestSuite) TestGetInsights_ProviderErrorDegrades() {
	ctx := context.Background()
	userID := uuid.NewString()
	month := domain.YearMonth{Year: 2025, Month: time.March}

	suite.mockSummarizer.On("GetExpenseSummary", ctx, userID, month).Return(suite.summaryFixture(month), nil).Once()
	suite.mockBudgets.On("GetBudgetByMonth", ctx, userID, month).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProvider.On("Generate", ctx, mock.AnythingOfType("string")).Return("", apperrors.ErrUpstreamUnavailable).Once()

	insights, err := suite.service.GetInsights(ctx, userID, month)

	suite.Require().NoError(err)
	suite.Equal(domain.InsightSourceFallback, insights.Source)
	suite.Equal(domain.FallbackInsights(), insights.Insights)
	suite.Nil(insights.Recommendations)
	// The templated summary survives degradation.
	suite.Contains(insights.Summary, "net flow of $400.00")
}

func (suite *InsightServiceTestSuite) TestGetInsights_GarbageReplyDegrades() {
	ctx := context.Background()
	userID := uuid.NewString()
	month := domain.YearMonth{Year: 2025, Month: time.March}

	suite.mockSummarizer.On("GetExpenseSummary", ctx, userID, month).Return(suite.summaryFixture(month), nil).Once()
	suite.mockBudgets.On("GetBudgetByMonth", ctx, userID, month).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProvider.On("Generate", ctx, mock.AnythingOfType("string")).Return("I am sorry, I cannot help with that.", nil).Once()

	insights, err := suite.service.GetInsights(ctx, userID, month)

	suite.Require().NoError(err)
	suite.Equal(domain.InsightSourceFallback, insights.Source)
	suite.Equal(domain.FallbackInsights(), insights.Insights)
}

func (suite *InsightServiceTestSuite) TestGetInsights_EmptyInsightListDegrades() {
	ctx := context.Background()
	userID := uuid.NewString()
	month := domain.YearMonth{Year: 2025, Month: time.March}

	suite.mockSummarizer.On("GetExpenseSummary", ctx, userID, month).Return(suite.summaryFixture(month), nil).Once()
	suite.mockBudgets.On("GetBudgetByMonth", ctx, userID, month).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProvider.On("Generate", ctx, mock.AnythingOfType("string")).Return(`{"insights": [], "recommendations": [], "assessment": "n/a"}`, nil).Once()

	insights, err := suite.service.GetInsights(ctx, userID, month)

	suite.Require().NoError(err)
	suite.Equal(domain.InsightSourceFallback, insights.Source)
}

func (suite *InsightServiceTestSuite) TestGetInsights_SummaryErrorPropagates() {
	ctx := context.Background()
	userID := uuid.NewString()
	month := domain.YearMonth{Year: 2025, Month: time.March}
	expectedErr := assert.AnError

	suite.mockSummarizer.On("GetExpenseSummary", ctx, userID, month).Return(nil, expectedErr).Once()

	insights, err := suite.service.GetInsights(ctx, userID, month)

	suite.Require().Error(err)
	suite.Nil(insights)
	suite.ErrorIs(err, expectedErr)
	suite.mockProvider.AssertNotCalled(suite.T(), "Generate")
}

func (suite *InsightServiceTestSuite) TestGetInsights_BudgetStorageErrorPropagates() {
	ctx := context.Background()
	userID := uuid.NewString()
	month := domain.YearMonth{Year: 2025, Month: time.March}
	expectedErr := assert.AnError

	suite.mockSummarizer.On("GetExpenseSummary", ctx, userID, month).Return(suite.summaryFixture(month), nil).Once()
	suite.mockBudgets.On("GetBudgetByMonth", ctx, userID, month).Return(nil, expectedErr).Once()

	insights, err := suite.service.GetInsights(ctx, userID, month)

	suite.Require().Error(err)
	suite.Nil(insights)
	suite.ErrorIs(err, expectedErr)
	suite.mockProvider.AssertNotCalled(suite.T(), "Generate")
}

func (suite *InsightServiceTestSuite) TestGetInsights_PromptCarriesBreakdown() {
	ctx := context.Background()
	userID := uuid.NewString()
	month := domain.YearMonth{Year: 2025, Month: time.March}

	suite.mockSummarizer.On("GetExpenseSummary", ctx, userID, month).Return(suite.summaryFixture(month), nil).Once()
	suite.mockBudgets.On("GetBudgetByMonth", ctx, userID, month).Return(nil, apperrors.ErrNotFound).Once()

	var capturedPrompt string
	suite.mockProvider.On("Generate", ctx, mock.MatchedBy(func(prompt string) bool {
		capturedPrompt = prompt
		return true
	})).Return(`{"insights": ["ok"], "recommendations": [], "assessment": "fine"}`, nil).Once()

	_, err := suite.service.GetInsights(ctx, userID, month)

	suite.Require().NoError(err)
	suite.Contains(capturedPrompt, "2025-03")
	suite.Contains(capturedPrompt, "- Food & Dining: $40.00 (40.0%)")
	suite.Contains(capturedPrompt, "- Transportation: $60.00 (60.0%)")
	suite.Contains(capturedPrompt, "Total Spent: $100.00")
}

func TestInsightServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InsightServiceTestSuite))
}
