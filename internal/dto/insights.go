package dto

import (
	"github.com/shopspring/decimal"
	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
)

// CategoryBreakdownResponse is one category row of an expense summary.
type CategoryBreakdownResponse struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
	Color      string          `json:"color"`
}

// ExpenseSummaryResponse is the monthly summary returned to the client.
type ExpenseSummaryResponse struct {
	Month                       string                      `json:"month"`
	TotalSpent                  decimal.Decimal             `json:"totalSpent"`
	TotalIncome                 decimal.Decimal             `json:"totalIncome"`
	NetFlow                     decimal.Decimal             `json:"netFlow"`
	BudgetAmount                decimal.Decimal             `json:"budgetAmount"`
	RemainingBudget             decimal.Decimal             `json:"remainingBudget"`
	BudgetUtilizationPercentage float64                     `json:"budgetUtilizationPercentage"`
	CategoryBreakdown           []CategoryBreakdownResponse `json:"categoryBreakdown"`
}

// ToExpenseSummaryResponse converts a domain.ExpenseSummary to a response DTO.
func ToExpenseSummaryResponse(s *domain.ExpenseSummary) ExpenseSummaryResponse {
	breakdown := make([]CategoryBreakdownResponse, len(s.CategoryBreakdown))
	for i, cb := range s.CategoryBreakdown {
		breakdown[i] = CategoryBreakdownResponse{
			Category:   cb.Category,
			Amount:     cb.Amount,
			Percentage: cb.Percentage,
			Color:      cb.Color,
		}
	}
	return ExpenseSummaryResponse{
		Month:                       s.Month.String(),
		TotalSpent:                  s.TotalSpent,
		TotalIncome:                 s.TotalIncome,
		NetFlow:                     s.NetFlow,
		BudgetAmount:                s.BudgetAmount,
		RemainingBudget:             s.RemainingBudget,
		BudgetUtilizationPercentage: s.BudgetUtilizationPercentage,
		CategoryBreakdown:           breakdown,
	}
}

// RecommendationResponse is one actionable suggestion in an insights reply.
type RecommendationResponse struct {
	Category         string `json:"category"`
	Suggestion       string `json:"suggestion"`
	Impact           string `json:"impact"`
	PotentialSavings string `json:"potentialSavings"`
}

// InsightsResponse is the insights payload returned to the client. Requests
// always succeed structurally; Source reports whether the content came from
// the narrative provider or the fallback set.
type InsightsResponse struct {
	UserID          string                   `json:"userID"`
	Month           string                   `json:"month"`
	Insights        []string                 `json:"insights"`
	Summary         string                   `json:"summary"`
	Recommendations []RecommendationResponse `json:"recommendations,omitempty"`
	Source          domain.InsightSource     `json:"source"`
}

// ToInsightsResponse converts domain.FinancialInsights to a response DTO.
func ToInsightsResponse(fi *domain.FinancialInsights) InsightsResponse {
	recs := make([]RecommendationResponse, len(fi.Recommendations))
	for i, r := range fi.Recommendations {
		recs[i] = RecommendationResponse{
			Category:         r.Category,
			Suggestion:       r.Suggestion,
			Impact:           r.Impact,
			PotentialSavings: r.PotentialSavings,
		}
	}
	return InsightsResponse{
		UserID:          fi.UserID,
		Month:           fi.Month.String(),
		Insights:        fi.Insights,
		Summary:         fi.Summary,
		Recommendations: recs,
		Source:          fi.Source,
	}
}
