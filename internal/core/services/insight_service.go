package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wealthfin/finance_dashboard_app/internal/apperrors"
	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
	portssvc "github.com/wealthfin/finance_dashboard_app/internal/core/ports/services"
	"github.com/wealthfin/finance_dashboard_app/internal/utils"
)

// InsightService synthesizes narrative insights for a user's month. It either
// returns the full AI-derived result or degrades to the complete fallback
// set; provider failures never reach the caller as errors.
type InsightService struct {
	BaseService
	summarizer portssvc.ExpenseSummarizer
	budgets    portssvc.BudgetReaderSvc
	provider   portssvc.NarrativeProvider
}

// NewInsightService creates a new InsightService.
func NewInsightService(summarizer portssvc.ExpenseSummarizer, budgets portssvc.BudgetReaderSvc, provider portssvc.NarrativeProvider) *InsightService {
	return &InsightService{
		summarizer: summarizer,
		budgets:    budgets,
		provider:   provider,
	}
}

// Ensure InsightService implements the service interface.
var _ portssvc.InsightSvc = (*InsightService)(nil)

// providerReply is the structured payload expected inside the narrative
// provider's raw response text.
type providerReply struct {
	Insights        []string                `json:"insights"`
	Recommendations []domain.Recommendation `json:"recommendations"`
	Assessment      string                  `json:"assessment"`
}

// GetInsights builds the month's expense summary, attempts AI synthesis and
// degrades to canned insights on any provider failure. Only storage errors
// from the aggregation step propagate to the caller.
func (s *InsightService) GetInsights(ctx context.Context, userID string, month domain.YearMonth) (*domain.FinancialInsights, error) {
	summary, err := s.summarizer.GetExpenseSummary(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	budgetAmount := decimal.Zero
	budget, err := s.budgets.GetBudgetByMonth(ctx, userID, month)
	switch {
	case err == nil:
		budgetAmount = budget.Amount
	case errors.Is(err, apperrors.ErrNotFound):
		// No budget set for the month; utilization stays zero.
	default:
		return nil, err
	}
	summary.ApplyBudget(budgetAmount)

	result := &domain.FinancialInsights{
		UserID:  userID,
		Month:   month,
		Summary: buildSummaryText(summary),
	}

	prompt := buildAnalysisPrompt(month, summary)
	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		s.LogWarn(ctx, "Narrative provider call failed, serving fallback insights",
			slog.String("user_id", userID),
			slog.String("month", month.String()),
			slog.String("error", err.Error()))
		return degrade(result), nil
	}

	reply, err := parseProviderReply(raw)
	if err != nil {
		s.LogWarn(ctx, "Narrative provider reply unparseable, serving fallback insights",
			slog.String("user_id", userID),
			slog.String("month", month.String()),
			slog.String("error", err.Error()))
		return degrade(result), nil
	}

	result.Insights = reply.Insights
	result.Recommendations = reply.Recommendations
	result.Source = domain.InsightSourceAI
	s.LogInfo(ctx, "AI insights generated",
		slog.String("user_id", userID),
		slog.String("month", month.String()),
		slog.Int("insight_count", len(result.Insights)))
	return result, nil
}

// degrade fills the result with the fixed fallback content. The summary was
// already templated from the computed expense summary; no second provider
// call happens here.
func degrade(result *domain.FinancialInsights) *domain.FinancialInsights {
	result.Insights = domain.FallbackInsights()
	result.Recommendations = nil
	result.Source = domain.InsightSourceFallback
	return result
}

// parseProviderReply extracts the structured insight payload from the raw
// reply text, tolerating markdown code fences around the JSON.
func parseProviderReply(raw string) (*providerReply, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var reply providerReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	if len(reply.Insights) == 0 {
		return nil, fmt.Errorf("%w: reply contains no insights", apperrors.ErrUpstreamUnavailable)
	}
	return &reply, nil
}

// buildSummaryText renders the one-sentence summary served in both the AI
// and fallback paths.
func buildSummaryText(summary *domain.ExpenseSummary) string {
	return fmt.Sprintf("Your financial summary for this month shows a net flow of $%s. "+
		"You spent $%s across %d categories, with your highest expense being in the top category. "+
		"Your budget utilization is %s%%.",
		utils.FormatAmount(summary.NetFlow),
		utils.FormatAmount(summary.TotalSpent),
		len(summary.CategoryBreakdown),
		utils.FormatPercentage(summary.BudgetUtilizationPercentage))
}

// buildAnalysisPrompt renders the analysis request sent to the narrative
// provider.
func buildAnalysisPrompt(month domain.YearMonth, summary *domain.ExpenseSummary) string {
	return fmt.Sprintf(`Analyze this personal finance data for %s and provide actionable insights:

Total Spent: $%s
Total Income: $%s
Net Flow: $%s
Budget: $%s

Category Breakdown:
%s

Please provide:
1. 3-5 specific insights about spending patterns
2. 2-3 actionable recommendations
3. Overall financial health assessment

Format the response as JSON with keys: insights (array), recommendations (array), assessment (string)`,
		month.String(),
		utils.FormatAmount(summary.TotalSpent),
		utils.FormatAmount(summary.TotalIncome),
		utils.FormatAmount(summary.NetFlow),
		utils.FormatAmount(summary.BudgetAmount),
		formatCategoryBreakdown(summary.CategoryBreakdown))
}

func formatCategoryBreakdown(breakdown []domain.CategoryBreakdown) string {
	if len(breakdown) == 0 {
		return "No expense data available"
	}
	var sb strings.Builder
	for _, cb := range breakdown {
		fmt.Fprintf(&sb, "- %s: $%s (%s%%)\n", cb.Category, utils.FormatAmount(cb.Amount), utils.FormatPercentage(cb.Percentage))
	}
	return sb.String()
}
