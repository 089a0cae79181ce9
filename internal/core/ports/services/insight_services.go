package services

import (
	"context"

	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
)

// NarrativeProvider generates narrative text from a prompt. Implementations
// are expected to bound the call with a timeout; any transport or status
// failure surfaces as an error for the insight service to absorb.
type NarrativeProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// InsightSvc produces monthly financial insights. Provider failures never
// surface to the caller; the worst outcome is fallback content.
type InsightSvc interface {
	GetInsights(ctx context.Context, userID string, month domain.YearMonth) (*domain.FinancialInsights, error)
}
