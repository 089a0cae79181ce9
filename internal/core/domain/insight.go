package domain

// InsightSource distinguishes AI-derived insight content from the canned
// fallback produced when the narrative provider is unavailable.
type InsightSource string

const (
	InsightSourceAI       InsightSource = "AI"
	InsightSourceFallback InsightSource = "FALLBACK"
)

// Recommendation is a single actionable suggestion from the narrative provider.
type Recommendation struct {
	Category         string `json:"category"`
	Suggestion       string `json:"suggestion"`
	Impact           string `json:"impact"`
	PotentialSavings string `json:"potentialSavings"`
}

// FinancialInsights is the result of an insight request. It always carries a
// complete insight list and summary: either fully AI-derived or fully the
// fallback set, never a mixture.
type FinancialInsights struct {
	UserID          string           `json:"userID"`
	Month           YearMonth        `json:"month"`
	Insights        []string         `json:"insights"`
	Summary         string           `json:"summary"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Source          InsightSource    `json:"source"`
}

// FallbackInsights returns the fixed insight strings served whenever the
// narrative provider fails. The wording is contractual.
func FallbackInsights() []string {
	return []string{
		"Track your daily expenses to identify spending patterns",
		"Set up automatic savings to improve your financial health",
		"Review your budget regularly and adjust as needed",
	}
}
