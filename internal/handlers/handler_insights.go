package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wealthfin/finance_dashboard_app/internal/core/ports/services"
	"github.com/wealthfin/finance_dashboard_app/internal/dto"
	"github.com/wealthfin/finance_dashboard_app/internal/middleware"
)

// insightsHandler handles HTTP requests for financial insights.
type insightsHandler struct {
	insightService portssvc.InsightSvc
}

func newInsightsHandler(is portssvc.InsightSvc) *insightsHandler {
	return &insightsHandler{insightService: is}
}

// registerInsightsRoutes registers the insights route. The extra middleware
// lets the caller rate limit this route independently of the rest of the API,
// since each request may fan out to the narrative provider.
func registerInsightsRoutes(rg *gin.RouterGroup, insightService portssvc.InsightSvc, mw ...gin.HandlerFunc) {
	h := newInsightsHandler(insightService)

	insights := rg.Group("/insights", mw...)
	{
		insights.GET("", h.getInsights)
	}
}

func (h *insightsHandler) getInsights(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	month, err := resolveMonthParam(c.Query("month"))
	if err != nil {
		logger.Warn("Invalid month parameter", slog.String("month", c.Query("month")))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	insights, err := h.insightService.GetInsights(c.Request.Context(), userID, month)
	if err != nil {
		logger.Error("Failed to build insights", slog.String("error", err.Error()), slog.String("month", month.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build insights"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInsightsResponse(insights))
}
