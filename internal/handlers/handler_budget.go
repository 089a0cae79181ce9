package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wealthfin/finance_dashboard_app/internal/apperrors"
	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
	portssvc "github.com/wealthfin/finance_dashboard_app/internal/core/ports/services"
	"github.com/wealthfin/finance_dashboard_app/internal/dto"
	"github.com/wealthfin/finance_dashboard_app/internal/middleware"
)

// budgetHandler handles HTTP requests related to monthly budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.setBudget)
		budgets.GET("", h.getBudgetByMonth)
		budgets.GET("/current", h.getCurrentBudget)
	}
}

func (h *budgetHandler) setBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.SetBudget(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting budget", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to set budget", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set budget"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

func (h *budgetHandler) getBudgetByMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	month, err := domain.ParseYearMonth(c.Query("month"))
	if err != nil {
		logger.Warn("Invalid month parameter", slog.String("month", c.Query("month")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be in YYYY-MM format"})
		return
	}

	budget, err := h.budgetService.GetBudgetByMonth(c.Request.Context(), userID, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No budget set for " + month.String()})
			return
		}
		logger.Error("Failed to get budget", slog.String("error", err.Error()), slog.String("month", month.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve budget"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

func (h *budgetHandler) getCurrentBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.GetCurrentBudget(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No budget set"})
			return
		}
		logger.Error("Failed to get current budget", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve budget"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}
