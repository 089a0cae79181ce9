package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/wealthfin/finance_dashboard_app/internal/core/domain"
	portssvc "github.com/wealthfin/finance_dashboard_app/internal/core/ports/services"
	"github.com/wealthfin/finance_dashboard_app/internal/middleware"
	"github.com/wealthfin/finance_dashboard_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// insightsLimiter is applied only to the insights route.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	insightsLimiter gin.HandlerFunc,
) {
	registerCustomValidators()

	// Add health check route
	registerHomeRoutes(r)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, insightsLimiter)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	insightsLimiter gin.HandlerFunc,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerAccountRoutes(v1, services.Account)
	registerTransactionRoutes(v1, services.Transaction)
	registerBudgetRoutes(v1, services.Budget)
	if insightsLimiter != nil {
		registerInsightsRoutes(v1, services.Insight, insightsLimiter)
	} else {
		registerInsightsRoutes(v1, services.Insight)
	}
}

// registerCustomValidators wires request-binding validators that gin does not
// ship with, currently only the "yearmonth" format check.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseYearMonth(fl.Field().String())
		return err == nil
	})
}
