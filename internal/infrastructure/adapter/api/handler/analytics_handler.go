package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/dto"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/middleware"
)

// AnalyticsHandler serves the spending analysis screens
type AnalyticsHandler struct {
	analytics usecase.AnalyticsUseCase
	logger    coreport.Logger
}

// NewAnalyticsHandler creates a new analytics handler instance
func NewAnalyticsHandler(analytics usecase.AnalyticsUseCase, logger coreport.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, logger: logger}
}

// Analysis handles GET /api/analysis/:userId
//
//	@Summary	Categories with activity or a limit
//	@Tags		analytics
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		userId	path	string	true	"User ID"
//	@Success	200		{array}	dto.CategoryResponse
//	@Router		/analysis/{userId} [get]
func (h *AnalyticsHandler) Analysis(c *gin.Context) {
	categories, err := h.analytics.Analysis(c.Request.Context(), middleware.CallerID(c), c.Param("userId"))
	if err != nil {
		middleware.RespondWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryList(categories))
}

// MonthlySpending handles GET /api/analytics/:userId/monthly-spending
//
//	@Summary	Money sent per calendar month and category
//	@Tags		analytics
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		userId	path	string	true	"User ID"
//	@Success	200		{array}	dto.MonthlySpendingResponse
//	@Router		/analytics/{userId}/monthly-spending [get]
func (h *AnalyticsHandler) MonthlySpending(c *gin.Context) {
	months, err := h.analytics.MonthlySpending(c.Request.Context(), middleware.CallerID(c), c.Param("userId"))
	if err != nil {
		middleware.RespondWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMonthlySpendingList(months))
}
