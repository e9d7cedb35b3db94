package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/dto"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/middleware"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userService usecase.UserUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetBalance handles GET /api/balance/:id
//
//	@Summary	Balance and categories of the caller
//	@Tags		balance
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	dto.BalanceResponse
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/balance/{id} [get]
func (h *UserHandler) GetBalance(c *gin.Context) {
	summary, err := h.userService.GetBalance(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		middleware.RespondWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(summary))
}
