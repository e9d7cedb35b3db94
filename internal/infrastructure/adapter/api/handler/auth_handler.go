package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/dto"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles registration, login and the current-user profile
type AuthHandler struct {
	auth   usecase.AuthUseCase
	logger coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(auth usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Register handles POST /api/auth/register
//
//	@Summary	Open an account
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.RegisterRequest	true	"New account"
//	@Success	201		{object}	dto.AuthResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithBindError(c, err)
		return
	}

	result, err := h.auth.Register(c.Request.Context(), usecase.RegisterRequest{
		Name:     req.Name,
		UpiID:    req.UpiID,
		Phone:    req.PhoneValue(),
		Password: req.Password,
	})
	if err != nil {
		middleware.RespondWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: result.Token,
		User:  dto.NewUserProfile(result.User),
		Msg:   "Registration successful!",
	})
}

// Login handles POST /api/auth/login
//
//	@Summary	Sign in with a UPI ID or phone number
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.LoginRequest	true	"Credentials"
//	@Success	200		{object}	dto.AuthResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithBindError(c, err)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.LoginIdentifier(), req.Password)
	if err != nil {
		middleware.RespondWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: result.Token,
		User:  dto.NewUserProfile(result.User),
		Msg:   "Login successful!",
	})
}

// Me handles GET /api/auth
//
//	@Summary	Current user
//	@Tags		auth
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Success	200	{object}	dto.CurrentUserResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/auth [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.Profile(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		middleware.RespondWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCurrentUserResponse(user))
}
