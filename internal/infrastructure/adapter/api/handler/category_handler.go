package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/dto"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/middleware"
)

// CategoryHandler handles a user's spending categories
type CategoryHandler struct {
	categories usecase.CategoryUseCase
	logger     coreport.Logger
}

// NewCategoryHandler creates a new category handler instance
func NewCategoryHandler(categories usecase.CategoryUseCase, logger coreport.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, logger: logger}
}

// List handles GET /api/categories/:userId
//
//	@Summary	Categories of the caller
//	@Tags		categories
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		userId	path	string	true	"User ID"
//	@Success	200		{array}	dto.CategoryResponse
//	@Router		/categories/{userId} [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context(), middleware.CallerID(c), c.Param("userId"))
	if err != nil {
		middleware.RespondWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryList(categories))
}

// Add handles POST /api/categories/:userId
//
//	@Summary	Create a custom category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		userId	path		string					true	"User ID"
//	@Param		body	body		dto.AddCategoryRequest	true	"Category"
//	@Success	201		{array}		dto.CategoryResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/categories/{userId} [post]
func (h *CategoryHandler) Add(c *gin.Context) {
	var req dto.AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithBindError(c, err)
		return
	}

	categories, err := h.categories.Add(c.Request.Context(), middleware.CallerID(c), c.Param("userId"), req.CategoryName)
	if err != nil {
		middleware.RespondWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCategoryList(categories))
}

// Delete handles DELETE /api/categories/:userId/:categoryName
//
//	@Summary	Delete a custom category
//	@Tags		categories
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		userId			path		string	true	"User ID"
//	@Param		categoryName	path		string	true	"Category name"
//	@Success	200				{array}		dto.CategoryResponse
//	@Failure	400				{object}	dto.ErrorResponse
//	@Failure	404				{object}	dto.ErrorResponse
//	@Router		/categories/{userId}/{categoryName} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	categories, err := h.categories.Delete(c.Request.Context(), middleware.CallerID(c), c.Param("userId"), c.Param("categoryName"))
	if err != nil {
		middleware.RespondWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryList(categories))
}

// SetLimit handles PUT /api/categories/:userId/:categoryName/set-limit
//
//	@Summary	Set the soft spending limit of a category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		userId			path		string				true	"User ID"
//	@Param		categoryName	path		string				true	"Category name"
//	@Param		body			body		dto.SetLimitRequest	true	"Limit, 0 clears it"
//	@Success	200				{array}		dto.CategoryResponse
//	@Failure	400				{object}	dto.ErrorResponse
//	@Failure	404				{object}	dto.ErrorResponse
//	@Router		/categories/{userId}/{categoryName}/set-limit [put]
func (h *CategoryHandler) SetLimit(c *gin.Context) {
	var req dto.SetLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithBindError(c, err)
		return
	}

	categories, err := h.categories.SetLimit(c.Request.Context(), middleware.CallerID(c), c.Param("userId"), c.Param("categoryName"), req.Limit.String())
	if err != nil {
		middleware.RespondWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryList(categories))
}
