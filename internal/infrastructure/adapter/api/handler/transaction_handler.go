package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/dto"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/middleware"
)

// TransactionHandler handles transaction history and message threads
type TransactionHandler struct {
	transactionService usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactionService usecase.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// History handles GET /api/transactions/history/:userId
//
//	@Summary	Transactions sent or received by the caller, newest first
//	@Tags		transactions
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		userId	path		string	true	"User ID"
//	@Success	200		{array}		dto.TransactionResponse
//	@Failure	403		{object}	dto.ErrorResponse
//	@Router		/transactions/history/{userId} [get]
func (h *TransactionHandler) History(c *gin.Context) {
	txns, err := h.transactionService.History(c.Request.Context(), middleware.CallerID(c), c.Param("userId"))
	if err != nil {
		middleware.RespondWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionList(txns))
}

// Get handles GET /api/transactions/:id
//
//	@Summary	One transaction the caller took part in
//	@Tags		transactions
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		id	path		string	true	"Transaction ID"
//	@Success	200	{object}	dto.TransactionResponse
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	txn, err := h.transactionService.Get(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		middleware.RespondWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// AddMessage handles POST /api/transactions/message/:id
//
//	@Summary	Append a message to a transaction
//	@Tags		transactions
//	@Accept		json
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		id		path		string					true	"Transaction ID"
//	@Param		body	body		dto.AddMessageRequest	true	"Message"
//	@Success	200		{object}	dto.TransactionResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	403		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/transactions/message/{id} [post]
func (h *TransactionHandler) AddMessage(c *gin.Context) {
	var req dto.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithBindError(c, err)
		return
	}

	txn, err := h.transactionService.AddMessage(c.Request.Context(), middleware.CallerID(c), c.Param("id"), req.SenderID, req.Message)
	if err != nil {
		middleware.RespondWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}
