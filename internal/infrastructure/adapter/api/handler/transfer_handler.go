package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paywise/paywise-api/internal/domain/entity"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/dto"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/middleware"
)

// TransferHandler handles money transfers
type TransferHandler struct {
	transfers usecase.TransferUseCase
	logger    coreport.Logger
}

// NewTransferHandler creates a new transfer handler instance
func NewTransferHandler(transfers usecase.TransferUseCase, logger coreport.Logger) *TransferHandler {
	return &TransferHandler{transfers: transfers, logger: logger}
}

// Send handles POST /api/send
//
//	@Summary		Send money to a UPI ID or phone number
//	@Description	The limit fields report whether the category limit was crossed; the transfer is not blocked by it.
//	@Tags			transfers
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			body	body		dto.SendRequest	true	"Transfer"
//	@Success		200		{object}	dto.SendResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		403		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/send [post]
func (h *TransferHandler) Send(c *gin.Context) {
	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithBindError(c, err)
		return
	}

	result, err := h.transfers.Send(c.Request.Context(), middleware.CallerID(c), usecase.TransferRequest{
		SenderID:           req.SenderID,
		ReceiverIdentifier: req.ReceiverIdentifier,
		Amount:             req.Amount.String(),
		Password:           req.Password,
		Category:           req.Category,
	})
	if err != nil {
		middleware.RespondWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.SendResponse{
		Message:          "Transaction successful",
		Transaction:      dto.NewTransactionResponse(result.Transaction),
		Category:         result.Category,
		ExceedsLimit:     result.Limit.ExceedsLimit,
		ExceededCategory: result.Limit.ExceededCategory,
		LimitSet:         entity.AmountInCentsToString(result.Limit.LimitSet),
		SpentOnCategory:  entity.AmountInCentsToString(result.Limit.SpentOnCategory),
	})
}
