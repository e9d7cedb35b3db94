package usecase

import (
	"context"

	"github.com/paywise/paywise-api/internal/domain/entity"
)

// TransferRequest represents an incoming money transfer
type TransferRequest struct {
	SenderID           string
	ReceiverIdentifier string // UPI ID when it contains '@', phone otherwise
	Amount             string // decimal amount with at most 2 decimal places
	Password           string
	Category           string
}

// TransferResult describes a completed transfer and the advisory limit check
type TransferResult struct {
	Transaction *entity.Transaction
	Category    string
	Limit       entity.LimitCheck
}

// TransferUseCase moves money between users and tracks category spending
type TransferUseCase interface {
	// Send validates and executes a transfer on behalf of callerID
	Send(ctx context.Context, callerID string, req TransferRequest) (*TransferResult, error)
}
