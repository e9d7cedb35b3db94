package usecase

import (
	"context"

	"github.com/paywise/paywise-api/internal/domain/entity"
)

// TransactionUseCase defines read access to the ledger and message threads
type TransactionUseCase interface {
	// History returns every transaction userID sent or received, newest first
	History(ctx context.Context, callerID, userID string) ([]*entity.Transaction, error)

	// Get returns a single transaction the caller is a party to
	Get(ctx context.Context, callerID, transactionID string) (*entity.Transaction, error)

	// AddMessage appends a message from senderID to the transaction
	AddMessage(ctx context.Context, callerID, transactionID, senderID, text string) (*entity.Transaction, error)
}
