package usecase

import (
	"context"

	"github.com/paywise/paywise-api/internal/domain/entity"
)

// UserUseCase defines read operations on a user's account
type UserUseCase interface {
	// GetBalance returns the balance and categories of userID.
	// The caller may only read their own account.
	GetBalance(ctx context.Context, callerID, userID string) (*entity.BalanceSummary, error)
}
