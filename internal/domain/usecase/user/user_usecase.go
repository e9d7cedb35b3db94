package user

import (
	"context"

	"github.com/paywise/paywise-api/internal/domain/entity"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/persistence"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
)

// UserUseCase implements the user business logic
type UserUseCase struct {
	userRepo persistence.UserRepository
	logger   coreport.Logger
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(userRepo persistence.UserRepository, logger coreport.Logger) usecase.UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetBalance returns the balance and categories of userID
func (u *UserUseCase) GetBalance(ctx context.Context, callerID, userID string) (*entity.BalanceSummary, error) {
	if err := entity.EnsureOwner(callerID, userID); err != nil {
		u.logger.Warn("Balance requested for another user", map[string]any{
			"caller_id": callerID,
			"user_id":   userID,
		})
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := entity.UserToBalanceSummary(user)

	u.logger.Debug("User balance retrieved", map[string]any{
		"user_id": userID,
		"balance": user.GetBalance(),
	})

	return &summary, nil
}
