package category

import (
	"context"
	"fmt"

	"github.com/paywise/paywise-api/internal/domain/entity"
	errs "github.com/paywise/paywise-api/internal/domain/error"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/persistence"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
)

// Service manages a user's spending categories.
// Every change runs on a locked copy of the user so it cannot race a transfer.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new category service
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{uow: uow, timeProvider: timeProvider, logger: logger}
}

var _ usecase.CategoryUseCase = (*Service)(nil)

// List returns every category of the user
func (s *Service) List(ctx context.Context, callerID, userID string) ([]entity.Category, error) {
	if err := entity.EnsureOwner(callerID, userID); err != nil {
		return nil, err
	}
	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Categories, nil
}

// Add creates a custom category and returns the full list
func (s *Service) Add(ctx context.Context, callerID, userID, name string) ([]entity.Category, error) {
	return s.mutate(ctx, callerID, userID, "add", name, func(u *entity.User) error {
		return u.AddCustomCategory(name, s.timeProvider)
	})
}

// Delete removes a custom category and returns the remaining list
func (s *Service) Delete(ctx context.Context, callerID, userID, name string) ([]entity.Category, error) {
	return s.mutate(ctx, callerID, userID, "delete", name, func(u *entity.User) error {
		return u.DeleteCategory(name, s.timeProvider)
	})
}

// SetLimit sets the soft spending limit of a category and returns the full list.
// A zero limit removes the cap.
func (s *Service) SetLimit(ctx context.Context, callerID, userID, name, limit string) ([]entity.Category, error) {
	if err := entity.EnsureOwner(callerID, userID); err != nil {
		return nil, err
	}
	cents, err := entity.ParseAmount(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidLimit, err)
	}
	return s.mutate(ctx, callerID, userID, "set_limit", name, func(u *entity.User) error {
		return u.SetCategoryLimit(name, cents, s.timeProvider)
	})
}

func (s *Service) mutate(
	ctx context.Context,
	callerID, userID, action, name string,
	apply func(*entity.User) error,
) (categories []entity.Category, err error) {
	if err := entity.EnsureOwner(callerID, userID); err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to roll back category change", map[string]any{
					"user_id": userID,
					"error":   rbErr.Error(),
				})
			}
		}
	}()

	users := s.uow.GetUserRepository(txCtx)
	locked, err := users.GetForUpdate(txCtx, []string{userID})
	if err != nil {
		return nil, err
	}
	user, ok := locked[userID]
	if !ok {
		return nil, errs.ErrUserNotFound
	}

	if err = apply(user); err != nil {
		return nil, err
	}
	if err = users.Update(txCtx, user); err != nil {
		return nil, err
	}
	if err = s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Category updated", map[string]any{
		"user_id":  userID,
		"action":   action,
		"category": name,
	})

	return user.Categories, nil
}
