package usecase

import (
	"context"

	"github.com/paywise/paywise-api/internal/domain/entity"
)

// CategoryUseCase manages a user's spending categories
type CategoryUseCase interface {
	// List returns every category of the user
	List(ctx context.Context, callerID, userID string) ([]entity.Category, error)

	// Add creates a custom category and returns the full list
	Add(ctx context.Context, callerID, userID, name string) ([]entity.Category, error)

	// Delete removes a custom category and returns the remaining list
	Delete(ctx context.Context, callerID, userID, name string) ([]entity.Category, error)

	// SetLimit sets the soft spending limit of a category and returns the full list
	SetLimit(ctx context.Context, callerID, userID, name, limit string) ([]entity.Category, error)
}
