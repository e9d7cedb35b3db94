package persistence

import (
	"context"

	"github.com/paywise/paywise-api/internal/domain/entity"
)

// UserRepository defines the methods used to load and store users with their categories
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByUpiID retrieves a user by UPI ID (exact match)
	//
	// Possible errors:
	// - ErrUserNotFound: If no user holds the UPI ID
	// - ErrDatabaseConnection: If database connection fails
	GetByUpiID(ctx context.Context, upiID string) (*entity.User, error)

	// GetByPhone retrieves a user by phone number (exact match)
	//
	// Possible errors:
	// - ErrUserNotFound: If no user holds the phone number
	// - ErrDatabaseConnection: If database connection fails
	GetByPhone(ctx context.Context, phone string) (*entity.User, error)

	// GetForUpdate loads the given users and locks their rows until the surrounding
	// unit of work ends. Rows are locked in ascending id order.
	//
	// Possible errors:
	// - ErrUserNotFound: If any of the users doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetForUpdate(ctx context.Context, ids []string) (map[string]*entity.User, error)

	// ListIDs returns the ids of every user
	ListIDs(ctx context.Context) ([]string, error)

	// Create stores a new user with its categories
	//
	// Possible errors:
	// - ErrDuplicateUser: If the UPI ID or phone is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Update stores the user's balance and replaces its categories
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, user *entity.User) error
}
