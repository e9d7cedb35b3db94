package usecase

import (
	"context"

	"github.com/paywise/paywise-api/internal/domain/entity"
	"github.com/paywise/paywise-api/internal/domain/port/core"
)

// RegisterRequest carries the fields needed to open an account
type RegisterRequest struct {
	Name     string
	UpiID    string
	Phone    string
	Password string
}

// AuthResult is returned by a successful register or login
type AuthResult struct {
	Token string
	User  *entity.User
}

// AuthUseCase defines account registration, login and token verification
type AuthUseCase interface {
	// Register creates a user with the predefined categories and the opening balance
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)

	// Login checks the credentials of a UPI ID or phone number and issues a token
	Login(ctx context.Context, identifier, password string) (*AuthResult, error)

	// Profile returns the authenticated user's own account
	Profile(ctx context.Context, userID string) (*entity.User, error)

	// Authenticate verifies an access token and returns the caller identity
	Authenticate(token string) (*core.TokenClaims, error)
}
