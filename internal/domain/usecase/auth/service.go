package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/paywise/paywise-api/internal/domain/entity"
	errs "github.com/paywise/paywise-api/internal/domain/error"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/persistence"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
)

// MinPasswordLength is the shortest password accepted at registration
const MinPasswordLength = 4

// Service handles registration, login and token verification
type Service struct {
	users          persistence.UserRepository
	hasher         coreport.PasswordHasher
	tokens         coreport.TokenIssuer
	ids            coreport.IDGenerator
	publisher      coreport.EventPublisher
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
	openingBalance int64
}

// NewService creates a new auth service. openingBalance is in cents.
func NewService(
	users persistence.UserRepository,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenIssuer,
	ids coreport.IDGenerator,
	publisher coreport.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	openingBalance int64,
) *Service {
	return &Service{
		users:          users,
		hasher:         hasher,
		tokens:         tokens,
		ids:            ids,
		publisher:      publisher,
		timeProvider:   timeProvider,
		logger:         logger,
		openingBalance: openingBalance,
	}
}

var _ usecase.AuthUseCase = (*Service)(nil)

// Register creates a user with the predefined categories and the opening balance
func (s *Service) Register(ctx context.Context, req usecase.RegisterRequest) (*usecase.AuthResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.UpiID = strings.TrimSpace(req.UpiID)
	req.Phone = strings.TrimSpace(req.Phone)

	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	if err := s.ensureAvailable(ctx, req.UpiID, req.Phone); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := entity.NewUser(s.ids.NewID(), req.Name, req.UpiID, req.Phone, hash, s.openingBalance, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", map[string]any{
			"upi_id": user.UpiID,
			"error":  err.Error(),
		})
		return nil, err
	}

	token, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, coreport.UserEventsStream, coreport.EventUserRegistered, map[string]any{
		"userId": user.ID,
		"upiId":  user.UpiID,
	}); err != nil {
		s.logger.Warn("Failed to publish registration event", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"upi_id":  user.UpiID,
	})

	return &usecase.AuthResult{Token: token, User: user}, nil
}

// Login checks the credentials of a UPI ID or phone number and issues a token.
// Identifiers containing '@' are UPI IDs. Unknown users and wrong passwords yield the same error.
func (s *Service) Login(ctx context.Context, identifier, password string) (*usecase.AuthResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, fmt.Errorf("%w: identifier and password are required", errs.ErrInvalidRequest)
	}

	user, err := s.lookup(ctx, identifier)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			s.logger.Warn("Login for unknown account", map[string]any{"identifier": identifier})
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		s.logger.Warn("Login with wrong password", map[string]any{"user_id": user.ID})
		return nil, errs.ErrInvalidCredentials
	}

	token, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthResult{Token: token, User: user}, nil
}

// Profile returns the authenticated user's own account
func (s *Service) Profile(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, errs.ErrMissingToken
	}
	return s.users.GetByID(ctx, userID)
}

// Authenticate verifies an access token and returns the caller identity
func (s *Service) Authenticate(token string) (*coreport.TokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errs.ErrMissingToken
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidToken) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidToken, err)
	}
	return claims, nil
}

func (s *Service) issue(user *entity.User) (string, error) {
	token, err := s.tokens.Issue(coreport.TokenClaims{
		UserID: user.ID,
		Name:   user.Name,
		UpiID:  user.UpiID,
		Phone:  user.Phone,
	})
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

func (s *Service) lookup(ctx context.Context, identifier string) (*entity.User, error) {
	if entity.IsUpiID(identifier) {
		return s.users.GetByUpiID(ctx, identifier)
	}
	return s.users.GetByPhone(ctx, identifier)
}

func (s *Service) ensureAvailable(ctx context.Context, upiID, phone string) error {
	if _, err := s.users.GetByUpiID(ctx, upiID); err == nil {
		return errs.ErrDuplicateUpiID
	} else if !errs.IsUserNotFoundError(err) {
		return err
	}

	if _, err := s.users.GetByPhone(ctx, phone); err == nil {
		return errs.ErrDuplicatePhone
	} else if !errs.IsUserNotFoundError(err) {
		return err
	}
	return nil
}

func validateRegistration(req usecase.RegisterRequest) error {
	switch {
	case req.Name == "" || req.UpiID == "" || req.Phone == "" || req.Password == "":
		return fmt.Errorf("%w: name, upiId, phone and password are required", errs.ErrInvalidRequest)
	case !entity.IsUpiID(req.UpiID):
		return fmt.Errorf("%w: upiId must contain '@'", errs.ErrInvalidRequest)
	case utf8.RuneCountInString(req.Name) > entity.MaxUserNameLength,
		utf8.RuneCountInString(req.UpiID) > entity.MaxUpiIDLength,
		utf8.RuneCountInString(req.Phone) > entity.MaxPhoneLength:
		return fmt.Errorf("%w: name, upiId or phone is too long", errs.ErrInvalidRequest)
	case len(req.Password) < MinPasswordLength:
		return fmt.Errorf("%w: password must be at least %d characters", errs.ErrInvalidRequest, MinPasswordLength)
	}
	return nil
}
