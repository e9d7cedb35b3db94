package database

import (
	"context"
	"errors"
	"fmt"

	domainErr "github.com/paywise/paywise-api/internal/domain/error"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeUser represents the user entity
	EntityTypeUser EntityType = "user"
	// EntityTypeTransaction represents the transaction entity
	EntityTypeTransaction EntityType = "transaction"
)

// ErrorMapper maps database errors raised outside the repositories
// (begin, commit, rollback) to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s operation timed out: %v", domainErr.ErrDatabaseConnection, operation, err)
	}

	switch m.classifier.Classify(err) {
	case repository.DuplicateKeyError:
		return domainErr.ErrDuplicateUser
	case repository.ConstraintError, repository.ForeignKeyError:
		return fmt.Errorf("%w: %s", domainErr.ErrConstraintViolation, err.Error())
	case repository.LockError:
		return fmt.Errorf("%w: %s aborted by a concurrent update: %v", domainErr.ErrDatabaseConnection, operation, err)
	default:
		return fmt.Errorf("%w: %s failed: %v", domainErr.ErrDatabaseConnection, operation, err)
	}
}

// MapEntityNotFoundError maps record-not-found to the entity's not found error
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeUser:
			return domainErr.ErrUserNotFound
		case EntityTypeTransaction:
			return domainErr.ErrTransactionNotFound
		}
	}

	return m.MapError(err, string(entityType))
}
