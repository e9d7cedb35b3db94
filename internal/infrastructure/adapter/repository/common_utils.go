package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ForeignKeyError   ErrorType = "foreign_key"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
	InvalidDataError  ErrorType = "invalid_data"
)

// Postgres SQLSTATE codes the classifier understands
const (
	sqlStateUniqueViolation      = "23505"
	sqlStateForeignKeyViolation  = "23503"
	sqlStateCheckViolation       = "23514"
	sqlStateNotNullViolation     = "23502"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateLockNotAvailable     = "55P03"
	sqlStateConnectionClassCode  = "08"
	sqlStateDataExceptionClass   = "22"
)

// ErrorClassifier provides methods to classify database errors.
// Postgres errors are classified by SQLSTATE; anything else falls back to message matching.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	if pgErr := asPgError(err); pgErr != nil {
		switch {
		case pgErr.Code == sqlStateUniqueViolation:
			return DuplicateKeyError
		case pgErr.Code == sqlStateForeignKeyViolation:
			return ForeignKeyError
		case pgErr.Code == sqlStateCheckViolation || pgErr.Code == sqlStateNotNullViolation:
			return ConstraintError
		case pgErr.Code == sqlStateSerializationFailure ||
			pgErr.Code == sqlStateDeadlockDetected ||
			pgErr.Code == sqlStateLockNotAvailable:
			return LockError
		case strings.HasPrefix(pgErr.Code, sqlStateConnectionClassCode):
			return ConnectionError
		case strings.HasPrefix(pgErr.Code, sqlStateDataExceptionClass):
			return InvalidDataError
		}
		return ""
	}

	if c.IsDuplicateKeyError(err) {
		return DuplicateKeyError
	}
	if c.IsLockError(err) {
		return LockError
	}
	if c.IsConnectionError(err) {
		return ConnectionError
	}
	if c.IsConstraintError(err) {
		return ConstraintError
	}

	return ""
}

// ConstraintName returns the violated constraint of a Postgres error, if any
func (c *ErrorClassifier) ConstraintName(err error) string {
	if pgErr := asPgError(err); pgErr != nil {
		return pgErr.ConstraintName
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr := asPgError(err); pgErr != nil {
		return pgErr.Code == sqlStateUniqueViolation
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "lock timeout") ||
		strings.Contains(msg, "could not serialize access")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "dial")
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "violates") ||
		strings.Contains(msg, "foreign key") ||
		strings.Contains(msg, "check constraint")
}

func asPgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}
