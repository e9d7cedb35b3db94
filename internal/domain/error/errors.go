package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeSelfTransfer        = 4004
	CodeConstraintViolation = 4005
	CodeAmountOverflow      = 4006
	CodeDuplicateUser       = 4007
	CodeInvalidCredentials  = 4008
	CodeCategoryExists      = 4009
	CodePredefinedCategory  = 4011
	CodeInvalidCategory     = 4012
	CodeInvalidLimit        = 4013
	CodeEmptyMessage        = 4014
	CodeUnauthorized        = 4010
	CodeForbidden           = 4030
	CodeIncorrectPassword   = 4031
	CodeUserNotFound        = 4040
	CodeReceiverNotFound    = 4041
	CodeTransactionNotFound = 4042
	CodeCategoryNotFound    = 4043

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientBalance is returned when the sender cannot cover the transfer
	ErrInsufficientBalance = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when an amount has a bad format
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrNonPositiveAmount is returned when a transfer amount is zero or negative
	ErrNonPositiveAmount = errors.New("transfer amount must be positive")

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidUserID is returned when a user ID is empty or malformed
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrSenderNotFound is returned when the sender of a transfer doesn't exist
	ErrSenderNotFound = fmt.Errorf("sender not found: %w", ErrUserNotFound)

	// ErrReceiverNotFound is returned when the receiver identifier resolves to no user
	ErrReceiverNotFound = errors.New("receiver not found")

	// ErrSelfTransfer is returned when sender and receiver are the same user
	ErrSelfTransfer = errors.New("cannot send money to yourself")

	// ErrIncorrectPassword is returned when a transfer is confirmed with a wrong password
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrInvalidCredentials is returned when login fails
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateUpiID is returned when registering an already taken UPI ID
	ErrDuplicateUpiID = errors.New("user with this UPI ID already exists")

	// ErrDuplicatePhone is returned when registering an already taken phone number
	ErrDuplicatePhone = errors.New("user with this phone number already exists")

	// ErrDuplicateUser is returned when a unique user field collides at the database level
	ErrDuplicateUser = errors.New("user already exists")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCategoryExists is returned when a category name is already used by the user
	ErrCategoryExists = errors.New("category with this name already exists")

	// ErrCategoryNotFound is returned when the user has no category with the given name
	ErrCategoryNotFound = errors.New("category not found")

	// ErrPredefinedCategory is returned when trying to delete a predefined category
	ErrPredefinedCategory = errors.New("cannot delete predefined categories")

	// ErrEmptyCategoryName is returned when a category name is blank
	ErrEmptyCategoryName = errors.New("category name cannot be empty")

	// ErrCategoryNameTooLong is returned when a category name exceeds the stored length
	ErrCategoryNameTooLong = errors.New("category name is too long")

	// ErrInvalidLimit is returned when a category limit is negative or malformed
	ErrInvalidLimit = errors.New("limit must be a non-negative number")

	// ErrEmptyMessage is returned when a transaction message is blank
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrForbidden is returned when the caller acts on another user's resources
	ErrForbidden = errors.New("not authorized")

	// ErrInvalidToken is returned when an access token cannot be verified
	ErrInvalidToken = errors.New("token is not valid")

	// ErrMissingToken is returned when no access token was presented
	ErrMissingToken = errors.New("no token, authorization denied")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrNonPositiveAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrSelfTransfer):
		return CodeSelfTransfer
	case errors.Is(err, ErrDuplicateUpiID),
		errors.Is(err, ErrDuplicatePhone),
		errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrCategoryExists):
		return CodeCategoryExists
	case errors.Is(err, ErrPredefinedCategory):
		return CodePredefinedCategory
	case errors.Is(err, ErrEmptyCategoryName), errors.Is(err, ErrCategoryNameTooLong):
		return CodeInvalidCategory
	case errors.Is(err, ErrInvalidLimit):
		return CodeInvalidLimit
	case errors.Is(err, ErrEmptyMessage):
		return CodeEmptyMessage
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrMissingToken):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrIncorrectPassword):
		return CodeIncorrectPassword
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrReceiverNotFound):
		return CodeReceiverNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrCategoryNotFound):
		return CodeCategoryNotFound
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status the API answers with
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrMissingToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrIncorrectPassword):
		return http.StatusForbidden
	case IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, ErrInsufficientBalance),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrNonPositiveAmount),
		errors.Is(err, ErrAmountOverflow),
		errors.Is(err, ErrInvalidUserID),
		errors.Is(err, ErrSelfTransfer),
		errors.Is(err, ErrDuplicateUpiID),
		errors.Is(err, ErrDuplicatePhone),
		errors.Is(err, ErrDuplicateUser),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrCategoryExists),
		errors.Is(err, ErrPredefinedCategory),
		errors.Is(err, ErrEmptyCategoryName),
		errors.Is(err, ErrCategoryNameTooLong),
		errors.Is(err, ErrInvalidLimit),
		errors.Is(err, ErrEmptyMessage),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrConstraintViolation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to show to API clients.
// Unknown and infrastructure errors are collapsed into a generic message.
func PublicMessage(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return ErrInternalServer.Error()
	}
	var insufficient *InsufficientBalanceError
	if errors.As(err, &insufficient) {
		return ErrInsufficientBalance.Error()
	}
	var transferErr *TransferError
	if errors.As(err, &transferErr) {
		return transferErr.Err.Error()
	}
	return err.Error()
}

// TransferError represents a rejected money transfer
type TransferError struct {
	SenderID           string
	ReceiverIdentifier string
	Amount             string
	Category           string
	Reason             string
	Err                error
}

// Error implements the error interface for TransferError
func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer from %s to %s (amount: %s, category: %s) rejected: %s - %v",
		e.SenderID, e.ReceiverIdentifier, e.Amount, e.Category, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransferError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransferError) LogFields() map[string]any {
	return map[string]any{
		"error_type":          "transfer_error",
		"sender_id":           e.SenderID,
		"receiver_identifier": e.ReceiverIdentifier,
		"amount":              e.Amount,
		"category":            e.Category,
		"reason":              e.Reason,
		"error":               e.Err.Error(),
		"error_code":          ErrorCode(e.Err),
	}
}

// NewTransferError creates a detailed transfer error
func NewTransferError(senderID, receiverIdentifier, amount, category, reason string, err error) error {
	return &TransferError{
		SenderID:           senderID,
		ReceiverIdentifier: receiverIdentifier,
		Amount:             amount,
		Category:           category,
		Reason:             reason,
		Err:                err,
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      string
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %s: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrReceiverNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrCategoryNotFound)
}
