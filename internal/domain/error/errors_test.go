package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientBalance.Error() != "insufficient funds" {
		t.Errorf("ErrInsufficientBalance has unexpected message: %s", ErrInsufficientBalance.Error())
	}
	if ErrSelfTransfer.Error() != "cannot send money to yourself" {
		t.Errorf("ErrSelfTransfer has unexpected message: %s", ErrSelfTransfer.Error())
	}
	if !errors.Is(ErrSenderNotFound, ErrUserNotFound) {
		t.Errorf("ErrSenderNotFound should wrap ErrUserNotFound")
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NonPositiveAmount", ErrNonPositiveAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"SelfTransfer", ErrSelfTransfer, 4004},
		{"DuplicateUpiID", ErrDuplicateUpiID, 4007},
		{"CategoryExists", ErrCategoryExists, 4009},
		{"Unauthorized", ErrInvalidToken, 4010},
		{"PredefinedCategory", ErrPredefinedCategory, 4011},
		{"Forbidden", ErrForbidden, 4030},
		{"IncorrectPassword", ErrIncorrectPassword, 4031},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"SenderNotFound", ErrSenderNotFound, 4040},
		{"ReceiverNotFound", ErrReceiverNotFound, 4041},
		{"CategoryNotFound", ErrCategoryNotFound, 4043},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", ErrNonPositiveAmount, http.StatusBadRequest},
		{"InsufficientFunds", NewInsufficientBalanceError("u1", "10.00", "5.00"), http.StatusBadRequest},
		{"SelfTransfer", ErrSelfTransfer, http.StatusBadRequest},
		{"MissingToken", ErrMissingToken, http.StatusUnauthorized},
		{"Forbidden", ErrForbidden, http.StatusForbidden},
		{"WrongPassword", ErrIncorrectPassword, http.StatusForbidden},
		{"SenderNotFound", ErrSenderNotFound, http.StatusNotFound},
		{"ReceiverNotFound", fmt.Errorf("lookup: %w", ErrReceiverNotFound), http.StatusNotFound},
		{"TransactionNotFound", ErrTransactionNotFound, http.StatusNotFound},
		{"Database", ErrDatabaseConnection, http.StatusInternalServerError},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if status := HTTPStatus(tc.err); status != tc.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, status, tc.expected)
			}
		})
	}
}

func TestPublicMessage(t *testing.T) {
	t.Run("Infrastructure errors are hidden", func(t *testing.T) {
		err := fmt.Errorf("%w: dial tcp 10.0.0.1:5432", ErrDatabaseConnection)
		if msg := PublicMessage(err); msg != "internal server error" {
			t.Errorf("PublicMessage() = %q, want generic message", msg)
		}
	})

	t.Run("Transfer errors expose only the cause", func(t *testing.T) {
		err := NewTransferError("u1", "bob@upi", "10.00", "Food", "receiver lookup", ErrReceiverNotFound)
		if msg := PublicMessage(err); msg != "receiver not found" {
			t.Errorf("PublicMessage() = %q, want %q", msg, "receiver not found")
		}
	})

	t.Run("Insufficient balance details are not leaked", func(t *testing.T) {
		err := NewTransferError("u1", "bob@upi", "10.00", "Food", "balance check",
			NewInsufficientBalanceError("u1", "10.00", "5.00"))
		if msg := PublicMessage(err); msg != "insufficient funds" {
			t.Errorf("PublicMessage() = %q, want %q", msg, "insufficient funds")
		}
	})
}

func TestTransferError(t *testing.T) {
	transferErr := &TransferError{
		SenderID:           "u1",
		ReceiverIdentifier: "9876543210",
		Amount:             "200.75",
		Category:           "Rent",
		Reason:             "validation failed",
		Err:                ErrSelfTransfer,
	}

	expectedErrMsg := "transfer from u1 to 9876543210 (amount: 200.75, category: Rent) rejected: validation failed - cannot send money to yourself"
	if transferErr.Error() != expectedErrMsg {
		t.Errorf("TransferError.Error() = %s, want %s", transferErr.Error(), expectedErrMsg)
	}

	if !errors.Is(transferErr, ErrSelfTransfer) {
		t.Errorf("errors.Is(transferErr, ErrSelfTransfer) = false, want true")
	}

	fields := transferErr.LogFields()
	if fields["error_type"] != "transfer_error" {
		t.Errorf("LogFields()[error_type] = %v, want transfer_error", fields["error_type"])
	}
	if fields["error_code"] != CodeSelfTransfer {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeSelfTransfer)
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError("u42", "100.00", "50.00")

	expectedErrMsg := "insufficient balance for user u42: required 100.00, available 50.00"
	if err.Error() != expectedErrMsg {
		t.Errorf("InsufficientBalanceError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !IsInsufficientBalanceError(err) {
		t.Errorf("IsInsufficientBalanceError(err) = false, want true")
	}

	wrapped := fmt.Errorf("transfer failed: %w", err)
	if !IsInsufficientBalanceError(wrapped) {
		t.Errorf("IsInsufficientBalanceError(wrapped) = false, want true")
	}
}

func TestIsNotFoundError(t *testing.T) {
	for _, err := range []error{ErrUserNotFound, ErrSenderNotFound, ErrReceiverNotFound, ErrTransactionNotFound, ErrCategoryNotFound} {
		if !IsNotFoundError(err) {
			t.Errorf("IsNotFoundError(%v) = false, want true", err)
		}
	}
	if IsNotFoundError(ErrForbidden) {
		t.Errorf("IsNotFoundError(ErrForbidden) = true, want false")
	}
	if !IsUserNotFoundError(fmt.Errorf("wrap: %w", ErrUserNotFound)) {
		t.Errorf("IsUserNotFoundError(wrapped) = false, want true")
	}
}
