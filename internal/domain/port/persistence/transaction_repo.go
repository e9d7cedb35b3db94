package persistence

import (
	"context"

	"github.com/paywise/paywise-api/internal/domain/entity"
)

// TransactionRepository defines the methods used to interact with the transfer ledger
type TransactionRepository interface {
	// Create saves a new transaction
	//
	// Possible errors:
	// - ErrConstraintViolation: If a referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction with its party summaries and messages
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// ListByUser returns every transaction the user sent or received, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error)

	// AddMessage appends a message to a transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	AddMessage(ctx context.Context, transactionID string, message *entity.Message) error

	// MonthlySpending returns the amounts sent by the user per UTC calendar month and category
	MonthlySpending(ctx context.Context, userID string) ([]entity.CategoryMonthTotal, error)

	// CategoryTotalsForUser returns the ledger aggregates of spent and received amounts
	// per category for one user
	CategoryTotalsForUser(ctx context.Context, userID string) ([]entity.CategoryTotal, error)
}
