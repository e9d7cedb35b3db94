package persistence

import (
	"context"
)

// UnitOfWork groups repository calls into one database transaction.
// The transaction travels inside the context returned by Begin.
type UnitOfWork interface {
	// Begin opens a transaction and returns a context carrying it.
	// Nested transactions are not supported.
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction carried by ctx
	Commit(ctx context.Context) error

	// Rollback aborts the transaction carried by ctx; a finished transaction is a no-op
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the transaction in ctx,
	// or to the plain connection pool when ctx carries none
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns a ledger repository bound the same way
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
