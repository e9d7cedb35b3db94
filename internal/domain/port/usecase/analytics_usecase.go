package usecase

import (
	"context"

	"github.com/paywise/paywise-api/internal/domain/entity"
)

// ReconcileResult summarises a category reconciliation run
type ReconcileResult struct {
	Users   int
	Failed  int
	Entries int
}

// AnalyticsUseCase defines spending analytics
type AnalyticsUseCase interface {
	// Analysis returns the categories with activity or a configured limit
	Analysis(ctx context.Context, callerID, userID string) ([]entity.Category, error)

	// MonthlySpending returns what the user sent per calendar month and category
	MonthlySpending(ctx context.Context, callerID, userID string) ([]entity.MonthlySpending, error)

	// InvalidateUser drops cached analytics of the given users
	InvalidateUser(ctx context.Context, userIDs ...string)

	// Reconcile rebuilds every user's category totals from the ledger
	Reconcile(ctx context.Context) (*ReconcileResult, error)
}
