package analytics

import (
	"context"

	"github.com/paywise/paywise-api/internal/domain/entity"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
)

// Reconcile rebuilds every user's category spent/received totals from the ledger.
// Each user is rewritten in its own unit of work; one failure does not stop the run.
func (s *Service) Reconcile(ctx context.Context) (*usecase.ReconcileResult, error) {
	ids, err := s.uow.GetUserRepository(ctx).ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	result := &usecase.ReconcileResult{}
	for _, id := range ids {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		entries, err := s.reconcileUser(ctx, id)
		if err != nil {
			result.Failed++
			s.logger.Error("Failed to reconcile user categories", map[string]any{
				"user_id": id,
				"error":   err.Error(),
			})
			continue
		}
		result.Users++
		result.Entries += entries
	}

	s.InvalidateUser(ctx, ids...)

	s.logger.Info("Category reconciliation finished", map[string]any{
		"users":   result.Users,
		"failed":  result.Failed,
		"entries": result.Entries,
	})

	return result, nil
}

// reconcileUser locks the user row before reading the ledger, so transfers
// committed concurrently are either in the aggregate or wait for this commit.
func (s *Service) reconcileUser(ctx context.Context, userID string) (entries int, err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = s.uow.Rollback(txCtx)
		}
	}()

	users := s.uow.GetUserRepository(txCtx)
	locked, err := users.GetForUpdate(txCtx, []string{userID})
	if err != nil {
		return 0, err
	}
	user := locked[userID]
	if user == nil {
		return 0, s.uow.Commit(txCtx)
	}

	totals, err := s.uow.GetTransactionRepository(txCtx).CategoryTotalsForUser(txCtx, userID)
	if err != nil {
		return 0, err
	}
	if err = entity.ApplyCategoryTotals(user, totals); err != nil {
		return 0, err
	}
	if err = users.Update(txCtx, user); err != nil {
		return 0, err
	}
	return len(totals), s.uow.Commit(txCtx)
}
