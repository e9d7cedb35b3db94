package analytics

import (
	"context"
	"sync"

	"github.com/paywise/paywise-api/internal/domain/entity"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/persistence"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
)

const monthlyKeyPrefix = "analytics:monthly:"

// MonthlySpendingKey is the cache key of a user's monthly spending view
func MonthlySpendingKey(userID string) string {
	return monthlyKeyPrefix + userID
}

// Service computes spending analytics and keeps category totals in line with the ledger
type Service struct {
	uow    persistence.UnitOfWork
	cache  coreport.Cache
	logger coreport.Logger

	// generations counts invalidations per user so a view read before an
	// invalidation is not left in the cache after it
	mu          sync.Mutex
	generations map[string]uint64
}

// NewService creates a new analytics service
func NewService(uow persistence.UnitOfWork, cache coreport.Cache, logger coreport.Logger) *Service {
	return &Service{uow: uow, cache: cache, logger: logger, generations: make(map[string]uint64)}
}

func (s *Service) generation(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[userID]
}

var _ usecase.AnalyticsUseCase = (*Service)(nil)

// Analysis returns the categories with activity or a configured limit
func (s *Service) Analysis(ctx context.Context, callerID, userID string) ([]entity.Category, error) {
	if err := entity.EnsureOwner(callerID, userID); err != nil {
		return nil, err
	}
	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return entity.AnalyzeCategories(user.Categories), nil
}

// MonthlySpending returns what the user sent per calendar month and category.
// Results are served from cache until a transfer touches the user.
func (s *Service) MonthlySpending(ctx context.Context, callerID, userID string) ([]entity.MonthlySpending, error) {
	if err := entity.EnsureOwner(callerID, userID); err != nil {
		return nil, err
	}

	key := MonthlySpendingKey(userID)
	var cached []entity.MonthlySpending
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	gen := s.generation(userID)
	rows, err := s.uow.GetTransactionRepository(ctx).MonthlySpending(ctx, userID)
	if err != nil {
		return nil, err
	}
	months := entity.BuildMonthlySpending(rows)
	s.cache.Set(ctx, key, months)
	if s.generation(userID) != gen {
		// invalidated while the ledger was being read
		s.cache.Delete(ctx, key)
	}

	return months, nil
}

// InvalidateUser drops cached analytics of the given users
func (s *Service) InvalidateUser(ctx context.Context, userIDs ...string) {
	if len(userIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(userIDs))
	s.mu.Lock()
	for _, id := range userIDs {
		s.generations[id]++
		keys = append(keys, MonthlySpendingKey(id))
	}
	s.mu.Unlock()
	s.cache.Delete(ctx, keys...)
}
