package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/paywise/paywise-api/internal/domain/entity"
	errs "github.com/paywise/paywise-api/internal/domain/error"
	coremocks "github.com/paywise/paywise-api/mocks/port/core"
	persistencemocks "github.com/paywise/paywise-api/mocks/port/persistence"
)

type fixture struct {
	uow    *persistencemocks.MockUnitOfWork
	users  *persistencemocks.MockUserRepository
	txs    *persistencemocks.MockTransactionRepository
	cache  *coremocks.MockCache
	clock  *coremocks.MockTimeProvider
	logger *coremocks.MockLogger
	svc    *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:    persistencemocks.NewMockUnitOfWork(t),
		users:  persistencemocks.NewMockUserRepository(t),
		txs:    persistencemocks.NewMockTransactionRepository(t),
		cache:  coremocks.NewMockCache(t),
		clock:  coremocks.NewMockTimeProvider(t),
		logger: coremocks.NewMockLogger(t),
	}
	f.clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.users).Maybe()
	f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txs).Maybe()
	f.svc = NewService(f.uow, f.cache, f.logger)
	return f
}

func TestAnalysis(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user, err := entity.NewUser("u-1", "Alice", "alice@ybl", "1", "h", 0, f.clock)
	require.NoError(t, err)
	require.NoError(t, user.RecordSpend("Food", 500))
	require.NoError(t, user.SetCategoryLimit("Rent", 1000, f.clock))
	f.users.EXPECT().GetByID(ctx, "u-1").Return(user, nil).Once()

	categories, err := f.svc.Analysis(ctx, "u-1", "u-1")

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Food", categories[0].Name)
	assert.Equal(t, "Rent", categories[1].Name)

	_, err = f.svc.Analysis(ctx, "u-2", "u-1")
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestMonthlySpending(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache miss loads and stores", func(t *testing.T) {
		f := newFixture(t)
		rows := []entity.CategoryMonthTotal{
			{Year: 2024, Month: 2, Category: "Food", Amount: 100},
			{Year: 2024, Month: 1, Category: "Rent", Amount: 900},
		}
		f.cache.EXPECT().Get(ctx, "analytics:monthly:u-1", mock.Anything).Return(false).Once()
		f.txs.EXPECT().MonthlySpending(ctx, "u-1").Return(rows, nil).Once()
		f.cache.EXPECT().Set(ctx, "analytics:monthly:u-1", mock.Anything).Return().Once()

		months, err := f.svc.MonthlySpending(ctx, "u-1", "u-1")

		require.NoError(t, err)
		require.Len(t, months, 2)
		assert.Equal(t, "January", months[0].MonthName)
		assert.Equal(t, "February", months[1].MonthName)
	})

	t.Run("Cache hit skips the database", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(ctx, "analytics:monthly:u-1", mock.Anything).
			Run(func(ctx context.Context, key string, dest any) {
				*dest.(*[]entity.MonthlySpending) = []entity.MonthlySpending{{Year: 2023, Month: 5, MonthName: "May"}}
			}).Return(true).Once()

		months, err := f.svc.MonthlySpending(ctx, "u-1", "u-1")

		require.NoError(t, err)
		require.Len(t, months, 1)
		assert.Equal(t, "May", months[0].MonthName)
	})

	t.Run("Forbidden", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.MonthlySpending(ctx, "u-2", "u-1")
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestInvalidateUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.cache.EXPECT().Delete(ctx, "analytics:monthly:a", "analytics:monthly:b").Return().Once()

	f.svc.InvalidateUser(ctx, "a", "b")
	f.svc.InvalidateUser(ctx)
}

type txKey struct{}

func TestReconcile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice, err := entity.NewUser("alice", "Alice", "alice@ybl", "1", "h", 0, f.clock)
	require.NoError(t, err)
	require.NoError(t, alice.RecordSpend("Food", 99999))
	bob, err := entity.NewUser("bob", "Bob", "bob@sbi", "2", "h", 0, f.clock)
	require.NoError(t, err)

	aliceCtx := context.WithValue(ctx, txKey{}, "alice")
	bobCtx := context.WithValue(ctx, txKey{}, "bob")

	f.users.EXPECT().ListIDs(ctx).Return([]string{"alice", "bob"}, nil).Once()

	f.uow.EXPECT().Begin(ctx).Return(aliceCtx, nil).Once()
	f.users.EXPECT().GetForUpdate(aliceCtx, []string{"alice"}).Return(map[string]*entity.User{"alice": alice}, nil).Once()
	f.txs.EXPECT().CategoryTotalsForUser(aliceCtx, "alice").Return([]entity.CategoryTotal{
		{UserID: "alice", Category: "Food", Spent: 1500},
		{UserID: "alice", Category: "Rent", Received: 700},
	}, nil).Once()
	f.users.EXPECT().Update(aliceCtx, alice).Return(nil).Once()
	f.uow.EXPECT().Commit(aliceCtx).Return(nil).Once()

	f.uow.EXPECT().Begin(ctx).Return(bobCtx, nil).Once()
	f.users.EXPECT().GetForUpdate(bobCtx, []string{"bob"}).Return(map[string]*entity.User{"bob": bob}, nil).Once()
	f.txs.EXPECT().CategoryTotalsForUser(bobCtx, "bob").Return([]entity.CategoryTotal{
		{UserID: "bob", Category: "food", Received: 1500},
	}, nil).Once()
	f.users.EXPECT().Update(bobCtx, bob).Return(errors.New("write failed")).Once()
	f.uow.EXPECT().Rollback(bobCtx).Return(nil).Once()

	f.cache.EXPECT().Delete(ctx, "analytics:monthly:alice", "analytics:monthly:bob").Return().Once()

	result, err := f.svc.Reconcile(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Users)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 2, result.Entries)
	assert.Equal(t, int64(1500), alice.FindCategory("Food").Spent)
}

func TestReconcile_ReadsLedgerAfterLockingUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice, err := entity.NewUser("alice", "Alice", "alice@ybl", "1", "h", 0, f.clock)
	require.NoError(t, err)
	require.NoError(t, alice.RecordSpend("Food", 3500))
	txCtx := context.WithValue(ctx, txKey{}, "alice")

	locked := false
	f.users.EXPECT().ListIDs(ctx).Return([]string{"alice"}, nil).Once()
	f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
	f.users.EXPECT().GetForUpdate(txCtx, []string{"alice"}).
		RunAndReturn(func(context.Context, []string) (map[string]*entity.User, error) {
			locked = true
			return map[string]*entity.User{"alice": alice}, nil
		}).Once()
	f.txs.EXPECT().CategoryTotalsForUser(txCtx, "alice").
		RunAndReturn(func(context.Context, string) ([]entity.CategoryTotal, error) {
			assert.True(t, locked, "ledger must be aggregated while the user row is locked")
			return []entity.CategoryTotal{{UserID: "alice", Category: "Food", Spent: 3500}}, nil
		}).Once()
	f.users.EXPECT().Update(txCtx, alice).Return(nil).Once()
	f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
	f.cache.EXPECT().Delete(ctx, "analytics:monthly:alice").Return().Once()

	result, err := f.svc.Reconcile(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Users)
	assert.Equal(t, 1, result.Entries)
	assert.Equal(t, int64(3500), alice.FindCategory("Food").Spent)
}

func TestMonthlySpending_InvalidatedDuringReadIsNotCached(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	key := "analytics:monthly:u-1"
	var order []string

	f.cache.EXPECT().Get(ctx, key, mock.Anything).Return(false).Once()
	f.txs.EXPECT().MonthlySpending(ctx, "u-1").
		RunAndReturn(func(ctx context.Context, userID string) ([]entity.CategoryMonthTotal, error) {
			// a transfer commits while the ledger is being read
			f.svc.InvalidateUser(ctx, userID)
			return []entity.CategoryMonthTotal{{Year: 2024, Month: 1, Category: "Food", Amount: 100}}, nil
		}).Once()
	f.cache.EXPECT().Set(ctx, key, mock.Anything).
		Run(func(context.Context, string, any) { order = append(order, "set") }).Return().Once()
	f.cache.EXPECT().Delete(ctx, key).
		Run(func(context.Context, ...string) { order = append(order, "delete") }).Return().Times(2)

	months, err := f.svc.MonthlySpending(ctx, "u-1", "u-1")

	require.NoError(t, err)
	require.Len(t, months, 1)
	assert.Equal(t, []string{"delete", "set", "delete"}, order)
}
