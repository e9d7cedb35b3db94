package category

import (
	"context"
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

type ctxKey struct{}

type fixture struct {
	uow   *persistencemocks.MockUnitOfWork
	users *persistencemocks.MockUserRepository
	clock *coremocks.MockTimeProvider
	user  *entity.User
	txCtx context.Context
	svc   *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:   persistencemocks.NewMockUnitOfWork(t),
		users: persistencemocks.NewMockUserRepository(t),
		clock: coremocks.NewMockTimeProvider(t),
		txCtx: context.WithValue(context.Background(), ctxKey{}, "tx"),
	}
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	f.clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Maybe()
	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.users).Maybe()

	user, err := entity.NewUser("u-1", "Alice", "alice@ybl", "1", "h", 0, f.clock)
	require.NoError(t, err)
	f.user = user
	f.svc = NewService(f.uow, f.clock, logger)
	return f
}

func (f *fixture) expectLocked() {
	f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Once()
	f.users.EXPECT().GetForUpdate(f.txCtx, []string{"u-1"}).Return(map[string]*entity.User{"u-1": f.user}, nil).Once()
}

func (f *fixture) expectCommit() {
	f.users.EXPECT().Update(f.txCtx, f.user).Return(nil).Once()
	f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()
}

func (f *fixture) expectRollback() {
	f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Own categories", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetByID(ctx, "u-1").Return(f.user, nil).Once()

		categories, err := f.svc.List(ctx, "u-1", "u-1")

		require.NoError(t, err)
		assert.Len(t, categories, 5)
	})

	t.Run("Forbidden", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.List(ctx, "u-2", "u-1")
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("New custom category", func(t *testing.T) {
		f := newFixture(t)
		f.expectLocked()
		f.expectCommit()

		categories, err := f.svc.Add(ctx, "u-1", "u-1", " Travel ")

		require.NoError(t, err)
		require.Len(t, categories, 6)
		assert.Equal(t, "Travel", categories[5].Name)
		assert.Equal(t, entity.CategoryCustom, categories[5].Type)
	})

	t.Run("Duplicate name ignoring case", func(t *testing.T) {
		f := newFixture(t)
		f.expectLocked()
		f.expectRollback()

		_, err := f.svc.Add(ctx, "u-1", "u-1", "FOOD")

		assert.ErrorIs(t, err, errs.ErrCategoryExists)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Custom category", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.user.AddCustomCategory("Travel", f.clock))
		f.expectLocked()
		f.expectCommit()

		categories, err := f.svc.Delete(ctx, "u-1", "u-1", "travel")

		require.NoError(t, err)
		assert.Len(t, categories, 5)
	})

	t.Run("Predefined category is protected", func(t *testing.T) {
		f := newFixture(t)
		f.expectLocked()
		f.expectRollback()

		_, err := f.svc.Delete(ctx, "u-1", "u-1", "Rent")

		assert.ErrorIs(t, err, errs.ErrPredefinedCategory)
		assert.Len(t, f.user.Categories, 5)
	})

	t.Run("Unknown category", func(t *testing.T) {
		f := newFixture(t)
		f.expectLocked()
		f.expectRollback()

		_, err := f.svc.Delete(ctx, "u-1", "u-1", "Travel")

		assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
	})
}

func TestSetLimit(t *testing.T) {
	ctx := context.Background()

	t.Run("Sets limit in cents", func(t *testing.T) {
		f := newFixture(t)
		f.expectLocked()
		f.expectCommit()

		categories, err := f.svc.SetLimit(ctx, "u-1", "u-1", "food", "500.50")

		require.NoError(t, err)
		assert.Equal(t, int64(50050), categories[2].Limit)
	})

	t.Run("Negative limit", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SetLimit(ctx, "u-1", "u-1", "Food", "-1")

		assert.ErrorIs(t, err, errs.ErrInvalidLimit)
	})

	t.Run("Malformed limit", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SetLimit(ctx, "u-1", "u-1", "Food", "lots")

		assert.ErrorIs(t, err, errs.ErrInvalidLimit)
	})

	t.Run("Unknown category", func(t *testing.T) {
		f := newFixture(t)
		f.expectLocked()
		f.expectRollback()

		_, err := f.svc.SetLimit(ctx, "u-1", "u-1", "Travel", "10")

		assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
	})
}
