package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/paywise/paywise-api/internal/domain/port/usecase"
	coremocks "github.com/paywise/paywise-api/mocks/port/core"
	usecasemocks "github.com/paywise/paywise-api/mocks/port/usecase"
)

func TestScheduleReconcile(t *testing.T) {
	log := coremocks.NewMockLogger(t)
	log.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()
	s := New(usecasemocks.NewMockAnalyticsUseCase(t), log)

	assert.NoError(t, s.ScheduleReconcile(""))
	assert.Empty(t, s.cron.Entries())

	assert.NoError(t, s.ScheduleReconcile("@daily"))
	assert.Len(t, s.cron.Entries(), 1)

	assert.Error(t, s.ScheduleReconcile("not a schedule"))
}

func TestRunReconcile(t *testing.T) {
	t.Run("Failures are reported", func(t *testing.T) {
		analytics := usecasemocks.NewMockAnalyticsUseCase(t)
		log := coremocks.NewMockLogger(t)
		s := New(analytics, log)

		analytics.EXPECT().Reconcile(mock.Anything).Return(&usecase.ReconcileResult{Users: 2, Failed: 1}, nil).Once()
		log.EXPECT().Warn("Category reconciliation finished with failures", mock.Anything).Return().Once()

		s.runReconcile()
	})

	t.Run("Error is logged", func(t *testing.T) {
		analytics := usecasemocks.NewMockAnalyticsUseCase(t)
		log := coremocks.NewMockLogger(t)
		s := New(analytics, log)

		analytics.EXPECT().Reconcile(mock.Anything).Return(nil, errors.New("db down")).Once()
		log.EXPECT().Error("Category reconciliation failed", mock.Anything).Return().Once()

		s.runReconcile()
	})

	t.Run("Clean run is quiet", func(t *testing.T) {
		analytics := usecasemocks.NewMockAnalyticsUseCase(t)
		s := New(analytics, coremocks.NewMockLogger(t))

		analytics.EXPECT().Reconcile(mock.Anything).Return(&usecase.ReconcileResult{Users: 3}, nil).Once()

		s.runReconcile()
	})
}

func TestStop_CancelsJobContext(t *testing.T) {
	s := New(usecasemocks.NewMockAnalyticsUseCase(t), coremocks.NewMockLogger(t))
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)

	assert.Error(t, s.ctx.Err())
}

func TestToFields(t *testing.T) {
	assert.Equal(t, map[string]any{"entry": 1, "now": "x"}, toFields([]any{"entry", 1, "now", "x", "dangling"}))
}
