package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/paywise/paywise-api/internal/domain/entity"
	errs "github.com/paywise/paywise-api/internal/domain/error"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/dto"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/logger"
	timeProvider "github.com/paywise/paywise-api/internal/infrastructure/adapter/time"
	ucmocks "github.com/paywise/paywise-api/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsHandler_Analysis(t *testing.T) {
	svc := ucmocks.NewMockAnalyticsUseCase(t)
	svc.EXPECT().Analysis(mock.Anything, aliceID, aliceID).Return([]entity.Category{
		{Name: "Food", Type: entity.CategoryPredefined, Spent: 4550},
		{Name: "Rent", Type: entity.CategoryPredefined, Limit: 1500000},
	}, nil).Once()

	h := NewAnalyticsHandler(svc, logger.NewNoopLogger())
	r := newTestRouter(aliceID)
	r.GET("/api/analysis/:userId", h.Analysis)

	w := doRequest(r, http.MethodGet, "/api/analysis/"+aliceID, nil)

	assertStatus(t, http.StatusOK, w)
	var resp []dto.CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "45.50", resp[0].Spent)
	assert.Equal(t, "15000.00", resp[1].Limit)
}

func TestAnalyticsHandler_MonthlySpending(t *testing.T) {
	t.Run("formats months and amounts", func(t *testing.T) {
		svc := ucmocks.NewMockAnalyticsUseCase(t)
		svc.EXPECT().MonthlySpending(mock.Anything, aliceID, aliceID).Return([]entity.MonthlySpending{
			{
				Year: 2025, Month: 2, MonthName: "February", MonthlyTotal: 3000,
				Categories: []entity.CategoryAmount{{Category: "Food", Amount: 1000}, {Category: "Rent", Amount: 2000}},
			},
		}, nil).Once()

		h := NewAnalyticsHandler(svc, logger.NewNoopLogger())
		r := newTestRouter(aliceID)
		r.GET("/api/analytics/:userId/monthly-spending", h.MonthlySpending)

		w := doRequest(r, http.MethodGet, "/api/analytics/"+aliceID+"/monthly-spending", nil)

		assertStatus(t, http.StatusOK, w)
		var resp []dto.MonthlySpendingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "February", resp[0].MonthName)
		assert.Equal(t, 2, resp[0].Month)
		assert.Equal(t, "30.00", resp[0].MonthlyTotal)
		require.Len(t, resp[0].Categories, 2)
		assert.Equal(t, "Rent", resp[0].Categories[1].Category)
		assert.Equal(t, "20.00", resp[0].Categories[1].Amount)
	})

	t.Run("forbidden", func(t *testing.T) {
		svc := ucmocks.NewMockAnalyticsUseCase(t)
		svc.EXPECT().MonthlySpending(mock.Anything, aliceID, bobID).Return(nil, errs.ErrForbidden).Once()

		h := NewAnalyticsHandler(svc, logger.NewNoopLogger())
		r := newTestRouter(aliceID)
		r.GET("/api/analytics/:userId/monthly-spending", h.MonthlySpending)

		w := doRequest(r, http.MethodGet, "/api/analytics/"+bobID+"/monthly-spending", nil)

		assertStatus(t, http.StatusForbidden, w)
	})
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantDB     string
	}{
		{name: "database up", wantStatus: http.StatusOK, wantDB: "up"},
		{name: "database down", pingErr: errors.New("dial tcp: refused"), wantStatus: http.StatusServiceUnavailable, wantDB: "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(stubPinger{err: tt.pingErr}, timeProvider.NewRealTimeProvider(), logger.NewNoopLogger())
			r := newTestRouter("")
			r.GET("/health", h.Health)

			w := doRequest(r, http.MethodGet, "/health", nil)

			assertStatus(t, tt.wantStatus, w)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantDB, resp["database"])
		})
	}
}
