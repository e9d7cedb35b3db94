package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/paywise/paywise-api/internal/domain/entity"
	errs "github.com/paywise/paywise-api/internal/domain/error"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/dto"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/logger"
	ucmocks "github.com/paywise/paywise-api/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_GetBalance(t *testing.T) {
	t.Run("returns balance and categories", func(t *testing.T) {
		categories := entity.DefaultCategories()
		categories[2].Spent = 2500
		categories[2].Limit = 10000

		users := ucmocks.NewMockUserUseCase(t)
		users.EXPECT().GetBalance(mock.Anything, aliceID, aliceID).Return(&entity.BalanceSummary{
			UserID:     aliceID,
			Balance:    997500,
			Categories: categories,
		}, nil).Once()

		h := NewUserHandler(users, logger.NewNoopLogger())
		r := newTestRouter(aliceID)
		r.GET("/api/balance/:id", h.GetBalance)

		w := doRequest(r, http.MethodGet, "/api/balance/"+aliceID, nil)

		assertStatus(t, http.StatusOK, w)
		var resp dto.BalanceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "9975.00", resp.Balance)
		require.Len(t, resp.Categories, 5)
		assert.Equal(t, "Food", resp.Categories[2].Name)
		assert.Equal(t, "25.00", resp.Categories[2].Spent)
		assert.Equal(t, "100.00", resp.Categories[2].Limit)
		assert.Equal(t, "predefined", resp.Categories[2].Type)
	})

	t.Run("another user's balance is forbidden", func(t *testing.T) {
		users := ucmocks.NewMockUserUseCase(t)
		users.EXPECT().GetBalance(mock.Anything, aliceID, bobID).Return(nil, errs.ErrForbidden).Once()

		h := NewUserHandler(users, logger.NewNoopLogger())
		r := newTestRouter(aliceID)
		r.GET("/api/balance/:id", h.GetBalance)

		w := doRequest(r, http.MethodGet, "/api/balance/"+bobID, nil)

		assertStatus(t, http.StatusForbidden, w)
		assert.Equal(t, errs.CodeForbidden, decodeError(t, w).Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := ucmocks.NewMockUserUseCase(t)
		users.EXPECT().GetBalance(mock.Anything, aliceID, aliceID).Return(nil, errs.ErrUserNotFound).Once()

		h := NewUserHandler(users, logger.NewNoopLogger())
		r := newTestRouter(aliceID)
		r.GET("/api/balance/:id", h.GetBalance)

		w := doRequest(r, http.MethodGet, "/api/balance/"+aliceID, nil)

		assertStatus(t, http.StatusNotFound, w)
	})
}
