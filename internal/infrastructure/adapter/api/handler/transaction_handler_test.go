package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/paywise/paywise-api/internal/domain/entity"
	errs "github.com/paywise/paywise-api/internal/domain/error"
	"github.com/paywise/paywise-api/internal/domain/usecase/transaction"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/dto"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/logger"
	timeProvider "github.com/paywise/paywise-api/internal/infrastructure/adapter/time"
	persistencemocks "github.com/paywise/paywise-api/mocks/port/persistence"
	ucmocks "github.com/paywise/paywise-api/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransactionHandler_History(t *testing.T) {
	t.Run("returns newest first with party summaries", func(t *testing.T) {
		svc := ucmocks.NewMockTransactionUseCase(t)
		older := testTransaction()
		older.ID = "tx-0"
		svc.EXPECT().History(mock.Anything, aliceID, aliceID).Return([]*entity.Transaction{testTransaction(), older}, nil).Once()

		h := NewTransactionHandler(svc, logger.NewNoopLogger())
		r := newTestRouter(aliceID)
		r.GET("/api/transactions/history/:userId", h.History)

		w := doRequest(r, http.MethodGet, "/api/transactions/history/"+aliceID, nil)

		assertStatus(t, http.StatusOK, w)
		var resp []dto.TransactionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "tx-1", resp[0].ID)
		assert.Equal(t, "Alice", resp[0].Sender.Name)
		assert.Equal(t, "bob@sbi", resp[0].Receiver.UpiID)
		assert.NotNil(t, resp[0].Messages)
	})

	t.Run("empty history is an empty array", func(t *testing.T) {
		svc := ucmocks.NewMockTransactionUseCase(t)
		svc.EXPECT().History(mock.Anything, aliceID, aliceID).Return(nil, nil).Once()

		h := NewTransactionHandler(svc, logger.NewNoopLogger())
		r := newTestRouter(aliceID)
		r.GET("/api/transactions/history/:userId", h.History)

		w := doRequest(r, http.MethodGet, "/api/transactions/history/"+aliceID, nil)

		assertStatus(t, http.StatusOK, w)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("another user's history is forbidden", func(t *testing.T) {
		svc := ucmocks.NewMockTransactionUseCase(t)
		svc.EXPECT().History(mock.Anything, aliceID, bobID).Return(nil, errs.ErrForbidden).Once()

		h := NewTransactionHandler(svc, logger.NewNoopLogger())
		r := newTestRouter(aliceID)
		r.GET("/api/transactions/history/:userId", h.History)

		w := doRequest(r, http.MethodGet, "/api/transactions/history/"+bobID, nil)

		assertStatus(t, http.StatusForbidden, w)
	})
}

func TestTransactionHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "missing", err: errs.ErrTransactionNotFound, wantStatus: http.StatusNotFound},
		{name: "not a party", err: errs.ErrForbidden, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := ucmocks.NewMockTransactionUseCase(t)
			var txn *entity.Transaction
			if tt.err == nil {
				txn = testTransaction()
			}
			svc.EXPECT().Get(mock.Anything, aliceID, "tx-1").Return(txn, tt.err).Once()

			h := NewTransactionHandler(svc, logger.NewNoopLogger())
			r := newTestRouter(aliceID)
			r.GET("/api/transactions/:id", h.Get)

			w := doRequest(r, http.MethodGet, "/api/transactions/tx-1", nil)

			assertStatus(t, tt.wantStatus, w)
		})
	}
}

func TestTransactionHandler_GetMalformedID(t *testing.T) {
	repo := persistencemocks.NewMockTransactionRepository(t)
	svc := transaction.NewTransactionService(repo, nil, timeProvider.NewRealTimeProvider(), logger.NewNoopLogger())

	h := NewTransactionHandler(svc, logger.NewNoopLogger())
	r := newTestRouter(aliceID)
	r.GET("/api/transactions/:id", h.Get)

	w := doRequest(r, http.MethodGet, "/api/transactions/abc", nil)

	assertStatus(t, http.StatusNotFound, w)
	assert.Equal(t, errs.CodeTransactionNotFound, decodeError(t, w).Code)
}

func TestTransactionHandler_AddMessage(t *testing.T) {
	t.Run("appends the message", func(t *testing.T) {
		svc := ucmocks.NewMockTransactionUseCase(t)
		txn := testTransaction()
		txn.Messages = []entity.Message{{ID: "m-1", SenderID: aliceID, Text: "dinner", Timestamp: fixedTime}}
		svc.EXPECT().AddMessage(mock.Anything, aliceID, "tx-1", aliceID, "dinner").Return(txn, nil).Once()

		h := NewTransactionHandler(svc, logger.NewNoopLogger())
		r := newTestRouter(aliceID)
		r.POST("/api/transactions/message/:id", h.AddMessage)

		w := doRequest(r, http.MethodPost, "/api/transactions/message/tx-1", map[string]string{
			"senderId": aliceID,
			"message":  "dinner",
		})

		assertStatus(t, http.StatusOK, w)
		var resp dto.TransactionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Messages, 1)
		assert.Equal(t, "dinner", resp.Messages[0].Text)
		assert.Equal(t, aliceID, resp.Messages[0].SenderID)
	})

	t.Run("blank message after trimming", func(t *testing.T) {
		svc := ucmocks.NewMockTransactionUseCase(t)
		svc.EXPECT().AddMessage(mock.Anything, aliceID, "tx-1", aliceID, "   ").Return(nil, errs.ErrEmptyMessage).Once()

		h := NewTransactionHandler(svc, logger.NewNoopLogger())
		r := newTestRouter(aliceID)
		r.POST("/api/transactions/message/:id", h.AddMessage)

		w := doRequest(r, http.MethodPost, "/api/transactions/message/tx-1", map[string]string{
			"senderId": aliceID,
			"message":  "   ",
		})

		assertStatus(t, http.StatusBadRequest, w)
		assert.Equal(t, errs.CodeEmptyMessage, decodeError(t, w).Code)
	})

	t.Run("missing message field", func(t *testing.T) {
		svc := ucmocks.NewMockTransactionUseCase(t)

		h := NewTransactionHandler(svc, logger.NewNoopLogger())
		r := newTestRouter(aliceID)
		r.POST("/api/transactions/message/:id", h.AddMessage)

		w := doRequest(r, http.MethodPost, "/api/transactions/message/tx-1", map[string]string{"senderId": aliceID})

		assertStatus(t, http.StatusBadRequest, w)
		resp := decodeError(t, w)
		require.Len(t, resp.Details, 1)
		assert.Equal(t, "message", resp.Details[0].Field)
	})
}
