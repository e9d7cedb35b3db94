package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paywise/paywise-api/internal/domain/entity"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/dto"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/middleware"
	"github.com/stretchr/testify/require"
)

const (
	aliceID = "11111111-1111-1111-1111-111111111111"
	bobID   = "22222222-2222-2222-2222-222222222222"
)

var fixedTime = time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuth stands in for the token middleware
func fakeAuth(callerID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetCallerID(c, callerID)
		c.Next()
	}
}

func newTestRouter(callerID string) *gin.Engine {
	r := gin.New()
	r.Use(fakeAuth(callerID))
	return r
}

func doRequest(router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	return serve(router, method, target, body)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func testUser(id, name, upi, phone string, balance int64) *entity.User {
	return entity.RehydrateUser(id, name, upi, phone, "hash", balance, entity.DefaultCategories(), fixedTime, fixedTime)
}

func testTransaction() *entity.Transaction {
	return &entity.Transaction{
		ID:            "tx-1",
		SenderID:      aliceID,
		ReceiverID:    bobID,
		AmountInCents: 1250,
		Category:      "Food",
		Timestamp:     fixedTime,
		Sender:        &entity.Party{ID: aliceID, Name: "Alice", UpiID: "alice@ybl"},
		Receiver:      &entity.Party{ID: bobID, Name: "Bob", UpiID: "bob@sbi"},
	}
}

func assertStatus(t *testing.T, want int, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equalf(t, want, w.Code, "body: %s", w.Body.String())
}


// serve is doRequest for any http.Handler
func serve(h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func escapePath(segment string) string {
	return url.PathEscape(segment)
}
