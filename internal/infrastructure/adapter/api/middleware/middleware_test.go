package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	errs "github.com/paywise/paywise-api/internal/domain/error"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/dto"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/logger"
	coremocks "github.com/paywise/paywise-api/mocks/port/core"
	ucmocks "github.com/paywise/paywise-api/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func callerEcho(c *gin.Context) {
	c.String(http.StatusOK, CallerID(c))
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		setup      func(m *ucmocks.MockAuthUseCase)
		wantStatus int
		wantBody   string
		wantCode   int
	}{
		{
			name:    "bearer token",
			headers: map[string]string{"Authorization": "Bearer good"},
			setup: func(m *ucmocks.MockAuthUseCase) {
				m.EXPECT().Authenticate("good").Return(&coreport.TokenClaims{UserID: "user-1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "user-1",
		},
		{
			name:    "x-auth-token header",
			headers: map[string]string{"x-auth-token": "good"},
			setup: func(m *ucmocks.MockAuthUseCase) {
				m.EXPECT().Authenticate("good").Return(&coreport.TokenClaims{UserID: "user-2"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "user-2",
		},
		{
			name:       "missing token",
			wantStatus: http.StatusUnauthorized,
			wantCode:   errs.CodeUnauthorized,
		},
		{
			name:       "non bearer scheme",
			headers:    map[string]string{"Authorization": "Basic abc"},
			wantStatus: http.StatusUnauthorized,
			wantCode:   errs.CodeUnauthorized,
		},
		{
			name:    "invalid token",
			headers: map[string]string{"Authorization": "Bearer bad"},
			setup: func(m *ucmocks.MockAuthUseCase) {
				m.EXPECT().Authenticate("bad").Return(nil, errs.ErrInvalidToken).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   errs.CodeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := ucmocks.NewMockAuthUseCase(t)
			if tt.setup != nil {
				tt.setup(auth)
			}
			r := gin.New()
			r.GET("/me", Auth(auth, logger.NewNoopLogger()), callerEcho)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
				return
			}
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, coreport.RequestIDFrom(c.Request.Context()))
	})

	t.Run("propagates the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Body.String())
		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	})

	t.Run("generates an id when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	log := coremocks.NewMockLogger(t)
	log.EXPECT().Error("Panic recovered in API request", mock.Anything).Return().Once()

	r := gin.New()
	r.Use(ErrorHandler(log))
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errs.CodeInternalServer, resp.Code)
	assert.Equal(t, "internal server error", resp.Message)
}

func TestRespondWithError_LogsServerErrors(t *testing.T) {
	log := coremocks.NewMockLogger(t)
	log.EXPECT().Error("Request failed", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["error"] == "disk on fire"
	})).Return().Once()

	r := gin.New()
	r.GET("/fail", func(c *gin.Context) { RespondWithError(c, log, errors.New("disk on fire")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk on fire")
}

func TestRespondWithError_AddsStructuredFields(t *testing.T) {
	log := coremocks.NewMockLogger(t)
	log.EXPECT().Debug("Request rejected", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["error_type"] == "insufficient_balance" && fields["user_id"] == "user-1"
	})).Return().Once()

	r := gin.New()
	r.GET("/fail", func(c *gin.Context) {
		RespondWithError(c, log, errs.NewInsufficientBalanceError("user-1", "10.00", "5.00"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient funds")
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight from an allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "x-auth-token")
	})

	t.Run("unknown origin gets no allow header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Success", statusText(201))
	assert.Equal(t, "Client Error", statusText(404))
	assert.Equal(t, "Server Error", statusText(503))
}
