package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	errs "github.com/paywise/paywise-api/internal/domain/error"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/dto"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/logger"
	ucmocks "github.com/paywise/paywise-api/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	validBody := map[string]any{
		"name":        "Alice",
		"upiId":       "alice@ybl",
		"phoneNumber": "9000000001",
		"password":    "secret",
	}

	tests := []struct {
		name       string
		body       any
		setup      func(m *ucmocks.MockAuthUseCase)
		wantStatus int
		check      func(t *testing.T, body []byte)
	}{
		{
			name: "creates the account and returns a token",
			body: validBody,
			setup: func(m *ucmocks.MockAuthUseCase) {
				m.EXPECT().Register(mock.Anything, usecase.RegisterRequest{
					Name: "Alice", UpiID: "alice@ybl", Phone: "9000000001", Password: "secret",
				}).Return(&usecase.AuthResult{
					Token: "jwt-token",
					User:  testUser(aliceID, "Alice", "alice@ybl", "9000000001", 1000000),
				}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, body []byte) {
				var resp dto.AuthResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "jwt-token", resp.Token)
				assert.Equal(t, aliceID, resp.User.UserID)
				assert.Equal(t, "alice@ybl", resp.User.UpiID)
				assert.Equal(t, "9000000001", resp.User.PhoneNumber)
			},
		},
		{
			name: "duplicate UPI ID",
			body: validBody,
			setup: func(m *ucmocks.MockAuthUseCase) {
				m.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, errs.ErrDuplicateUpiID).Once()
			},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, errs.CodeDuplicateUser, resp.Code)
				assert.Equal(t, "user with this UPI ID already exists", resp.Message)
			},
		},
		{
			name: "UPI ID without @ fails validation",
			body: map[string]any{
				"name": "Alice", "upiId": "alice", "phoneNumber": "9000000001", "password": "secret",
			},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, errs.CodeInvalidRequest, resp.Code)
				require.Len(t, resp.Details, 1)
				assert.Equal(t, "upiId", resp.Details[0].Field)
				assert.Equal(t, "contains", resp.Details[0].Type)
			},
		},
		{
			name: "short password fails validation",
			body: map[string]any{
				"name": "Alice", "upiId": "alice@ybl", "phoneNumber": "9000000001", "password": "abc",
			},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				require.Len(t, resp.Details, 1)
				assert.Equal(t, "password", resp.Details[0].Field)
				assert.Equal(t, "min", resp.Details[0].Type)
			},
		},
		{
			name: "phone accepted in place of phoneNumber",
			body: map[string]any{
				"name": "Alice", "upiId": "alice@ybl", "phone": "9000000001", "password": "secret",
			},
			setup: func(m *ucmocks.MockAuthUseCase) {
				m.EXPECT().Register(mock.Anything, usecase.RegisterRequest{
					Name: "Alice", UpiID: "alice@ybl", Phone: "9000000001", Password: "secret",
				}).Return(&usecase.AuthResult{
					Token: "jwt-token",
					User:  testUser(aliceID, "Alice", "alice@ybl", "9000000001", 1000000),
				}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			check:      func(t *testing.T, body []byte) {},
		},
		{
			name: "no phone at all",
			body: map[string]any{
				"name": "Alice", "upiId": "alice@ybl", "password": "secret",
			},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				require.Len(t, resp.Details, 2)
				assert.Equal(t, "required_without", resp.Details[0].Type)
			},
		},
		{
			name:       "malformed JSON",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "invalid request format", resp.Message)
				assert.Empty(t, resp.Details)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := ucmocks.NewMockAuthUseCase(t)
			if tt.setup != nil {
				tt.setup(auth)
			}
			h := NewAuthHandler(auth, logger.NewNoopLogger())
			r := newTestRouter("")
			r.POST("/api/auth/register", h.Register)

			w := doRequest(r, http.MethodPost, "/api/auth/register", tt.body)

			assertStatus(t, tt.wantStatus, w)
			tt.check(t, w.Body.Bytes())
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns token and profile", func(t *testing.T) {
		auth := ucmocks.NewMockAuthUseCase(t)
		auth.EXPECT().Login(mock.Anything, "alice@ybl", "secret").Return(&usecase.AuthResult{
			Token: "jwt-token",
			User:  testUser(aliceID, "Alice", "alice@ybl", "9000000001", 0),
		}, nil).Once()

		h := NewAuthHandler(auth, logger.NewNoopLogger())
		r := newTestRouter("")
		r.POST("/api/auth/login", h.Login)

		w := doRequest(r, http.MethodPost, "/api/auth/login", map[string]string{"upiId": "alice@ybl", "password": "secret"})

		assertStatus(t, http.StatusOK, w)
		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "jwt-token", resp.Token)
		assert.Equal(t, "Alice", resp.User.Name)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		auth := ucmocks.NewMockAuthUseCase(t)
		auth.EXPECT().Login(mock.Anything, "alice@ybl", "wrong").Return(nil, errs.ErrInvalidCredentials).Once()

		h := NewAuthHandler(auth, logger.NewNoopLogger())
		r := newTestRouter("")
		r.POST("/api/auth/login", h.Login)

		w := doRequest(r, http.MethodPost, "/api/auth/login", map[string]string{"upiId": "alice@ybl", "password": "wrong"})

		assertStatus(t, http.StatusBadRequest, w)
		assert.Equal(t, errs.CodeInvalidCredentials, decodeError(t, w).Code)
	})

	t.Run("phone number as identifier", func(t *testing.T) {
		auth := ucmocks.NewMockAuthUseCase(t)
		auth.EXPECT().Login(mock.Anything, "9876543210", "1234").Return(&usecase.AuthResult{
			Token: "jwt-token",
			User:  testUser(aliceID, "Alice", "alice@ybl", "9876543210", 0),
		}, nil).Once()

		h := NewAuthHandler(auth, logger.NewNoopLogger())
		r := newTestRouter("")
		r.POST("/api/auth/login", h.Login)

		w := doRequest(r, http.MethodPost, "/api/auth/login", map[string]string{"identifier": "9876543210", "password": "1234"})

		assertStatus(t, http.StatusOK, w)
	})

	t.Run("identifier wins over upiId", func(t *testing.T) {
		auth := ucmocks.NewMockAuthUseCase(t)
		auth.EXPECT().Login(mock.Anything, "alice@ybl", "1234").Return(&usecase.AuthResult{
			Token: "jwt-token",
			User:  testUser(aliceID, "Alice", "alice@ybl", "9876543210", 0),
		}, nil).Once()

		h := NewAuthHandler(auth, logger.NewNoopLogger())
		r := newTestRouter("")
		r.POST("/api/auth/login", h.Login)

		w := doRequest(r, http.MethodPost, "/api/auth/login",
			map[string]string{"identifier": "alice@ybl", "upiId": "other@ybl", "password": "1234"})

		assertStatus(t, http.StatusOK, w)
	})

	t.Run("neither identifier nor upiId", func(t *testing.T) {
		auth := ucmocks.NewMockAuthUseCase(t)
		h := NewAuthHandler(auth, logger.NewNoopLogger())
		r := newTestRouter("")
		r.POST("/api/auth/login", h.Login)

		w := doRequest(r, http.MethodPost, "/api/auth/login", map[string]string{"password": "1234"})

		assertStatus(t, http.StatusBadRequest, w)
		resp := decodeError(t, w)
		require.NotEmpty(t, resp.Details)
		assert.Equal(t, "required_without", resp.Details[0].Type)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("returns the caller's account without credentials", func(t *testing.T) {
		auth := ucmocks.NewMockAuthUseCase(t)
		auth.EXPECT().Profile(mock.Anything, aliceID).
			Return(testUser(aliceID, "Alice", "alice@ybl", "9876543210", 123456), nil).Once()

		h := NewAuthHandler(auth, logger.NewNoopLogger())
		r := newTestRouter(aliceID)
		r.GET("/api/auth", h.Me)

		w := doRequest(r, http.MethodGet, "/api/auth", nil)

		assertStatus(t, http.StatusOK, w)
		var resp dto.CurrentUserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, aliceID, resp.UserID)
		assert.Equal(t, "1234.56", resp.Balance)
		assert.Len(t, resp.Categories, 5)
		assert.NotContains(t, w.Body.String(), "hash")
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("deleted account", func(t *testing.T) {
		auth := ucmocks.NewMockAuthUseCase(t)
		auth.EXPECT().Profile(mock.Anything, aliceID).Return(nil, errs.ErrUserNotFound).Once()

		h := NewAuthHandler(auth, logger.NewNoopLogger())
		r := newTestRouter(aliceID)
		r.GET("/api/auth", h.Me)

		w := doRequest(r, http.MethodGet, "/api/auth", nil)

		assertStatus(t, http.StatusNotFound, w)
	})
}
