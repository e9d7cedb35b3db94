package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	errs "github.com/paywise/paywise-api/internal/domain/error"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
)

const (
	callerIDKey = "callerId"
	claimsKey   = "claims"

	// AuthTokenHeader is the legacy token header accepted next to Authorization
	AuthTokenHeader = "x-auth-token"
)

// Auth rejects requests without a valid access token and stores the caller identity
func Auth(auth usecase.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			RespondWithError(c, logger, errs.ErrMissingToken)
			return
		}

		claims, err := auth.Authenticate(token)
		if err != nil {
			RespondWithError(c, logger, errs.ErrInvalidToken)
			return
		}

		c.Set(callerIDKey, claims.UserID)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CallerID returns the id of the authenticated user, or an empty string
func CallerID(c *gin.Context) string {
	return c.GetString(callerIDKey)
}

// SetCallerID stores an authenticated caller on the context
func SetCallerID(c *gin.Context, id string) {
	c.Set(callerIDKey, id)
}

func extractToken(c *gin.Context) string {
	if token := strings.TrimSpace(c.GetHeader(AuthTokenHeader)); token != "" {
		return token
	}
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
