package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/paywise/paywise-api/internal/domain/error"
	"github.com/paywise/paywise-api/internal/domain/port/core"
)

// Claims is the JWT payload of an access token
type Claims struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	UpiID       string `json:"upiId"`
	PhoneNumber string `json:"phoneNumber"`
	jwt.RegisteredClaims
}

// JWTIssuer signs and verifies HS256 access tokens
type JWTIssuer struct {
	secret       []byte
	ttl          time.Duration
	timeProvider core.TimeProvider
}

// NewJWTIssuer creates a token issuer
func NewJWTIssuer(secret string, ttl time.Duration, timeProvider core.TimeProvider) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, timeProvider: timeProvider}, nil
}

var _ core.TokenIssuer = (*JWTIssuer)(nil)

// Issue signs a token for the given identity
func (i *JWTIssuer) Issue(claims core.TokenClaims) (string, error) {
	now := i.timeProvider.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ID:          claims.UserID,
		Name:        claims.Name,
		UpiID:       claims.UpiID,
		PhoneNumber: claims.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses token and returns its identity
func (i *JWTIssuer) Verify(token string) (*core.TokenClaims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.timeProvider.Now),
	)
	if err != nil || !parsed.Valid {
		return nil, errs.ErrInvalidToken
	}
	if claims.ID == "" {
		return nil, errs.ErrInvalidToken
	}

	return &core.TokenClaims{
		UserID: claims.ID,
		Name:   claims.Name,
		UpiID:  claims.UpiID,
		Phone:  claims.PhoneNumber,
	}, nil
}
