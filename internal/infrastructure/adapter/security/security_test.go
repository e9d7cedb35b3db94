package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/paywise/paywise-api/internal/domain/error"
	"github.com/paywise/paywise-api/internal/domain/port/core"
	coremocks "github.com/paywise/paywise-api/mocks/port/core"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
	assert.True(t, h.Compare(hash, "secret"))
	assert.False(t, h.Compare(hash, "Secret"))
	assert.False(t, h.Compare("not-a-hash", "secret"))
}

func TestNewBcryptHasher_InvalidCost(t *testing.T) {
	h := NewBcryptHasher(100).(*BcryptHasher)
	assert.Equal(t, 10, h.cost)
}

func TestJWTIssuer(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	identity := core.TokenClaims{UserID: "u-1", Name: "Alice", UpiID: "alice@ybl", Phone: "9000000001"}

	newIssuer := func(t *testing.T, now time.Time) *JWTIssuer {
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(now).Maybe()
		issuer, err := NewJWTIssuer("secret", time.Hour, clock)
		require.NoError(t, err)
		return issuer
	}

	t.Run("Round trip", func(t *testing.T) {
		issuer := newIssuer(t, issuedAt)
		token, err := issuer.Issue(identity)
		require.NoError(t, err)

		claims, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, identity, *claims)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := newIssuer(t, issuedAt).Issue(identity)
		require.NoError(t, err)

		_, err = newIssuer(t, issuedAt.Add(2*time.Hour)).Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(issuedAt).Maybe()
		other, err := NewJWTIssuer("other", time.Hour, clock)
		require.NoError(t, err)
		token, err := other.Issue(identity)
		require.NoError(t, err)

		_, err = newIssuer(t, issuedAt).Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Other algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{ID: "u-1"}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = newIssuer(t, issuedAt).Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := newIssuer(t, issuedAt).Verify("not.a.token")
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Constructor validation", func(t *testing.T) {
		_, err := NewJWTIssuer("", time.Hour, nil)
		assert.Error(t, err)
		_, err = NewJWTIssuer("s", 0, nil)
		assert.Error(t, err)
	})
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.NewID(), g.NewID()

	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}
