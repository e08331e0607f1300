package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventboard/eventboard-api/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "0123456789abcdef0123456789abcdef",
		TokenLifetimeMinutes: 60,
	}
}

func TestNewTokenService_ShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestTokenService_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	identity := Identity{UID: uuid.New(), Name: "Ann", Email: "ann@x.com"}

	token, err := svc.GenerateToken(context.Background(), identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, identity.UID, got.UID)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "ann@x.com", got.Email)
}

func TestTokenService_ValidateGarbage(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	impl := svc.(*hmacTokenService)

	// Issue a token in the past, beyond lifetime plus clock skew.
	issuedAt := time.Now().Add(-2 * time.Hour)
	impl.timeFunc = func() time.Time { return issuedAt }
	token, err := svc.GenerateToken(context.Background(), Identity{UID: uuid.New()})
	require.NoError(t, err)

	impl.timeFunc = time.Now
	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenService_WrongKey(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	verifier, err := NewTokenService(config.AuthConfig{
		JWTSecret:            "ffffffffffffffffffffffffffffffff",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	token, err := issuer.GenerateToken(context.Background(), Identity{UID: uuid.New()})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, hasher.Compare(hash, "secret1"))
	assert.Error(t, hasher.Compare(hash, "wrong"))
}
