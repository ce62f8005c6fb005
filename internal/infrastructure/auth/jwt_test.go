package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/backend/internal/infrastructure/config"
)

func newTestService(expiration time.Duration) *TokenService {
	return NewTokenService(config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests-only",
		Expiration: expiration,
	})
}

func TestGenerateAndVerify(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.Generate("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.Generate("alice")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewTokenService(config.JWTConfig{
		Secret:     "a-completely-different-secret-key",
		Expiration: time.Hour,
	})

	token, err := svc.Generate("alice")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	svc := newTestService(time.Hour)

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMissingSubject(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.Generate("")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
