package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campoflow/fieldops-api/internal/config"
)

func newTestManager(t *testing.T, secret string, ttl int) *TokenManager {
	t.Helper()
	m, err := NewTokenManager(&config.AuthConfig{
		JWTSecret: secret,
		TokenTTL:  ttl,
		Issuer:    "fieldops-test",
	})
	require.NoError(t, err)
	return m
}

func TestTokenManager_IssueAndValidate(t *testing.T) {
	m := newTestManager(t, "test-secret", 3600)
	userID := uuid.New()

	token, expiresAt, err := m.Issue(userID, "operador", "Operador de Campo")
	require.NoError(t, err)
	assert.False(t, expiresAt.IsZero())

	userCtx, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, userCtx.UserID)
	assert.Equal(t, "operador", userCtx.Username)
	assert.Equal(t, "Operador de Campo", userCtx.DisplayName)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	m := newTestManager(t, "test-secret", -60)

	token, _, err := m.Issue(uuid.New(), "operador", "")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := newTestManager(t, "secret-a", 3600)
	verifier := newTestManager(t, "secret-b", 3600)

	token, _, err := issuer.Issue(uuid.New(), "operador", "")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	_, err := NewTokenManager(&config.AuthConfig{})
	assert.Error(t, err)
}
