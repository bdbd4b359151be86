package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campoflow/fieldops-api/internal/auth"
	"github.com/campoflow/fieldops-api/internal/config"
	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/repository"
	"github.com/campoflow/fieldops-api/internal/service"
)

func newAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	db := setupTestDB(t)

	tokens, err := auth.NewTokenManager(&config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  3600,
		Issuer:    "fieldops-test",
	})
	require.NoError(t, err)

	return service.NewAuthService(repository.NewUserRepository(db), tokens, testLogger())
}

func TestAuthServiceLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateUser(ctx, "operador", "Operador Painel", "senha-forte"))

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, &domain.LoginRequest{Username: "operador", Password: "senha-forte"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.NotEmpty(t, resp.ExpiresAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &domain.LoginRequest{Username: "operador", Password: "errada"})
		assert.ErrorIs(t, err, domain.ErrBadCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, &domain.LoginRequest{Username: "ninguem", Password: "senha"})
		assert.ErrorIs(t, err, domain.ErrBadCredentials)
	})

	t.Run("duplicate username", func(t *testing.T) {
		err := svc.CreateUser(ctx, "operador", "Outro", "outra-senha")
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})
}
