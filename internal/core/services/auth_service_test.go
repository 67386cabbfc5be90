package services

import (
	"context"
	"testing"

	"shwe-topup/internal/adapters/persistence/models"
	"shwe-topup/internal/config"
	"shwe-topup/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "development",
		JWT: config.JWTConfig{
			Secret:           "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

func newTestAuthService() (*AuthService, *fakeUserRepo, *fakeRefreshTokenRepo) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeRefreshTokenRepo()
	return NewAuthService(userRepo, tokenRepo, testConfig()), userRepo, tokenRepo
}

func TestRegister(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	result, err := svc.Register(ctx, &RegisterInput{
		Name:     "Aung Aung",
		Email:    "  Aung@Example.COM ",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, "aung@example.com", result.User.Email)
	assert.Equal(t, models.RoleUser, result.User.Role)
	assert.Equal(t, float64(0), result.User.Credits)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	// Password is stored hashed
	stored := userRepo.users[result.User.ID]
	assert.NotEqual(t, "password123", stored.Password)
	assert.True(t, password.Verify("password123", stored.Password))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "First", Email: "dup@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{Name: "Second", Email: "DUP@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "Aung", Email: "aung@example.com", Password: "password123"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, &LoginInput{Email: "aung@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)

	_, err = svc.Login(ctx, &LoginInput{Email: "aung@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginInput{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginBannedUser(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	result, err := svc.Register(ctx, &RegisterInput{Name: "Banned", Email: "banned@example.com", Password: "password123"})
	require.NoError(t, err)

	userRepo.users[result.User.ID].IsBanned = true

	_, err = svc.Login(ctx, &LoginInput{Email: "banned@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrUserBanned)
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _, tokenRepo := newTestAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterInput{Name: "Aung", Email: "aung@example.com", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// Old token is revoked after rotation
	_, err = svc.RefreshToken(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// Both tokens live in the store, one revoked
	assert.Len(t, tokenRepo.tokens, 2)
}

func TestRefreshTokenInvalid(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.RefreshToken(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterInput{Name: "Aung", Email: "aung@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, registered.RefreshToken))

	_, err = svc.RefreshToken(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestLogoutAll(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterInput{Name: "Aung", Email: "aung@example.com", Password: "password123"})
	require.NoError(t, err)

	loggedIn, err := svc.Login(ctx, &LoginInput{Email: "aung@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.LogoutAll(ctx, registered.User.ID))

	_, err = svc.RefreshToken(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
	_, err = svc.RefreshToken(ctx, loggedIn.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}
