package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret        = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(42, "aung@example.com", "Aung Aung", "user", testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "aung@example.com", claims.Email)
	assert.Equal(t, "Aung Aung", claims.Name)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "shwe-topup", claims.Issuer)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(1, "a@example.com", "A", "user", testSecret, 15)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "wrong-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken(1, "a@example.com", "A", "user", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestAccessTokenGarbage(t *testing.T) {
	_, err := ValidateAccessToken("not.a.jwt", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(7, "token-id-123", testRefreshSecret, 7)
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(token, testRefreshSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "token-id-123", claims.TokenID)
}

func TestRefreshTokenNotValidAsAccessSecret(t *testing.T) {
	token, err := GenerateRefreshToken(7, "token-id-123", testRefreshSecret, 7)
	require.NoError(t, err)

	_, err = ValidateRefreshToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGetExpiryTime(t *testing.T) {
	expiry := GetExpiryTime(7)
	expected := time.Now().Add(7 * 24 * time.Hour)

	assert.WithinDuration(t, expected, expiry, time.Minute)
}
