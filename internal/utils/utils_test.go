package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecclesia-hq/ecclesia_backend/internal/utils"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100", "100.00"},
		{"96.291", "96.29"},
		{"96.295", "96.30"},
		{"0.0006666666666666", "0.00"},
		{"-5.555", "-5.56"},
	}
	for _, tt := range tests {
		got := utils.Round2(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got.StringFixed(2), "Round2(%s)", tt.in)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("supersecret")
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", hash)

	assert.True(t, utils.CheckPasswordHash("supersecret", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
	assert.False(t, utils.CheckPasswordHash("supersecret", "not-a-hash"))
}

func TestGenerateJWTCarriesSubjectAndIssuer(t *testing.T) {
	tokenStr, err := utils.GenerateJWT("u42", "test-secret", time.Hour, "ecclesia-test")
	require.NoError(t, err)

	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, "u42", claims.Subject)
	assert.Equal(t, "ecclesia-test", claims.Issuer)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestGenerateSecureRandomString(t *testing.T) {
	a, err := utils.GenerateSecureRandomString(16)
	require.NoError(t, err)
	b, err := utils.GenerateSecureRandomString(16)
	require.NoError(t, err)

	assert.Len(t, a, 32) // hex doubles the byte length
	assert.NotEqual(t, a, b)
}
