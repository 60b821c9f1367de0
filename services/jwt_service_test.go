package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateAdminJWT("admin-1", "ops@maplenest.ca")
	require.NoError(t, err)

	claims, err := svc.VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "ops@maplenest.ca", claims.Email)
	assert.Equal(t, tokenIssuer, claims.Issuer)
	assert.Equal(t, "admin-1", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTRejects(t *testing.T) {
	svc := NewJWTService("test-secret")

	_, err := svc.GenerateAdminJWT("", "ops@maplenest.ca")
	assert.Error(t, err)

	t.Run("expired", func(t *testing.T) {
		issued := NewJWTService("test-secret")
		issued.now = func() time.Time { return time.Now().Add(-TokenTTL - time.Hour) }
		token, err := issued.GenerateAdminJWT("admin-1", "ops@maplenest.ca")
		require.NoError(t, err)

		_, err = svc.VerifyAdminJWT(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewJWTService("other-secret").GenerateAdminJWT("admin-1", "ops@maplenest.ca")
		require.NoError(t, err)

		_, err = svc.VerifyAdminJWT(token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := AdminJWTClaims{
			AdminID: "admin-1",
			Email:   "ops@maplenest.ca",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.VerifyAdminJWT(token)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("missing claims", func(t *testing.T) {
		claims := AdminJWTClaims{RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.VerifyAdminJWT(token)
		assert.ErrorIs(t, err, ErrMissingClaims)
	})

	t.Run("unsigned", func(t *testing.T) {
		claims := AdminJWTClaims{
			AdminID:          "admin-1",
			Email:            "ops@maplenest.ca",
			RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.VerifyAdminJWT(token)
		assert.Error(t, err)
	})
}

func TestInitJWTServiceRequiresSecret(t *testing.T) {
	assert.ErrorIs(t, InitJWTService(""), ErrEmptySecret)
}

func TestAdminPasswords(t *testing.T) {
	svc := &AdminAuthService{cost: 4}
	hash, err := svc.HashPassword("maple-syrup-42")
	require.NoError(t, err)

	assert.True(t, svc.VerifyPassword(hash, "maple-syrup-42"))
	assert.False(t, svc.VerifyPassword(hash, "maple-syrup-43"))
	assert.False(t, svc.ValidatePassword("short"))
	assert.True(t, svc.ValidatePassword("eightchr"))
}
