package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.IssueToken(42, "guest@example.com", "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "guest@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.NotEmpty(t, claims.ID, "jti must be set for revocation")

	require.NotNil(t, claims.ExpiresAt)
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, TokenExpiry-time.Minute)
	assert.LessOrEqual(t, remaining, TokenExpiry)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").IssueToken(1, "a@example.com", "admin")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b").VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	secret := "test-secret"
	claims := &Claims{
		UserID: 7,
		Email:  "late@example.com",
		Role:   "customer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewJWTService(secret).VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenGarbage(t *testing.T) {
	_, err := NewJWTService("test-secret").VerifyToken("not-a-token")
	assert.Error(t, err)
}
