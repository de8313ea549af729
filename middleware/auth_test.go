package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elegant-hotel/auth"
)

type fakeTokenStore struct {
	revoked map[string]bool
}

func (f *fakeTokenStore) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	f.revoked[tokenID] = true
	return nil
}

func (f *fakeTokenStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], nil
}

// brokenTokenStore simulates a revocation backend that is unreachable.
type brokenTokenStore struct{}

func (brokenTokenStore) Revoke(context.Context, string, time.Duration) error {
	return errors.New("connection refused")
}

func (brokenTokenStore) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func newTestRouter(jwtService *auth.JWTService, tokens auth.TokenStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protected := r.Group("/protected", RequireAuth(jwtService, tokens, nil))
	protected.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c)})
	})

	admin := r.Group("/admin", RequireAuth(jwtService, tokens, nil), RequireAdmin())
	admin.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func TestRequireAuthMissingToken(t *testing.T) {
	r := newTestRouter(auth.NewJWTService("test-secret"), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestRequireAuthInvalidToken(t *testing.T) {
	r := newTestRouter(auth.NewJWTService("test-secret"), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBearerToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	r := newTestRouter(jwtService, nil)

	token, err := jwtService.IssueToken(9, "guest@example.com", "customer")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":9}`, w.Body.String())
}

func TestRequireAuthCookieToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	r := newTestRouter(jwtService, nil)

	token, err := jwtService.IssueToken(3, "guest@example.com", "customer")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminForbiddenForCustomer(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	r := newTestRouter(jwtService, nil)

	token, err := jwtService.IssueToken(5, "guest@example.com", "customer")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Forbidden"}`, w.Body.String())
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	r := newTestRouter(jwtService, nil)

	token, err := jwtService.IssueToken(1, "admin@example.com", "admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthRevokedToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	store := &fakeTokenStore{revoked: map[string]bool{}}
	r := newTestRouter(jwtService, store)

	token, err := jwtService.IssueToken(5, "guest@example.com", "customer")
	require.NoError(t, err)

	claims, err := jwtService.VerifyToken(token)
	require.NoError(t, err)
	require.NoError(t, store.Revoke(context.Background(), claims.ID, time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthTokenStoreFailureFailsOpen(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	r := newTestRouter(jwtService, brokenTokenStore{})

	token, err := jwtService.IssueToken(7, "guest@example.com", "customer")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7}`, w.Body.String())
}
