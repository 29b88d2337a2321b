package auth

import (
	"car-chat/domain"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const secret = "test-secret-that-is-long-enough"

func TestTokenManager_RoundTrip(t *testing.T) {
	req := require.New(t)
	tm := NewTokenManager(secret, time.Hour)

	token, err := tm.Generate("user-1", domain.RoleCarOwner)
	req.NoError(err)

	claims, err := tm.Validate(token)
	req.NoError(err)
	req.Equal("user-1", claims.UserID)
	req.Equal(domain.RoleCarOwner, claims.Role)
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := NewTokenManager(secret, time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewTokenManager("another-secret-entirely", time.Hour).Generate("u", domain.RoleRenter)
		require.NoError(t, err)
		_, err = tm.Validate(token)
		require.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		past := NewTokenManager(secret, time.Minute)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := past.Generate("u", domain.RoleRenter)
		require.NoError(t, err)
		_, err = tm.Validate(token)
		require.Error(t, err)
	})

	t.Run("empty user", func(t *testing.T) {
		token, err := tm.Generate("", domain.RoleRenter)
		require.NoError(t, err)
		_, err = tm.Validate(token)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.Validate("not.a.jwt")
		require.Error(t, err)
	})
}

func TestTokenFromRequest(t *testing.T) {
	req := require.New(t)

	r := httptest.NewRequest(http.MethodGet, "/hubs/chat", nil)
	r.Header.Set("Authorization", "Bearer header-token")
	req.Equal("header-token", TokenFromRequest(r))

	r = httptest.NewRequest(http.MethodGet, "/hubs/chat?access_token=query-token", nil)
	req.Equal("query-token", TokenFromRequest(r))

	r = httptest.NewRequest(http.MethodGet, "/hubs/chat", nil)
	req.Empty(TokenFromRequest(r))
}

func TestMiddleware(t *testing.T) {
	tm := NewTokenManager(secret, time.Hour)
	var seen Identity
	handler := tm.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("should reject a request without token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/chat/status", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should inject the identity of a valid token", func(t *testing.T) {
		req := require.New(t)
		token, err := tm.Generate("admin-1", domain.RoleAdmin)
		req.NoError(err)

		r := httptest.NewRequest(http.MethodGet, "/api/chat/status", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)

		req.Equal(http.StatusNoContent, rec.Code)
		req.Equal(Identity{UserID: "admin-1", Role: domain.RoleAdmin}, seen)
	})
}
