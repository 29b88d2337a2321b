package auth

import (
	"car-chat/domain"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const identityKey contextKey = "identity"

// AccessTokenParam is the query parameter browser websocket clients use,
// since they cannot set an Authorization header on the upgrade request.
const AccessTokenParam = "access_token"

// Identity is the verified caller of a request.
type Identity struct {
	UserID string
	Role   domain.Role
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok && id.UserID != ""
}

// TokenFromRequest reads a bearer token from the Authorization header, then
// from the access_token query parameter.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return r.URL.Query().Get(AccessTokenParam)
}

// Authenticate resolves the identity behind r, if any.
func (tm *TokenManager) Authenticate(r *http.Request) (Identity, bool) {
	raw := TokenFromRequest(r)
	if raw == "" {
		return Identity{}, false
	}
	claims, err := tm.Validate(raw)
	if err != nil {
		return Identity{}, false
	}
	return Identity{UserID: claims.UserID, Role: claims.Role}, true
}

// Middleware rejects requests without a valid token with 401 and stores the
// identity in the request context for the next handler.
func (tm *TokenManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := tm.Authenticate(r)
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, "invalid or missing token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}
