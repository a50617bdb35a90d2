// Package middleware contains the HTTP middleware of the server.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pawzy-app/pawzy-backend/internal/server/crypto"
	serr "github.com/pawzy-app/pawzy-backend/internal/shared/errors"
)

// ctxKey is the key type for values stored in context.Context.
// A dedicated type prevents key collisions between packages.
type ctxKey string

// userEmailKey is the context key holding the authenticated user's email.
const userEmailKey ctxKey = "user_email"

// JWTVerifier encapsulates access-token verification for the HTTP layer.
//
// Used by the middleware to:
//   - check the token signature and claims
//   - resolve the caller's email from the subject claim
type JWTVerifier struct {
	cfg crypto.JWTConfig
}

// NewJWTVerifier creates a JWTVerifier with the given parameters.
func NewJWTVerifier(cfg crypto.JWTConfig) *JWTVerifier {
	return &JWTVerifier{cfg: cfg}
}

// UserEmailFromContext extracts the authenticated user's email.
//
// Returns:
//   - the email
//   - false if the request is not authenticated
func UserEmailFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(userEmailKey)
	s, ok := v.(string)
	return s, ok
}

// AuthMiddleware returns an HTTP middleware verifying JWT access tokens.
//
// The middleware:
//   - expects a header Authorization: Bearer <token>
//   - validates signature and claims
//   - stores the subject email in the context.Context
//
// Every failure (missing header, bad signature, expired token) yields the
// same 401 response; the reason is deliberately not disclosed.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				http.Error(w, serr.ErrUnauthorized.Error(), http.StatusUnauthorized)
				return
			}

			email, err := crypto.ParseAccessToken(tokenStr, v.cfg)
			if err != nil {
				http.Error(w, serr.ErrUnauthorized.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractBearer extracts the token from the Authorization header.
//
// Expected format:
//
//	Authorization: Bearer <token>
//
// Returns an empty string for any other format.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
