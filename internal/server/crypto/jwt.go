// Package crypto contains the cryptographic primitives used by the server.
//
// In particular the package is responsible for:
//   - issuing and signing JWT access tokens;
//   - validating access tokens and resolving the subject;
//   - password hashing (see password.go).
package crypto

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	serr "github.com/pawzy-app/pawzy-backend/internal/shared/errors"
)

// JWTConfig describes the parameters for issuing JWT access tokens.
type JWTConfig struct {
	// Issuer is the iss claim (who issued the token).
	Issuer string
	// Audience is the aud claim (who the token is for).
	Audience string
	// SigningKey is the secret for HS256 signing.
	// Must be long and random.
	SigningKey string
	// AccessTTL is the lifetime of an access token.
	AccessTTL time.Duration
}

// NewAccessToken creates and signs a JWT access token for a user.
//
// The subject claim carries the user's email. The token contains the
// standard RegisteredClaims:
//   - iss (Issuer)
//   - aud (Audience)
//   - sub (email)
//   - iat (IssuedAt)
//   - exp (ExpiresAt)
//
// Signing algorithm is HS256.
func NewAccessToken(email string, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Audience:  []string{cfg.Audience},
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseAccessToken validates a token and returns its subject (the email).
//
// Every failure mode (bad structure, wrong signature, expired, wrong
// issuer/audience, empty subject) collapses into the single
// ErrUnauthorized so callers cannot leak why validation failed.
func ParseAccessToken(tokenStr string, cfg JWTConfig) (string, error) {
	claims := &jwt.RegisteredClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})
	if err != nil {
		return "", serr.ErrUnauthorized
	}

	if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
		return "", serr.ErrUnauthorized
	}

	if cfg.Audience != "" {
		ok := false
		for _, aud := range claims.Audience {
			if aud == cfg.Audience {
				ok = true
				break
			}
		}
		if !ok {
			return "", serr.ErrUnauthorized
		}
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return "", serr.ErrUnauthorized
	}

	return subject, nil
}
