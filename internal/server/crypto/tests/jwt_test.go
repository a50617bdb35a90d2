package tests

import (
	"errors"
	"testing"
	"time"

	"github.com/pawzy-app/pawzy-backend/internal/server/crypto"
	serr "github.com/pawzy-app/pawzy-backend/internal/shared/errors"
)

func testJWTConfig() crypto.JWTConfig {
	return crypto.JWTConfig{
		Issuer:     "pawzy",
		Audience:   "pawzy-api",
		SigningKey: "supersecretkeysupersecretkey123456", // >= 32
		AccessTTL:  time.Minute,
	}
}

func TestAccessToken_Roundtrip(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()

	token, err := crypto.NewAccessToken("a@x.com", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	subject, err := crypto.ParseAccessToken(token, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "a@x.com" {
		t.Fatalf("expected subject a@x.com, got %q", subject)
	}
}

// A token issued with ttl=0 is already expired and must be rejected.
func TestAccessToken_ZeroTTL(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	cfg.AccessTTL = 0

	token, err := crypto.NewAccessToken("a@x.com", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := crypto.ParseAccessToken(token, testJWTConfig()); !errors.Is(err, serr.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAccessToken_Expired(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	cfg.AccessTTL = -time.Hour

	token, err := crypto.NewAccessToken("a@x.com", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := crypto.ParseAccessToken(token, testJWTConfig()); !errors.Is(err, serr.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

// Every failure mode collapses into the same ErrUnauthorized.
func TestParseAccessToken_UniformError(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()

	otherKey := testJWTConfig()
	otherKey.SigningKey = "anothersecretkeyanothersecretkey12"

	wrongIssuer := testJWTConfig()
	wrongIssuer.Issuer = "someone-else"

	wrongAudience := testJWTConfig()
	wrongAudience.Audience = "other-api"

	forged, err := crypto.NewAccessToken("a@x.com", otherKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	badIss, err := crypto.NewAccessToken("a@x.com", wrongIssuer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	badAud, err := crypto.NewAccessToken("a@x.com", wrongAudience)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	emptySub, err := crypto.NewAccessToken("", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]string{
		"garbage":         "not.a.token",
		"empty":           "",
		"wrong signature": forged,
		"wrong issuer":    badIss,
		"wrong audience":  badAud,
		"empty subject":   emptySub,
	}

	for name, token := range cases {
		if _, err := crypto.ParseAccessToken(token, cfg); err != serr.ErrUnauthorized {
			t.Fatalf("%s: expected uniform ErrUnauthorized, got %v", name, err)
		}
	}
}
