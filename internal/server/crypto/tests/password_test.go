package tests

import (
	"strings"
	"testing"

	"github.com/pawzy-app/pawzy-backend/internal/server/crypto"
)

func testParams() crypto.Argon2Params {
	// small cost to keep tests fast
	return crypto.Argon2Params{
		Time:      1,
		MemoryKiB: 16 * 1024,
		Threads:   1,
		KeyLen:    32,
		SaltLen:   16,
	}
}

func TestHashPassword_Roundtrip(t *testing.T) {
	t.Parallel()

	encoded, err := crypto.HashPassword("secret1", testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(encoded, "argon2id$v=19$") {
		t.Fatalf("unexpected hash format: %q", encoded)
	}

	if !crypto.VerifyPassword("secret1", encoded) {
		t.Fatalf("expected password to verify")
	}
	if crypto.VerifyPassword("secret2", encoded) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestHashPassword_Empty(t *testing.T) {
	t.Parallel()

	if _, err := crypto.HashPassword("   ", testParams()); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	t.Parallel()

	a, err := crypto.HashPassword("secret1", testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := crypto.HashPassword("secret1", testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == b {
		t.Fatalf("expected different salts to produce different digests")
	}
}

// A malformed digest must read as "no match", never panic or error out.
func TestVerifyPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"not-a-hash",
		"argon2id$v=19$m=16384,t=1,p=1$salt",              // too few parts
		"bcrypt$v=19$m=16384,t=1,p=1$c2FsdA$aGFzaA",       // wrong algorithm
		"argon2id$v=19$bogus$c2FsdA$aGFzaA",               // bad params
		"argon2id$v=19$m=16384,t=1,p=1$!!not-b64!!$aGFzaA", // bad salt
		"argon2id$v=19$m=16384,t=1,p=1$c2FsdA$!!not-b64!!", // bad hash
	}

	for _, digest := range cases {
		if crypto.VerifyPassword("secret1", digest) {
			t.Fatalf("expected malformed digest %q to fail verification", digest)
		}
	}
}
