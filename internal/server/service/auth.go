package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pawzy-app/pawzy-backend/internal/server/config"
	"github.com/pawzy-app/pawzy-backend/internal/server/crypto"
	serr "github.com/pawzy-app/pawzy-backend/internal/shared/errors"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService implements registration and login.
//
// Responsibilities:
//   - validating registration input
//   - hashing and verifying passwords
//   - issuing access tokens whose subject is the user's email
//
// Emails are treated case-sensitively: "A@x.com" and "a@x.com" are two
// different accounts.
type AuthService struct {
	users UsersRepo

	pass crypto.Argon2Params
	jwt  crypto.JWTConfig
}

// NewAuthService creates an AuthService with dependencies and settings from
// the config.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		pass: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

// Register creates a new user and returns an access token for it.
//
// Validation:
//   - email must be present and syntactically valid
//   - password length must be >= 6
//
// Errors:
//   - ValidationError (satisfies ErrInvalidInput) for bad input
//   - ErrAlreadyExists if the email is taken
func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" || !emailRe.MatchString(email) {
		return "", serr.NewValidationError("email", "must be a valid email address")
	}
	// characters, not bytes
	if utf8.RuneCountInString(password) < 6 {
		return "", serr.NewValidationError("password", "must be at least 6 characters")
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return "", serr.ErrInternal
	}

	if _, _, err := s.users.Create(ctx, email, hash); err != nil {
		return "", err
	}

	access, err := crypto.NewAccessToken(email, s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}
	return access, nil
}

// Login authenticates a user and returns an access token.
//
// Behaviour:
//   - an unknown email and a wrong password produce the same error,
//     so the existence of an account is never disclosed
//
// Errors:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return "", serr.ErrInvalidInput
	}

	_, hash, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// do not reveal whether the email exists
		if errors.Is(err, serr.ErrNotFound) {
			return "", serr.ErrInvalidCredentials
		}
		return "", err
	}

	if !crypto.VerifyPassword(password, hash) {
		return "", serr.ErrInvalidCredentials
	}

	access, err := crypto.NewAccessToken(email, s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}
	return access, nil
}
