package tests

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/pawzy-app/pawzy-backend/internal/server/api"
	"github.com/pawzy-app/pawzy-backend/internal/server/config"
	"github.com/pawzy-app/pawzy-backend/internal/server/crypto"
	"github.com/pawzy-app/pawzy-backend/internal/server/middleware"
	"github.com/pawzy-app/pawzy-backend/internal/server/service"
	svcmocks "github.com/pawzy-app/pawzy-backend/internal/server/service/mocks"
	"github.com/pawzy-app/pawzy-backend/internal/shared/logger"
)

// NewTestHandler builds a Handler over mocked repositories via dependency
// injection.
func NewTestHandler(t *testing.T) (*api.Handler, *svcmocks.MockUsersRepo, *svcmocks.MockPetsRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := svcmocks.NewMockUsersRepo(ctrl)
	pets := svcmocks.NewMockPetsRepo(ctrl)

	cfg := &config.Config{
		Auth: config.AuthConfig{
			Issuer:    "pawzy",
			Audience:  "pawzy-api",
			AccessTTL: 1 * time.Minute,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "supersecretkeysupersecretkey123456", // >= 32
			},
		},
		Password: config.PasswordConfig{
			Argon2: config.Argon2Config{
				Time:      1,
				MemoryKiB: 16 * 1024,
				Threads:   1,
				KeyLen:    32,
				SaltLen:   16,
			},
		},
	}

	svc := service.NewServices(service.Repositories{
		Users: users,
		Pets:  pets,
	}, cfg)

	verifier := middleware.NewJWTVerifier(crypto.JWTConfig{
		Issuer:     cfg.Auth.Issuer,
		Audience:   cfg.Auth.Audience,
		SigningKey: cfg.Auth.JWT.SigningKey,
		AccessTTL:  cfg.Auth.AccessTTL,
	})
	log := logger.NewHTTPLogger()

	return api.NewHandler(svc, log, verifier), users, pets
}
