package tests

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/pawzy-app/pawzy-backend/internal/server/config"
	"github.com/pawzy-app/pawzy-backend/internal/server/service"
	svcmocks "github.com/pawzy-app/pawzy-backend/internal/server/service/mocks"
)

// testConfig is the minimal valid config for the services.
func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Issuer:    "pawzy",
			Audience:  "pawzy-api",
			AccessTTL: time.Minute,
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
}

// newTestServices builds Services over mocked repositories.
func newTestServices(t *testing.T) (*service.Services, *svcmocks.MockUsersRepo, *svcmocks.MockPetsRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := svcmocks.NewMockUsersRepo(ctrl)
	pets := svcmocks.NewMockPetsRepo(ctrl)

	svc := service.NewServices(service.Repositories{
		Users: users,
		Pets:  pets,
	}, testConfig())

	return svc, users, pets
}
