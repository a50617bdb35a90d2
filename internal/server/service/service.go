// Package service contains the business logic of the application.
// It is the layer between the HTTP handlers (api) and persistence (repository).
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pawzy-app/pawzy-backend/internal/server/config"
	"github.com/pawzy-app/pawzy-backend/internal/server/models"
)

// Repositories is the set of interfaces the service layer expects from the
// repository layer.
type Repositories struct {
	Users UsersRepo
	Pets  PetsRepo
}

// Services aggregates all application services.
type Services struct {
	Auth *AuthService
	Pets *PetsService
}

// NewServices assembles the application services.
// cfg supplies the hashing and token parameters for AuthService.
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth: NewAuthService(repos.Users, cfg),
		Pets: NewPetsService(repos.Pets),
	}
}

// UsersRepo is the users repository (needed for register/login).
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash string) (uuid.UUID, time.Time, error)
	GetByEmail(ctx context.Context, email string) (uuid.UUID, string, error)
}

// PetsRepo is the pets repository (create + owner-scoped listing).
type PetsRepo interface {
	Create(ctx context.Context, ownerEmail, name, petType string, age int, notes *string) (uuid.UUID, time.Time, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]models.Pet, error)
}
