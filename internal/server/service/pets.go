package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/pawzy-app/pawzy-backend/internal/server/models"
	serr "github.com/pawzy-app/pawzy-backend/internal/shared/errors"
)

// field bounds in characters, applied after trimming
const (
	maxNameLen  = 50
	maxTypeLen  = 30
	maxNotesLen = 500
	maxAge      = 50
)

// PetsService implements the business logic for pet records.
// The service:
//   - validates input shapes before persistence;
//   - scopes every read to the authenticated owner;
//   - knows nothing about HTTP or SQL.
type PetsService struct {
	repo PetsRepo
}

// NewPetsService creates a new PetsService.
func NewPetsService(repo PetsRepo) *PetsService {
	return &PetsService{repo: repo}
}

// Create validates and stores a new pet owned by ownerEmail.
//
// Validations (all after trimming):
//   - name non-empty, at most 50 chars;
//   - type non-empty, at most 30 chars;
//   - age within [0, 50];
//   - notes optional, at most 500 chars.
//
// Errors:
//   - ValidationError naming the offending field;
//   - ErrInternal — storage failure.
func (s *PetsService) Create(
	ctx context.Context,
	ownerEmail string,
	name string,
	petType string,
	age int,
	notes *string,
) (models.Pet, error) {

	name = strings.TrimSpace(name)
	petType = strings.TrimSpace(petType)

	if name == "" {
		return models.Pet{}, serr.NewValidationError("name", "must not be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return models.Pet{}, serr.NewValidationError("name", "must be at most 50 characters")
	}
	if petType == "" {
		return models.Pet{}, serr.NewValidationError("type", "must not be empty")
	}
	if utf8.RuneCountInString(petType) > maxTypeLen {
		return models.Pet{}, serr.NewValidationError("type", "must be at most 30 characters")
	}
	if age < 0 || age > maxAge {
		return models.Pet{}, serr.NewValidationError("age", "must be between 0 and 50")
	}
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		if utf8.RuneCountInString(trimmed) > maxNotesLen {
			return models.Pet{}, serr.NewValidationError("notes", "must be at most 500 characters")
		}
		notes = &trimmed
	}

	id, createdAt, err := s.repo.Create(ctx, ownerEmail, name, petType, age, notes)
	if err != nil {
		return models.Pet{}, err
	}

	return models.Pet{
		ID:         id,
		Name:       name,
		Type:       petType,
		Age:        age,
		Notes:      notes,
		OwnerEmail: ownerEmail,
		CreatedAt:  createdAt,
	}, nil
}

// List returns the pets owned by ownerEmail, oldest first.
// Pets of other users are never visible here: the repository applies the
// ownership filter in the query itself.
func (s *PetsService) List(ctx context.Context, ownerEmail string) ([]models.Pet, error) {
	return s.repo.ListByOwner(ctx, ownerEmail)
}
