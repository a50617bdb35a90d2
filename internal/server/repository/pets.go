package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pawzy-app/pawzy-backend/internal/server/models"
	"github.com/pawzy-app/pawzy-backend/internal/server/storage"
	serr "github.com/pawzy-app/pawzy-backend/internal/shared/errors"
)

// PetsRepository implements pet persistence (PostgreSQL).
type PetsRepository struct {
	pool storage.Pool
}

// NewPetsRepository creates a new PetsRepository.
func NewPetsRepository(pool storage.Pool) *PetsRepository {
	return &PetsRepository{pool: pool}
}

// Create stores a new pet for ownerEmail.
//
// Returns:
//   - id        — UUID assigned by the database
//   - createdAt — server-side creation time
//
// Errors:
//   - ErrInternal — database failure
func (r *PetsRepository) Create(
	ctx context.Context,
	ownerEmail string,
	name string,
	petType string,
	age int,
	notes *string,
) (uuid.UUID, time.Time, error) {

	db, err := r.pool.Get(ctx)
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}

	var (
		id        uuid.UUID
		createdAt time.Time
	)

	err = db.QueryRowContext(ctx, `
		INSERT INTO pets (name, type, age, notes, owner_email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`,
		name,
		petType,
		age,
		notes,
		ownerEmail,
	).Scan(&id, &createdAt)

	if err != nil {
		return uuid.Nil, time.Time{}, serr.ErrInternal
	}

	return id, createdAt, nil
}

// ListByOwner returns all pets whose owner is ownerEmail, oldest first.
// The ownership filter lives in SQL so no other user's record can leak.
func (r *PetsRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]models.Pet, error) {
	db, err := r.pool.Get(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, name, type, age, notes, created_at
		FROM pets
		WHERE owner_email = $1
		ORDER BY created_at ASC
	`, ownerEmail)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	pets := make([]models.Pet, 0)
	for rows.Next() {
		var p models.Pet
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Age, &p.Notes, &p.CreatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		p.OwnerEmail = ownerEmail
		pets = append(pets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return pets, nil
}
