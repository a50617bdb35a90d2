// Package repository implements data access on top of the storage gateway.
// It contains no business logic: only SQL and error mapping.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/pawzy-app/pawzy-backend/internal/server/storage"
	serr "github.com/pawzy-app/pawzy-backend/internal/shared/errors"
)

type UsersRepository struct {
	pool storage.Pool
}

func NewUsersRepository(pool storage.Pool) *UsersRepository {
	return &UsersRepository{pool: pool}
}

// Create inserts a new user. Email uniqueness is enforced by the unique
// index on users.email; the resulting unique_violation is the single
// source of truth for "already registered" (no check-then-insert race).
func (r *UsersRepository) Create(ctx context.Context, email, passwordHash string) (uuid.UUID, time.Time, error) {
	db, err := r.pool.Get(ctx)
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}

	var (
		id        uuid.UUID
		createdAt time.Time
	)

	err = db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1,$2)
		 RETURNING id, created_at`,
		email, passwordHash,
	).Scan(&id, &createdAt)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return uuid.Nil, time.Time{}, serr.ErrAlreadyExists
			}
		}
		return uuid.Nil, time.Time{}, serr.ErrInternal
	}

	return id, createdAt, nil
}

// GetByEmail returns the user's id and password hash. Email matching is
// case-sensitive.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (uuid.UUID, string, error) {
	db, err := r.pool.Get(ctx)
	if err != nil {
		return uuid.Nil, "", err
	}

	var (
		id   uuid.UUID
		hash string
	)

	err = db.QueryRowContext(ctx,
		`SELECT id, password_hash FROM users WHERE email=$1`,
		email,
	).Scan(&id, &hash)

	if err != nil {
		if err == sql.ErrNoRows {
			return uuid.Nil, "", serr.ErrNotFound
		}
		return uuid.Nil, "", serr.ErrInternal
	}

	return id, hash, nil
}
