// Server-side domain models
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity record. Created on registration, never mutated.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Pet is a record owned by exactly one user. The owner is set at creation
// from the authenticated caller and is never exposed in API responses.
type Pet struct {
	ID         uuid.UUID
	Name       string
	Type       string
	Age        int
	Notes      *string
	OwnerEmail string
	CreatedAt  time.Time
}
