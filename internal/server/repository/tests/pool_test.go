package tests

import (
	"context"
	"database/sql"

	serr "github.com/pawzy-app/pawzy-backend/internal/shared/errors"
)

// stubPool hands the repositories a fixed sqlmock handle.
type stubPool struct {
	db *sql.DB
}

func (p stubPool) Get(ctx context.Context) (*sql.DB, error) {
	return p.db, nil
}

// deadPool simulates a gateway that could not re-establish a connection.
type deadPool struct{}

func (deadPool) Get(ctx context.Context) (*sql.DB, error) {
	return nil, serr.ErrNotConnected
}
