// Package storage owns the database connection of the server.
//
// The package provides a Gateway which:
//   - opens the PostgreSQL connection pool (pgx driver) with bounded timeouts;
//   - verifies liveness with Ping before serving traffic;
//   - applies migrations (golang-migrate) at startup;
//   - lazily re-establishes the connection when a request finds it dead.
//
// Unlike a package-level handle, the Gateway is an explicitly owned value
// that main constructs once and injects into the repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/pawzy-app/pawzy-backend/internal/server/config"
	serr "github.com/pawzy-app/pawzy-backend/internal/shared/errors"
	"github.com/pawzy-app/pawzy-backend/internal/shared/logger"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// Pool is what the repositories need from the Gateway: a live *sql.DB.
// Get performs the liveness check and the one reconnect attempt, so every
// data access is self-healing against transient connection loss.
type Pool interface {
	Get(ctx context.Context) (*sql.DB, error)
}

// Gateway is the single point of access to the database.
//
// The mutex guards the connection handle: concurrent requests that observe
// the same dead connection wait on it instead of racing to open duplicates.
type Gateway struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool

	cfg config.DBConfig
	mig config.MigrationsConfig
	log *logger.HTTPLogger
}

// NewGateway creates a Gateway. No connection is opened yet; call Connect.
func NewGateway(cfg config.DBConfig, mig config.MigrationsConfig, log *logger.HTTPLogger) *Gateway {
	return &Gateway{cfg: cfg, mig: mig, log: log}
}

// Connect establishes the connection pool, verifies it with Ping and runs
// migrations. A failure here is fatal at startup: the server must not serve
// traffic without a database.
//
// On failure any partial state is cleared and ErrConnection is returned.
func (g *Gateway) Connect(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return serr.ErrNotConnected
	}

	if err := g.openLocked(ctx); err != nil {
		return err
	}

	if g.mig.Enabled {
		if err := g.migrateLocked(); err != nil {
			g.db.Close()
			g.db = nil
			return err
		}
	}

	return nil
}

// Get returns the live connection handle.
//
// Under the mutex it pings the existing connection; a dead one is discarded
// and re-established once. If no handle becomes live, ErrNotConnected is
// returned and the caller fails the request.
func (g *Gateway) Get(ctx context.Context) (*sql.DB, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil, serr.ErrNotConnected
	}

	if g.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, g.cfg.PingTimeout)
		err := g.db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return g.db, nil
		}

		g.log.Sugar().Warnf("database connection lost, reconnecting: %v", err)
		g.db.Close()
		g.db = nil
	}

	// migrations already ran at startup, the reconnect path skips them
	if err := g.openLocked(ctx); err != nil {
		return nil, serr.ErrNotConnected
	}

	g.log.Sugar().Info("database connection re-established")
	return g.db, nil
}

// Close releases the connection. Idempotent, safe to call when already
// closed. After Close the gateway never reconnects.
func (g *Gateway) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}
	g.closed = true

	if g.db != nil {
		g.db.Close()
		g.db = nil
		g.log.Sugar().Info("database connection closed")
	}
}

// openLocked opens and pings a new pool. Caller holds the mutex.
func (g *Gateway) openLocked(ctx context.Context) error {
	db, err := sql.Open("pgx", g.cfg.DSN)
	if err != nil {
		g.log.Sugar().Errorf("open database: %v", err)
		return fmt.Errorf("%w: %v", serr.ErrConnection, err)
	}

	db.SetMaxOpenConns(g.cfg.MaxOpenConns)
	db.SetMaxIdleConns(g.cfg.MaxIdleConns)
	db.SetConnMaxLifetime(g.cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(g.cfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, g.cfg.PingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		g.log.Sugar().Errorf("ping database: %v", err)
		db.Close()
		return fmt.Errorf("%w: %v", serr.ErrConnection, err)
	}

	g.db = db
	return nil
}

// migrateLocked applies pending migrations. Caller holds the mutex.
func (g *Gateway) migrateLocked() error {
	driver, err := postgres.WithInstance(g.db, &postgres.Config{})
	if err != nil {
		g.log.Sugar().Errorf("create migration driver: %v", err)
		return fmt.Errorf("%w: %v", serr.ErrConnection, err)
	}

	m, err := migrate.NewWithDatabaseInstance(g.mig.Path, "postgres", driver)
	if err != nil {
		g.log.Sugar().Errorf("create migrations: %v", err)
		return fmt.Errorf("%w: %v", serr.ErrConnection, err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		g.log.Sugar().Errorf("apply migrations: %v", err)
		return fmt.Errorf("%w: %v", serr.ErrConnection, err)
	}

	g.log.Sugar().Info("migrations applied successfully")
	return nil
}
