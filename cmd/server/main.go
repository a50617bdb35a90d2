// @title           Pawzy Pet Management API
// @version         1.0
// @description     Backend API for the Pawzy pet management application.
// @description     Provides user authentication and per-user pet records.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// Package main is the entry point of the Pawzy backend server.
//
// The package owns the lifecycle of the HTTP server:
//   - loading environment variables from .env (when present);
//   - loading the server configuration from ./configs/server.yaml;
//   - connecting the storage gateway (fatal on failure: the server must
//     not serve traffic without a database);
//   - constructing repositories, services, middleware and handlers;
//   - starting the HTTP(S) server with the configured timeouts;
//   - handling termination signals (SIGINT, SIGTERM, SIGQUIT);
//   - graceful shutdown with a configured timeout.
//
// The package contains no business logic. The HTTP API lives in
// internal/server/api and is documented with OpenAPI (Swagger).
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/pawzy-app/pawzy-backend/internal/server/api"
	"github.com/pawzy-app/pawzy-backend/internal/server/config"
	"github.com/pawzy-app/pawzy-backend/internal/server/crypto"
	"github.com/pawzy-app/pawzy-backend/internal/server/middleware"
	h "github.com/pawzy-app/pawzy-backend/internal/server/net/http"
	"github.com/pawzy-app/pawzy-backend/internal/server/repository"
	"github.com/pawzy-app/pawzy-backend/internal/server/service"
	"github.com/pawzy-app/pawzy-backend/internal/server/storage"
	"github.com/pawzy-app/pawzy-backend/internal/shared/logger"

	_ "github.com/pawzy-app/pawzy-backend/swagger/docs"
)

func main() {
	httpLogger := logger.NewHTTPLogger()
	sugar := httpLogger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		sugar.Fatal(err)
	}

	// connect the database; startup failure is fatal
	gateway := storage.NewGateway(cfg.DB, cfg.Migrations, httpLogger)
	if err := gateway.Connect(context.Background()); err != nil {
		sugar.Fatal(err)
	}
	defer gateway.Close()

	// repositories
	usersRepo := repository.NewUsersRepository(gateway)
	petsRepo := repository.NewPetsRepository(gateway)
	repos := service.Repositories{
		Users: usersRepo,
		Pets:  petsRepo,
	}
	// services
	svc := service.NewServices(repos, cfg)
	// jwt verification
	verifier := middleware.NewJWTVerifier(crypto.JWTConfig{
		Issuer:     cfg.Auth.Issuer,
		Audience:   cfg.Auth.Audience,
		SigningKey: cfg.Auth.JWT.SigningKey,
		AccessTTL:  cfg.Auth.AccessTTL,
	})
	// handlers and router
	handler := api.NewHandler(svc, httpLogger, verifier)
	router := h.NewRouter(handler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// run the server
	g.Go(func() error {
		sugar.Infof("server started on %s", addr)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown with the configured timeout
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
