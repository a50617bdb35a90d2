// Package http implements the HTTP routing layer of the Pawzy server.
//
// The package is responsible for:
//   - registering routes and configuring the router (chi);
//   - request logging and CORS for all endpoints;
//   - JWT access-token verification on the protected group.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pawzy-app/pawzy-backend/internal/server/api"
	"github.com/pawzy-app/pawzy-backend/internal/server/middleware"
)

// NewRouter creates and configures the server's HTTP router.
//
// The router uses chi.Router and registers:
//   - the public health and auth endpoints;
//   - the logging middleware for every request;
//   - the JWT-protected /pets group.
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// log every request
	r.Use(middleware.LoggerMiddleware(h.Log))
	// the API is consumed by a browser frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// public paths
	r.Get("/health", h.Health)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})
	// protected paths
	r.Group(func(r chi.Router) {
		// access token check
		r.Use(h.Verifier.AuthMiddleware())
		r.Route("/pets", func(r chi.Router) {
			r.Post("/", h.CreatePet) // create a pet
			r.Get("/", h.ListPets)   // list the caller's pets
		})
	})

	return r
}
