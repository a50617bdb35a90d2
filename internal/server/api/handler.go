// Package api implements the HTTP layer of the Pawzy server.
//
// The package is responsible for:
//   - handling incoming requests and producing responses (JSON, statuses);
//   - mapping domain errors (service/repository) to HTTP codes and messages;
//   - keeping internal failure detail out of client responses.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/pawzy-app/pawzy-backend/internal/server/middleware"
	"github.com/pawzy-app/pawzy-backend/internal/server/service"
	"github.com/pawzy-app/pawzy-backend/internal/shared/logger"
)

// Every response body is JSON; the header values live here for convenience.
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler aggregates the dependencies of the HTTP layer.
//
// Handler holds:
//   - Svc: the service layer (business logic);
//   - Log: logger for events and errors;
//   - Verifier: JWT verification middleware.
//
// Its methods are registered by the router as request handlers.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
	}
}

// ErrorResponse is the standard API error format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError writes an error response in the standard format.
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: err.Error(),
	})
}
