// HTTP handlers for registration and login
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/pawzy-app/pawzy-backend/internal/shared/errors"
)

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for user login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the success response of both register and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register handles user registration.
//
// Responses:
//   - 201 Created: registered, body carries the access token;
//   - 400 Bad Request: bad JSON, invalid input, or email already registered;
//   - 500 Internal Server Error: anything else.
//
// @Summary      Register user
// @Description  Registers a new user and returns a bearer access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration request"
// @Success      201 {object} TokenResponse
// @Failure      400 {object} ErrorResponse "Invalid input or email already registered"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	access, err := h.Svc.Auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Sugar().Errorw("register failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	h.Log.Sugar().Infow("user registered", "email", req.Email)

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(TokenResponse{
		AccessToken: access,
		TokenType:   "bearer",
	})
}

// Login handles user login and access-token issuance.
//
// Responses:
//   - 200 OK: logged in, body carries the access token;
//   - 400 Bad Request: bad JSON or empty fields;
//   - 401 Unauthorized: wrong email or password (never says which);
//   - 500 Internal Server Error: anything else.
//
// @Summary      Login user
// @Description  Authenticates a user and returns a bearer access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} TokenResponse
// @Failure      400 {object} ErrorResponse "Invalid input"
// @Failure      401 {object} ErrorResponse "Incorrect email or password"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	access, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, err)
		default:
			h.Log.Sugar().Errorw("login failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	h.Log.Sugar().Infow("user logged in", "email", req.Email)

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(TokenResponse{
		AccessToken: access,
		TokenType:   "bearer",
	})
}
