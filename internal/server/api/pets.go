package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/pawzy-app/pawzy-backend/internal/server/middleware"
	"github.com/pawzy-app/pawzy-backend/internal/server/models"
	serr "github.com/pawzy-app/pawzy-backend/internal/shared/errors"
)

// CreatePetRequest is the request body for creating a pet.
type CreatePetRequest struct {
	Name  string  `json:"name"`            // 1..50 chars after trimming
	Type  string  `json:"type"`            // species, 1..30 chars after trimming
	Age   int     `json:"age"`             // 0..50
	Notes *string `json:"notes,omitempty"` // optional, up to 500 chars
}

// PetResponse is a single pet as returned by the API.
// The owner is deliberately absent: records are only ever visible to their
// owner, so the field would carry no information.
type PetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Age       int       `json:"age"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toPetResponse(p models.Pet) PetResponse {
	return PetResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Type:      p.Type,
		Age:       p.Age,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
}

// CreatePet creates a new pet for the authenticated user.
//
// The owner is always the token subject; it cannot be supplied or
// overridden by the request body.
//
// Responses:
//   - 201 Created: the created pet with its server-assigned id;
//   - 400 Bad Request: bad JSON or a validation failure;
//   - 401 Unauthorized: missing/invalid token;
//   - 500 Internal Server Error: anything else.
//
// @Summary      Create pet
// @Description  Creates a pet record owned by the authenticated user.
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePetRequest true "Create pet request"
// @Success      201 {object} PetResponse
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /pets [post]
func (h *Handler) CreatePet(w http.ResponseWriter, r *http.Request) {
	var req CreatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	ownerEmail, ok := middleware.UserEmailFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	pet, err := h.Svc.Pets.Create(
		r.Context(),
		ownerEmail,
		req.Name,
		req.Type,
		req.Age,
		req.Notes,
	)

	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Sugar().Errorw(
				"create pet failed",
				"error", err,
				"owner", ownerEmail,
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	h.Log.Sugar().Infow("pet created", "name", pet.Name, "owner", ownerEmail)

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toPetResponse(pet))
}

// ListPets returns all pets of the authenticated user, oldest first.
//
// The user is resolved from the JWT (middleware); the ownership filter is
// applied in the query, so other users' pets can never appear here.
//
// Responses:
//   - 200 OK: array of pets (possibly empty);
//   - 401 Unauthorized: missing/invalid token;
//   - 500 Internal Server Error: storage failure.
//
// @Summary      List pets
// @Description  Returns all pets belonging to the authenticated user,
// @Description  ordered by creation time ascending.
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} PetResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /pets [get]
func (h *Handler) ListPets(w http.ResponseWriter, r *http.Request) {
	ownerEmail, ok := middleware.UserEmailFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	pets, err := h.Svc.Pets.List(r.Context(), ownerEmail)
	if err != nil {
		h.Log.Sugar().Errorw("list pets failed", "error", err, "owner", ownerEmail)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	resp := make([]PetResponse, 0, len(pets))
	for _, p := range pets {
		resp = append(resp, toPetResponse(p))
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
