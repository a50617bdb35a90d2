package api

import (
	"encoding/json"
	"net/http"
)

// HealthResponse is the health-check response body.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health reports service liveness.
//
// @Summary      Health check
// @Description  Returns service liveness.
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(HealthResponse{
		Status:  "healthy",
		Service: "pawzy-api",
	})
}
