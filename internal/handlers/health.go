package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse represents the health-check body.
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`
	// example: 2026-08-29T12:00:00Z
	Timestamp string `json:"timestamp"`
	// Uptime in seconds
	// example: 12.5
	Uptime float64 `json:"uptime"`
}

// NewHealthHandler returns a liveness handler reporting process uptime.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler(start time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Uptime:    time.Since(start).Seconds(),
		})
	}
}
