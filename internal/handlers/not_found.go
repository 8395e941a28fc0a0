package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/user-auth-api/internal/logger"
)

// NotFoundResponse is the body returned for unknown routes.
type NotFoundResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// NewNotFoundHandler returns the fallback handler for unmatched routes.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Log.Warnw("route not found", "method", r.Method, "path", r.URL.Path)

		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(NotFoundResponse{
			Message: "resource not found",
			Path:    r.URL.Path,
		})
	}
}
