package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/user-auth-api/internal/logger"
)

// Debug controls whether 500 responses carry the underlying error text.
// Set once at startup from APP_ENV; production keeps internals out of bodies.
var Debug bool

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func internalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)

	msg := "Internal server error"
	if Debug && err != nil {
		msg = err.Error()
	}

	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}
