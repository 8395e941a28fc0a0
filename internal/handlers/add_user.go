package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/user-auth-api/internal/models"
)

// RandomUserAdder defines the interface that the user generator must implement.
type RandomUserAdder interface {
	AddRandom(ctx context.Context) (*models.UserDB, error)
}

// NewAddUserHandler returns an HTTP handler that inserts a generated demo
// user and responds with a plain-text confirmation.
// @Summary Add a generated user
// @Description Inserts a demo user with random name and address. Requires a valid bearer token.
// @Tags users
// @Produce plain
// @Security BearerAuth
// @Success 200 {string} string "Confirmation with generated id, name and address"
// @Failure 401 {object} handlers.ErrorResponse "Missing authentication token"
// @Failure 403 {object} handlers.ErrorResponse "Invalid authentication token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /add-user [get]
func NewAddUserHandler(svc RandomUserAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.AddRandom(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Inserted user, ID: %d, Name: %s, Address: %s", user.ID, user.Name, user.Address)
	}
}
