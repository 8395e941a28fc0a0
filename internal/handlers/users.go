package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/user-auth-api/internal/models"
)

// UserLister defines the interface that the user-list service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserResponse is one demo user in the list response.
// swagger:model UserResponse
type UserResponse struct {
	// example: 1
	ID int64 `json:"id"`
	// example: Alice42
	Name string `json:"name"`
	// example: Address17
	Address string `json:"address"`
}

// NewListUsersHandler returns an HTTP handler that lists all demo users.
// @Summary List users
// @Description Returns all demo user records. Requires a valid bearer token.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} handlers.UserResponse "List of users"
// @Failure 401 {object} handlers.ErrorResponse "Missing authentication token"
// @Failure 403 {object} handlers.ErrorResponse "Invalid authentication token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}

		resp := make([]UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, UserResponse{
				ID:      u.ID,
				Name:    u.Name,
				Address: u.Address,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
