package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dmolinero/biblioteca-api/internal/middlewares"
)

// CurrentUserErrorResponse represents an error response for the current-user endpoint
// swagger:model CurrentUserErrorResponse
type CurrentUserErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewCurrentUserHandler returns an HTTP handler projecting the identity
// resolved by the authentication middleware. No further lookup happens.
// @Summary Current user
// @Description Returns the id and email of the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} models.AuthUser "Authenticated user"
// @Failure 401 {object} handlers.CurrentUserErrorResponse "Unauthorized"
// @Router /auth/me [get]
// @Security BearerAuth
func NewCurrentUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CurrentUserErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
