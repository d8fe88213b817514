package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmolinero/biblioteca-api/internal/logger"
	"github.com/dmolinero/biblioteca-api/internal/services"
)

// PasswordUpdater defines the interface that the password-change service must implement.
type PasswordUpdater interface {
	UpdatePassword(ctx context.Context, email, newPassword string) error
}

// UpdatePasswordRequest represents the JSON body for a password change
// swagger:model UpdatePasswordRequest
type UpdatePasswordRequest struct {
	// Email
	// required: true
	// default: william@example.com
	Email string `json:"email" validate:"required,email"`

	// New password
	// required: true
	// default: NewPassword123
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordErrorResponse represents an error response for a password change
// swagger:model UpdatePasswordErrorResponse
type UpdatePasswordErrorResponse struct {
	// Error message
	// default: User is not registered
	Error string `json:"error"`
}

// NewUpdatePasswordHandler returns an HTTP handler for changing a user's
// password. On success the response body is a plain confirmation message.
// @Summary Update password
// @Description Overwrites the password of the user with the given email
// @Tags auth
// @Accept json
// @Produce plain
// @Param updatePasswordRequest body handlers.UpdatePasswordRequest true "Password change request"
// @Success 200 {string} string "Password updated successfully"
// @Failure 400 {object} handlers.UpdatePasswordErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.UpdatePasswordErrorResponse "User is not registered"
// @Router /auth/update-password [post]
// @Security BearerAuth
func NewUpdatePasswordHandler(svc PasswordUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdatePasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdatePasswordErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdatePasswordErrorResponse{
				Error: "invalid email or empty password",
			})
			return
		}

		if err := svc.UpdatePassword(r.Context(), req.Email, req.Password); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdatePasswordErrorResponse{
					Error: "User is not registered",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdatePasswordErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Password updated successfully"))
	}
}
