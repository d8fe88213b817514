package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmolinero/biblioteca-api/internal/logger"
	"github.com/dmolinero/biblioteca-api/internal/models"
)

// Tokener defines the token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// UserGetter resolves the token subject to a stored user.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var authUserKey = contextKey{}

// GetUserFromContext retrieves the authenticated identity from the
// context. Returns nil outside of protected routes.
func GetUserFromContext(ctx context.Context) *models.AuthUser {
	user, _ := ctx.Value(authUserKey).(*models.AuthUser)
	return user
}

// ContextWithUser attaches the authenticated identity to the context.
func ContextWithUser(ctx context.Context, user *models.AuthUser) context.Context {
	return context.WithValue(ctx, authUserKey, user)
}

// AuthMiddleware verifies the bearer token, resolves the caller in the
// credential store, and attaches the {id, email} projection to the
// request context. Any failure short-circuits with 401 and no detail
// about the verification step that failed.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			user, err := users.GetByID(ctx, userID)
			if err != nil || user == nil {
				logger.Log.Errorw("authorization failed", "user_id", userID, "err", err)
				unauthorized(w)
				return
			}

			ctx = ContextWithUser(ctx, &models.AuthUser{
				ID:    user.ID,
				Email: user.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
