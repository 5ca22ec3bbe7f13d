package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/taskboard/taskboard-api/internal/api/shared"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// SessionResolver resolves a session token to the user it belongs to.
// Implemented by auth.Service.
type SessionResolver interface {
	AuthorizedUserID(ctx context.Context, token domain.SessionToken) (domain.UserID, error)
}

// AuthMiddleware authenticates requests via the session cookie.
type AuthMiddleware struct {
	sessions SessionResolver
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(sessions SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate reads the session cookie, resolves it to a user and adds the
// user ID to the request context. Requests with a missing, malformed or
// unknown token get a 401 and never reach the wrapped handler.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := shared.ReadSessionToken(r)
		if err != nil {
			shared.RespondUnauthorized(w, r)
			return
		}

		userID, err := m.sessions.AuthorizedUserID(r.Context(), token)
		if err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				shared.RespondUnauthorized(w, r)
				return
			}
			shared.RespondServerError(w, r, err)
			return
		}

		ctx := shared.WithUserID(r.Context(), userID)
		ctx = context.WithValue(ctx, shared.SessionTokenContextKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user's ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (domain.UserID, bool) {
	return shared.GetUserID(r.Context())
}
