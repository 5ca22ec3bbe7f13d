package store

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/domain"
)

// SessionStore defines the interface for session persistence.
// Sessions never expire autonomously; a token stays valid until the
// backing store is cleared.
type SessionStore interface {
	// AuthorizedUserID resolves a session token to the user it
	// authenticates. Returns ErrSessionNotFound for unknown tokens;
	// callers treat that as "unauthenticated", not as a failure.
	AuthorizedUserID(ctx context.Context, token domain.SessionToken) (domain.UserID, error)

	// Create issues a new session token for the user. The returned
	// token is guaranteed collision-free at creation time; if that
	// cannot be guaranteed the store returns ErrIDConflict instead of
	// overwriting an existing session.
	Create(ctx context.Context, userID domain.UserID) (domain.SessionToken, error)
}
