package store

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// ExistsByUsername reports whether a user with the given username
	// exists. The match is case-sensitive and exact.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// GetUsername retrieves the username of the user with the given id.
	// Returns ErrUserNotFound if no such user exists; callers treat
	// that as absence, not as a failure.
	GetUsername(ctx context.Context, id domain.UserID) (string, error)

	// Create registers a new user and assigns a fresh unique id.
	// Returns ErrUsernameExists if the username is already taken;
	// the uniqueness check and the insert are a single atomic step, so
	// concurrent creates with the same username commit at most once.
	Create(ctx context.Context, username, password string) (domain.UserID, error)

	// FindWithPassword looks up a user by username for login, returning
	// the user id together with the stored credential.
	// Returns ErrUserNotFound if the username is unknown.
	FindWithPassword(ctx context.Context, username string) (domain.UserID, string, error)
}
