package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. Callers that treat absence as a normal outcome (rather
	// than a failure) check for it with errors.Is.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g. a user with the same username).
	ErrDuplicate = errors.New("entity already exists")

	// ErrIDConflict is returned when a freshly generated random
	// identifier collides with an existing one. Practically unreachable
	// given the id entropy, but surfaced rather than silently
	// overwritten.
	ErrIDConflict = errors.New("generated id already in use")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrSessionNotFound indicates that no session matches the given token.
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)

	// ErrTaskNotFound indicates that no task matches (user id, task id).
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrUsernameExists indicates that a user with the given username
	// already exists. Usernames are unique case-sensitively.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
