package auth

import "errors"

// Domain errors returned by the auth service. These are expected,
// user-facing outcomes, distinct from infrastructure failures which
// are propagated unwrapped into a generic server error at the API
// boundary.
var (
	// ErrUserNotFound is returned by Login when the username is unknown.
	ErrUserNotFound = errors.New("user not found")

	// ErrIncorrectPassword is returned by Login when the username exists
	// but the password does not match.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrInvalidUsername is returned by Register when the username fails
	// format validation.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidPassword is returned by Register when the password fails
	// format validation.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUserAlreadyExists is returned by Register when the username is
	// already taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)
