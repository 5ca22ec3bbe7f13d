package domain

import "unicode"

// UserID uniquely identifies a registered user. IDs are assigned by the
// users store on registration and are never reused.
type UserID int64

// User represents a registered user of the taskboard application.
//
// The password is stored and compared as provided. This mirrors the
// behavior of the system this service replaces and is a known weakness;
// deployments can opt into bcrypt hashing via the auth configuration.
type User struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // Never expose the credential in JSON
}

// passwordSpecials are the only non-alphanumeric characters a password
// may contain, and at least one of them is required.
const passwordSpecials = "$@!"

// ValidateUsername reports whether username is acceptable for
// registration: at least 6 bytes long, every character a letter
// (Unicode classification), an ASCII digit, or an underscore.
// There is no upper length bound.
func ValidateUsername(username string) bool {
	if len(username) < 6 {
		return false
	}
	for _, c := range username {
		if !unicode.IsLetter(c) && !isASCIIDigit(c) && c != '_' {
			return false
		}
	}
	return true
}

// ValidatePassword reports whether password is acceptable for
// registration: at least 8 bytes long, drawn only from letters, ASCII
// digits, and passwordSpecials, and containing at least one lowercase
// letter, one uppercase letter, one digit, and one special character.
// Letter and case classification follow Unicode.
func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case isASCIIDigit(c):
			hasDigit = true
		case isPasswordSpecial(c):
			hasSpecial = true
		case unicode.IsLetter(c):
			// lower/upper classification happens below
		default:
			return false
		}
		if unicode.IsLower(c) {
			hasLower = true
		}
		if unicode.IsUpper(c) {
			hasUpper = true
		}
	}

	return hasLower && hasUpper && hasDigit && hasSpecial
}

func isASCIIDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isPasswordSpecial(c rune) bool {
	for _, s := range passwordSpecials {
		if c == s {
			return true
		}
	}
	return false
}
