package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// PasswordScheme encodes a password for storage and compares a stored
// credential with a login attempt.
type PasswordScheme interface {
	// Hash returns the storable form of a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a stored credential against a plaintext password.
	// Returns nil on match, an error otherwise.
	Compare(stored, password string) error
}

// PlaintextScheme stores and compares passwords as provided, for
// behavioral parity with the system this service replaces. A known
// weakness; prefer BcryptScheme for new deployments.
type PlaintextScheme struct{}

// NewPlaintextScheme creates a new PlaintextScheme.
func NewPlaintextScheme() *PlaintextScheme {
	return &PlaintextScheme{}
}

// Hash implements PasswordScheme by returning the password unchanged.
func (s *PlaintextScheme) Hash(password string) (string, error) {
	return password, nil
}

// Compare implements PasswordScheme with a byte-for-byte comparison in
// constant time.
func (s *PlaintextScheme) Compare(stored, password string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return ErrIncorrectPassword
	}
	return nil
}

// BcryptScheme implements PasswordScheme using bcrypt.
type BcryptScheme struct{}

// NewBcryptScheme creates a new BcryptScheme.
func NewBcryptScheme() *BcryptScheme {
	return &BcryptScheme{}
}

// Hash implements PasswordScheme using bcrypt with the default cost.
func (s *BcryptScheme) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare implements PasswordScheme using bcrypt.
func (s *BcryptScheme) Compare(stored, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err != nil {
		return ErrIncorrectPassword
	}
	return nil
}
