package domain

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// sessionTokenBytes is the number of random bytes in a session token.
// Hex encoding doubles it to the 32-character wire form.
const sessionTokenBytes = 16

// ErrMalformedToken is returned by ParseSessionToken when the input
// does not have the shape of a session token.
var ErrMalformedToken = errors.New("malformed session token")

// SessionToken is an opaque bearer credential proving a successful
// prior login. Its textual form is exactly 32 lowercase hex characters.
// The zero value is invalid; tokens are obtained from NewSessionToken
// or ParseSessionToken only, so downstream code never sees a malformed
// token.
type SessionToken struct {
	value string
}

// NewSessionToken generates a fresh random session token from 16 bytes
// of crypto/rand entropy.
func NewSessionToken() (SessionToken, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return SessionToken{}, fmt.Errorf("failed to generate session token: %w", err)
	}
	return SessionToken{value: hex.EncodeToString(b)}, nil
}

// ParseSessionToken validates the textual form of a token received from
// a client. Returns ErrMalformedToken for any input that is not exactly
// 32 hex characters.
func ParseSessionToken(s string) (SessionToken, error) {
	if len(s) != 2*sessionTokenBytes {
		return SessionToken{}, ErrMalformedToken
	}
	if _, err := hex.DecodeString(s); err != nil {
		return SessionToken{}, ErrMalformedToken
	}
	return SessionToken{value: s}, nil
}

// String returns the 32-character wire form of the token.
func (t SessionToken) String() string {
	return t.value
}

// IsZero reports whether the token is the invalid zero value.
func (t SessionToken) IsZero() bool {
	return t.value == ""
}
