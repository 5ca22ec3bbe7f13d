package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/domain"
)

func TestNewSessionToken(t *testing.T) {
	token, err := domain.NewSessionToken()
	require.NoError(t, err)

	assert.Len(t, token.String(), 32)
	assert.False(t, token.IsZero())

	// A generated token must round-trip through parsing.
	parsed, err := domain.ParseSessionToken(token.String())
	require.NoError(t, err)
	assert.Equal(t, token, parsed)
}

func TestNewSessionTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := domain.NewSessionToken()
		require.NoError(t, err)
		assert.False(t, seen[token.String()], "duplicate token %s", token)
		seen[token.String()] = true
	}
}

func TestParseSessionToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "valid token", input: "0123456789abcdef0123456789abcdef", valid: true},
		{name: "empty", input: "", valid: false},
		{name: "too short", input: "0123456789abcdef", valid: false},
		{name: "too long", input: "0123456789abcdef0123456789abcdef00", valid: false},
		{name: "non-hex characters", input: "0123456789abcdef0123456789abcdeg", valid: false},
		{name: "32 non-hex characters", input: "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, err := domain.ParseSessionToken(tc.input)
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, tc.input, token.String())
			} else {
				assert.ErrorIs(t, err, domain.ErrMalformedToken)
				assert.True(t, token.IsZero())
			}
		})
	}
}

func TestNewEntityID(t *testing.T) {
	id, err := domain.NewEntityID()
	require.NoError(t, err)
	assert.Len(t, id, 32)

	other, err := domain.NewEntityID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
