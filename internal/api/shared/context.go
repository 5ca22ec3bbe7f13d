package shared

import (
	"context"
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-api/internal/domain"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// UserIDContextKey is the context key for the authenticated user's ID
	UserIDContextKey ContextKey = "userID"

	// SessionTokenContextKey is the context key for the session token the
	// request authenticated with
	SessionTokenContextKey ContextKey = "sessionToken"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a freshly generated trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID creates a random trace ID for request tracking,
// rendered as a 32-character hex string.
func generateTraceID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// WithUserID stores the authenticated user's ID in the context.
func WithUserID(ctx context.Context, userID domain.UserID) context.Context {
	return context.WithValue(ctx, UserIDContextKey, userID)
}

// GetUserID retrieves the authenticated user's ID from the context.
// The boolean reports whether a user ID was present.
func GetUserID(ctx context.Context) (domain.UserID, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(domain.UserID)
	return userID, ok
}
