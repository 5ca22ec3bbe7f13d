package shared_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskboard/taskboard-api/internal/api/shared"
	"github.com/taskboard/taskboard-api/internal/domain"
)

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := shared.SetTraceID(context.Background())
	traceID := shared.GetTraceID(ctx)

	assert.Len(t, traceID, 32)

	other := shared.GetTraceID(shared.SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)
}

func TestGetTraceIDMissing(t *testing.T) {
	assert.Equal(t, "", shared.GetTraceID(context.Background()))
}

func TestUserIDRoundTrip(t *testing.T) {
	ctx := shared.WithUserID(context.Background(), domain.UserID(42))

	userID, ok := shared.GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, domain.UserID(42), userID)

	_, ok = shared.GetUserID(context.Background())
	assert.False(t, ok)
}
