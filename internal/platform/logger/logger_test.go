package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "debug"},
		{level: "info"},
		{level: "WARN"},
		{level: "Error"},
		{level: "verbose", wantErr: true},
		{level: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run("level "+tc.level, func(t *testing.T) {
			log, err := Setup(tc.level)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Nil(t, log)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, log)
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()

	// Without a stored logger, the default is returned.
	assert.Equal(t, slog.Default(), FromContext(ctx))

	stored := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx = WithLogger(ctx, stored)
	assert.Equal(t, stored, FromContext(ctx))
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Equal(t, fallback, FromContextOrDefault(context.Background(), fallback))
	assert.Equal(t, slog.Default(), FromContextOrDefault(context.Background(), nil))

	stored := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), stored)
	assert.Equal(t, stored, FromContextOrDefault(ctx, fallback))
}
