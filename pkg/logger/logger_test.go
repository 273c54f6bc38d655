package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestFromContext_AddsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "debug", "json")
	t.Cleanup(func() { Init("info", "json") })

	ctx := WithContext(context.Background(), RequestIDKey, "req-1")
	ctx = WithContext(ctx, RouteKey, "generate-text")
	Error(ctx, "error in /generate-text", errors.New("upstream failed"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "generate-text", entry["route"])
	assert.Equal(t, "upstream failed", entry["error"])
}

func TestParseLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "warn", "text")
	t.Cleanup(func() { Init("info", "json") })

	Info(context.Background(), "dropped")
	Warn(context.Background(), "kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestDefault_ConcurrentWithInit(t *testing.T) {
	t.Cleanup(func() { Init("info", "json") })

	g := new(errgroup.Group)
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			ctx := WithContext(context.Background(), RequestIDKey, "req")
			Debug(ctx, "concurrent")
			assert.NotNil(t, Default())
			return nil
		})
	}
	g.Go(func() error {
		InitWithWriter(io.Discard, "debug", "text")
		return nil
	})
	require.NoError(t, g.Wait())
}
