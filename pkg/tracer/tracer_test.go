package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestStart_WithoutInit(t *testing.T) {
	ctx, span := Start(context.Background(), "genai.GenerateContent")
	defer span.End()

	assert.NotNil(t, ctx)
	assert.NotNil(t, span)
}

func TestStart_ConcurrentWithInit(t *testing.T) {
	g := new(errgroup.Group)
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			_, span := Start(context.Background(), "genai.GenerateContent")
			span.End()
			return nil
		})
	}
	g.Go(func() error {
		shutdown, err := Init(context.Background(), Config{ServiceName: "genai-relay-test"})
		if err != nil {
			return err
		}
		return shutdown(context.Background())
	})
	require.NoError(t, g.Wait())
}

func TestSampler(t *testing.T) {
	assert.Equal(t, "AlwaysOnSampler", sampler(1).Description())
	assert.Equal(t, "AlwaysOffSampler", sampler(0).Description())
	assert.Contains(t, sampler(0.5).Description(), "TraceIDRatioBased")
}
