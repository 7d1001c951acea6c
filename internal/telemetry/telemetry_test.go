package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/shaharia-lab/pushover-mcp/internal/telemetry"
)

func TestSetup_Disabled(t *testing.T) {
	before := otel.GetTracerProvider()

	p, err := telemetry.Setup(context.Background(), "")
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, before, otel.GetTracerProvider())
}

func TestSetup_Enabled(t *testing.T) {
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://127.0.0.1:4317")

	p, err := telemetry.Setup(context.Background(), "http://127.0.0.1:4317")
	require.NoError(t, err)

	assert.True(t, p.Enabled())
	assert.Same(t, p.TracerProvider, otel.GetTracerProvider())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, p.Shutdown(ctx))
}
