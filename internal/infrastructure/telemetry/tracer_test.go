package telemetry

import (
	"context"
	"testing"

	infraconfig "github.com/africommerce/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	tp, err := NewTracerProvider(context.Background(), infraconfig.TelemetryConfig{
		Enabled: false,
	}, zap.NewNop())

	require.NoError(t, err)
	assert.False(t, tp.IsEnabled())
	assert.NoError(t, tp.Shutdown(context.Background()))
	assert.NoError(t, tp.ForceFlush(context.Background()))
	assert.NotNil(t, tp.Tracer("test"))
}

func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "order.create")
	require.NotNil(t, span)
	defer span.End()

	assert.NotNil(t, ctx)
	// With the no-op provider the span context carries no trace ID.
	assert.Empty(t, GetTraceID(context.Background()))
}

func TestStartServiceSpan(t *testing.T) {
	_, span := StartServiceSpan(context.Background(), "order", "transition")
	require.NotNil(t, span)
	span.End()
}

func TestRecordError_NilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordError(nil, nil)
		SetOK(nil)
	})
}
