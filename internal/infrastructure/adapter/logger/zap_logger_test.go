package logger

import (
	"errors"
	"testing"

	"github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_LevelFiltering(t *testing.T) {
	obsCore, logs := observer.New(zap.DebugLevel)
	log := NewFromCore(obsCore)

	log.SetLevel(core.LogLevelWarn)
	log.Debug("debug", nil)
	log.Info("info", nil)
	log.Warn("warn", nil)
	log.Error("error", nil)

	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "warn", logs.All()[0].Message)
	assert.Equal(t, "error", logs.All()[1].Message)
}

func TestZapLogger_Fields(t *testing.T) {
	obsCore, logs := observer.New(zap.DebugLevel)
	log := NewFromCore(obsCore)

	log.Info("transfer completed", map[string]any{
		"transaction_id": "tx-1",
		"amount":         "10.00",
		"error":          errors.New("ignored"),
	})

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "tx-1", ctx["transaction_id"])
	assert.Equal(t, "10.00", ctx["amount"])
	assert.Equal(t, "ignored", ctx["error"])
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelDebug)
	log.Info("nothing", map[string]any{"k": "v"})

	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	assert.NoError(t, log.Flush())
}
