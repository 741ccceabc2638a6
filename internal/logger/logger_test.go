package logger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerLevels(t *testing.T) {
	log := NewLogger(false)
	assert.False(t, log.Core().Enabled(zap.DebugLevel))
	assert.True(t, log.Core().Enabled(zap.InfoLevel))

	debugLog := NewLoggerWithVerbose(true, true)
	assert.True(t, debugLog.Core().Enabled(zap.DebugLevel))
}

func TestNewCLILoggerLevels(t *testing.T) {
	tests := []struct {
		name           string
		debug, verbose bool
		lowest         zapcore.Level
	}{
		{name: "default", lowest: zap.WarnLevel},
		{name: "verbose", verbose: true, lowest: zap.InfoLevel},
		{name: "debug", debug: true, lowest: zap.DebugLevel},
		{name: "debug and verbose", debug: true, verbose: true, lowest: zap.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core := NewCLILogger(tt.debug, tt.verbose).Core()
			assert.True(t, core.Enabled(tt.lowest))
			if tt.lowest > zap.DebugLevel {
				assert.False(t, core.Enabled(tt.lowest-1))
			}
		})
	}
}

func TestWithRunAddsRunID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	log, runID := WithRun(zap.New(core), "patch")
	_, err := uuid.Parse(runID)
	require.NoError(t, err)

	log.Info("hello")
	require.Equal(t, 1, logs.Len())

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, runID, fields["run_id"])
	assert.Equal(t, "patch", fields["command"])
}
