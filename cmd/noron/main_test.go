package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noron-ml/noron/internal/ndarray"
)

func TestLogLevelZap(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  zapcore.Level
	}{
		{LogLevelDebug, zap.DebugLevel},
		{"trace", zap.DebugLevel},
		{LogLevelInfo, zap.InfoLevel},
		{LogLevelWarn, zap.WarnLevel},
		{"warning", zap.WarnLevel},
		{LogLevelError, zap.ErrorLevel},
		{"bogus", zap.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.Zap().Level(), "level %q", tt.level)
	}
}

func TestParseDemoConfig(t *testing.T) {
	cfg, err := parseDemoConfig([]string{"-dims", "4, 5", "-seed", "7", "-log-level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, cfg.Dims)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)

	cfg, err = parseDemoConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 10, 10}, cfg.Dims)
	assert.NotZero(t, cfg.Seed)

	_, err = parseDemoConfig([]string{"-dims", "4,x"})
	assert.Error(t, err)
	_, err = parseDemoConfig([]string{"-dims", " "})
	assert.Error(t, err)
}

func TestRunDemo(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	res, err := runDemo(demoConfig{Dims: []int{10, 10, 10}, Seed: 42}, log)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.SoftmaxSum, 1e-9)

	entries := logs.FilterMessage("demo complete").All()
	require.Len(t, entries, 1)
	assert.Equal(t, res.Sum, entries[0].ContextMap()["sum"])
}

func TestRunDemoDeterministic(t *testing.T) {
	cfg := demoConfig{Dims: []int{3, 4}, Seed: 5}
	a, err := runDemo(cfg, zap.NewNop())
	require.NoError(t, err)
	b, err := runDemo(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunDemoInvalidDims(t *testing.T) {
	_, err := runDemo(demoConfig{Dims: []int{3, 0}, Seed: 1}, zap.NewNop())
	assert.ErrorIs(t, err, ndarray.ErrShape)
}
