package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Clean.Prefix)
	assert.False(t, cfg.Clean.Middle)
	assert.True(t, cfg.Clean.Suffix)
	assert.Empty(t, cfg.Terms.ExtraFile)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BASENAME_LOG_LEVEL", "debug")
	t.Setenv("BASENAME_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestInitLogger_BadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "nope", Format: "console"})
	assert.Error(t, err)
}

func TestInitLogger_JSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "warn", Format: "json"})
	assert.NoError(t, err)
}
