package config_test

import (
	"testing"

	"txd-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "textures", cfg.Storage.Bucket)
	assert.False(t, cfg.Storage.UseSSL)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)

	assert.True(t, cfg.Batch.PauseOnExit)
	assert.False(t, cfg.Batch.StrictExit)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BATCH_PAUSE_ON_EXIT", "false")
	t.Setenv("BATCH_STRICT_EXIT", "true")
	t.Setenv("STORAGE_BUCKET", "staging-textures")
	t.Setenv("STORAGE_TIMEOUT_SECONDS", "5")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Batch.PauseOnExit)
	assert.True(t, cfg.Batch.StrictExit)
	assert.Equal(t, "staging-textures", cfg.Storage.Bucket)
	assert.Equal(t, 5, cfg.Storage.TimeoutSeconds)
}
