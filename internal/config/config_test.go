package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quez2777/hodos-360-website/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7860", cfg.Listen)
	assert.Equal(t, 30*time.Second, cfg.ActionTimeout)
	assert.Equal(t, "memory", cfg.Share.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Share.TTL)
	assert.Equal(t, "#10439F", cfg.Theme.Primary)
	assert.Equal(t, "#FFB700", cfg.Theme.Accent)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
listen: ":9000"
action_timeout: 10s
share:
  backend: redis
  redis:
    address: "redis.internal:6379"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Listen)
	assert.Equal(t, 10*time.Second, cfg.ActionTimeout)
	assert.Equal(t, "redis", cfg.Share.Backend)
	assert.Equal(t, "redis.internal:6379", cfg.Share.Redis.Address)
	// Untouched sections keep their defaults.
	assert.Equal(t, 24*time.Hour, cfg.Share.TTL)
	assert.Equal(t, "#10439F", cfg.Theme.Primary)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("share:\n  backend: etcd\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown share backend")
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
