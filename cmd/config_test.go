package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)

	assert.Equal(t, "mainnet", config.Network)
	assert.Equal(t, 15*time.Second, config.Timeout)
	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, 50, config.Log.MaxSizeMB)
	assert.Empty(t, config.Endpoints.Blockchain)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
endpoints:
  blockchain: http://localhost:3000
network: signet
timeout: 3s
log:
  level: debug
  file: /tmp/murray.log
  max_backups: 7
`), 0600))

	config, err := LoadConfig(path, true)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", config.Endpoints.Blockchain)
	assert.Empty(t, config.Endpoints.Prices)
	assert.Equal(t, "signet", config.Network)
	assert.Equal(t, 3*time.Second, config.Timeout)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "/tmp/murray.log", config.Log.File)
	assert.Equal(t, 7, config.Log.MaxBackups)
	assert.Equal(t, 28, config.Log.MaxAgeDays)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), true)
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoints: [not, a, map]"), 0600))
	_, err = LoadConfig(path, true)
	require.ErrorContains(t, err, "failed to parse config")
}

func TestConfigApply(t *testing.T) {
	config := &Config{Network: "mainnet", Log: LogConfig{Level: "warn"}}
	c := &cli{logLevel: "debug", network: "testnet"}
	c.overrides.Lightning = "http://localhost:3002"

	config.apply(c)

	assert.Equal(t, "testnet", config.Network)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "http://localhost:3002", config.Endpoints.Lightning)
	assert.Empty(t, config.Endpoints.Blockchain)
}

func TestNewLogger(t *testing.T) {
	t.Run("stderr", func(t *testing.T) {
		var buf strings.Builder
		logger, err := newLogger(LogConfig{Level: "info"}, &buf)
		require.NoError(t, err)

		logger.Debug("hidden")
		logger.Info("shown", zap.String("k", "v"))
		require.NoError(t, logger.Sync())

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "INFO")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("rotated file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "murray.log")
		logger, err := newLogger(LogConfig{Level: "debug", File: path, MaxSizeMB: 1}, os.Stderr)
		require.NoError(t, err)

		logger.Debug("to file")
		require.NoError(t, logger.Sync())

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "to file")
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := newLogger(LogConfig{Level: "loud"}, os.Stderr)
		require.Error(t, err)
	})
}
