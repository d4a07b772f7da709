package x_log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig covers missing, valid and broken config files.
func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("FileNotFound", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(dir, "missing.json"))
		require.NoError(t, err)
		assert.Equal(t, defaultConfig, *cfg)
	})

	t.Run("ValidConfig", func(t *testing.T) {
		path := filepath.Join(dir, "xlog.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"level": "debug",
			"format": "json",
			"log_file": "logs/bench.log",
			"to_console": false,
			"to_file": true,
			"style": "light",
			"max_size": 20,
			"max_backups": 10,
			"max_age": 30,
			"compress": false
		}`), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Level)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "logs/bench.log", cfg.LogFile)
		assert.False(t, cfg.ToConsole)
		assert.True(t, cfg.ToFile)
		assert.Equal(t, "light", cfg.Style)
		assert.Equal(t, 20, cfg.MaxSize)
		assert.Equal(t, 10, cfg.MaxBackups)
		assert.Equal(t, 30, cfg.MaxAge)
		assert.False(t, cfg.Compress)
	})

	t.Run("PartialConfigGetsDefaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"level":"warn"}`), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Level)
		assert.Equal(t, defaultConfig.LogFile, cfg.LogFile)
		assert.Equal(t, defaultConfig.MaxSize, cfg.MaxSize)
		assert.True(t, cfg.ToConsole, "some output must stay enabled")
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"level": "debug"`), 0o600))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("EnvPath", func(t *testing.T) {
		path := filepath.Join(dir, "env.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"level":"error"}`), 0o600))
		t.Setenv("XLOG_CONFIG", path)

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Level)
	})
}
