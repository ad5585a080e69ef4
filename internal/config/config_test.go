package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults when the file is missing", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "R", conf.RestartKey)
		assert.Equal(t, 600, conf.Window.Width)
		assert.Equal(t, 600, conf.Window.Height)
		assert.Equal(t, "Tic Tac Toe", conf.Window.Title)
		assert.False(t, conf.Status.Enabled)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Values from the file", func(t *testing.T) {
		// Given: a config file overriding some values
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nwindow:\n  width: 900\n  height: 900\nstatus:\n  enabled: true\n  http-port: \"8081\"\nredis:\n  enabled: true\n  host: cache\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the config
		conf, err := Load(path)

		// Then: file values win and the rest fall back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 900, conf.Window.Width)
		assert.True(t, conf.Status.Enabled)
		assert.Equal(t, "8081", conf.Status.HTTPPort)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "local", conf.SnapshotSlot)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		// Given: a restart key set in the environment
		t.Setenv("RESTART_KEY", "Space")

		// When: loading without a file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment value is used
		require.NoError(t, err)
		assert.Equal(t, "Space", conf.RestartKey)
	})

	t.Run("Window too small", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
		}{
			{name: "zero width", content: "window:\n  width: 0\n  height: 600\n"},
			{name: "negative height", content: "window:\n  width: 600\n  height: -1\n"},
			{name: "narrower than the grid", content: "window:\n  width: 2\n  height: 2\n"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "config.yml")
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

				_, err := Load(path)

				require.ErrorIs(t, err, ErrInvalidWindowSize)
			})
		}
	})

	t.Run("Window too small in the environment", func(t *testing.T) {
		t.Setenv("WINDOW_WIDTH", "0")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.ErrorIs(t, err, ErrInvalidWindowSize)
	})

	t.Run("Broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("window: [unclosed"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
	})
}

func TestMustLoad_Panics(t *testing.T) {
	t.Run("Broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("window: [unclosed"), 0o600))

		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Zero window size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 0\n  height: 0\n"), 0o600))

		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	t.Run("Level from the environment", func(t *testing.T) {
		// Given: LOG_LEVEL=debug and no config file
		t.Setenv("LOG_LEVEL", "debug")

		// When: loading the config
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the logger level is debug
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, conf.SlogLevel())
	})

	tests := []struct {
		logLevel string
		expected slog.Level
	}{
		{logLevel: "debug", expected: slog.LevelDebug},
		{logLevel: "info", expected: slog.LevelInfo},
		{logLevel: "WARN", expected: slog.LevelWarn},
		{logLevel: "error", expected: slog.LevelError},
		{logLevel: "verbose", expected: slog.LevelInfo},
		{logLevel: "", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			conf := &Config{LogLevel: tt.logLevel}

			assert.Equal(t, tt.expected, conf.SlogLevel())
		})
	}
}
