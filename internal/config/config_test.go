package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"PORT", "GIN_MODE", "ASSETS_DIR", "CONTACT_ADDRESS", "TITLE_INTERVAL",
	"SHUTDOWN_TIMEOUT", "IP_HASH_SALT", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv unsets every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "./public", cfg.AssetsDir)
	assert.Empty(t, cfg.ContactAddress)
	assert.Equal(t, 3*time.Second, cfg.TitleInterval)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, LogConfig{Level: "info", Format: "json"}, cfg.Log)
	assert.False(t, cfg.IsDevelopment())
}

func TestOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("CONTACT_ADDRESS", "me@example.com")
	t.Setenv("TITLE_INTERVAL", "1500ms")
	t.Setenv("LOG_FORMAT", "CONSOLE")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "me@example.com", cfg.ContactAddress)
	assert.Equal(t, 1500*time.Millisecond, cfg.TitleInterval)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"PORT", "", "PORT cannot be empty"},
		{"TITLE_INTERVAL", "soon", "TITLE_INTERVAL"},
		{"TITLE_INTERVAL", "-1s", "TITLE_INTERVAL must be > 0"},
		{"SHUTDOWN_TIMEOUT", "0s", "SHUTDOWN_TIMEOUT must be > 0"},
		{"GIN_MODE", "prod", "GIN_MODE"},
		{"LOG_FORMAT", "xml", "LOG_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\nTITLE_INTERVAL=5s\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.TitleInterval)
}

func TestEnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "5050")
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "5050", cfg.Port)
}

func TestLoadMissingFileFallsBackToEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "6060")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "6060", cfg.Port)
}
