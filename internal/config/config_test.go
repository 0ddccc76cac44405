package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		DBPath:        ":memory:",
		LogLevel:      "info",
		PageSize:      10,
		AuthDelay:     500 * time.Millisecond,
		PasswordDelay: time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errorString string
	}{
		{name: "valid defaults", mutate: func(*Config) {}},
		{name: "zero delays allowed", mutate: func(c *Config) { c.AuthDelay, c.PasswordDelay = 0, 0 }},
		{
			name:        "empty db path",
			mutate:      func(c *Config) { c.DBPath = "" },
			errorString: "database path cannot be empty",
		},
		{
			name:        "unknown log level",
			mutate:      func(c *Config) { c.LogLevel = "loud" },
			errorString: "invalid log level 'loud'",
		},
		{
			name:        "page size too small",
			mutate:      func(c *Config) { c.PageSize = 0 },
			errorString: "invalid page size 0: must be at least 1",
		},
		{
			name:        "page size too large",
			mutate:      func(c *Config) { c.PageSize = 500 },
			errorString: "invalid page size 500: must be at most 100",
		},
		{
			name:        "negative auth delay",
			mutate:      func(c *Config) { c.AuthDelay = -time.Second },
			errorString: "invalid auth delay -1s: must not be negative",
		},
		{
			name:        "password delay too long",
			mutate:      func(c *Config) { c.PasswordDelay = 2 * time.Minute },
			errorString: "invalid password delay 2m0s: must be at most 1 minute",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errorString == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestConfig_ValidateAggregates(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""
	cfg.PageSize = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database path")
	assert.Contains(t, err.Error(), "page size")
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"STUDIODESK_DB", "STUDIODESK_LOG_FILE", "STUDIODESK_LOG_LEVEL", "STUDIODESK_PAGE_SIZE",
		"STUDIODESK_AUTH_DELAY", "STUDIODESK_PASSWORD_DELAY", "STUDIODESK_SKIP_LOGIN",
	} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 500*time.Millisecond, cfg.AuthDelay)
	assert.Equal(t, time.Second, cfg.PasswordDelay)
	assert.False(t, cfg.SkipLogin)
	assert.NotEmpty(t, cfg.LogFile)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("STUDIODESK_DB", "/tmp/studio.db")
	t.Setenv("STUDIODESK_LOG_LEVEL", "debug")
	t.Setenv("STUDIODESK_PAGE_SIZE", "25")
	t.Setenv("STUDIODESK_AUTH_DELAY", "0s")
	t.Setenv("STUDIODESK_PASSWORD_DELAY", "250ms")
	t.Setenv("STUDIODESK_SKIP_LOGIN", "true")

	cfg := FromEnv()
	assert.Equal(t, "/tmp/studio.db", cfg.DBPath)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, 25, cfg.PageSize)
	assert.Zero(t, cfg.AuthDelay)
	assert.Equal(t, 250*time.Millisecond, cfg.PasswordDelay)
	assert.True(t, cfg.SkipLogin)
}

func TestFromEnv_BadValuesFallBack(t *testing.T) {
	t.Setenv("STUDIODESK_PAGE_SIZE", "many")
	t.Setenv("STUDIODESK_AUTH_DELAY", "soon")
	t.Setenv("STUDIODESK_SKIP_LOGIN", "maybe")

	cfg := FromEnv()
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 500*time.Millisecond, cfg.AuthDelay)
	assert.False(t, cfg.SkipLogin)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STUDIODESK_PAGE_SIZE=7\n"), 0o644))

	t.Chdir(dir)

	// Set then unset so the original value is restored after the test.
	t.Setenv("STUDIODESK_PAGE_SIZE", "")
	os.Unsetenv("STUDIODESK_PAGE_SIZE")

	cfg := Load()
	assert.Equal(t, 7, cfg.PageSize)
}
