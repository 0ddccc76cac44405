// Package config reads studiodesk settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/sadopc/studiodesk/internal/log"
)

type Config struct {
	// Database
	DBPath string

	// Logging
	LogFile  string
	LogLevel string

	// Screens
	PageSize int

	// Simulated round trips
	AuthDelay     time.Duration
	PasswordDelay time.Duration
	SkipLogin     bool
}

// Load reads an optional .env file in the working directory and then the
// process environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the process environment only.
func FromEnv() *Config {
	return &Config{
		DBPath:        getEnv("STUDIODESK_DB", ":memory:"),
		LogFile:       getEnv("STUDIODESK_LOG_FILE", defaultLogFile()),
		LogLevel:      getEnv("STUDIODESK_LOG_LEVEL", "info"),
		PageSize:      getEnvInt("STUDIODESK_PAGE_SIZE", 10),
		AuthDelay:     getEnvDuration("STUDIODESK_AUTH_DELAY", 500*time.Millisecond),
		PasswordDelay: getEnvDuration("STUDIODESK_PASSWORD_DELAY", time.Second),
		SkipLogin:     getEnvBool("STUDIODESK_SKIP_LOGIN", false),
	}
}

// Validate returns every problem with the configuration at once.
func (c *Config) Validate() error {
	var errors []string

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.PageSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid page size %d: must be at least 1", c.PageSize))
	} else if c.PageSize > 100 {
		errors = append(errors, fmt.Sprintf("invalid page size %d: must be at most 100", c.PageSize))
	}

	if c.AuthDelay < 0 {
		errors = append(errors, fmt.Sprintf("invalid auth delay %v: must not be negative", c.AuthDelay))
	} else if c.AuthDelay > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid auth delay %v: must be at most 1 minute", c.AuthDelay))
	}
	if c.PasswordDelay < 0 {
		errors = append(errors, fmt.Sprintf("invalid password delay %v: must not be negative", c.PasswordDelay))
	} else if c.PasswordDelay > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid password delay %v: must be at most 1 minute", c.PasswordDelay))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// Level is the parsed log level, info when it does not parse.
func (c *Config) Level() slog.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

func defaultLogFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "studiodesk.log"
	}
	return filepath.Join(dir, "studiodesk", "studiodesk.log")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
