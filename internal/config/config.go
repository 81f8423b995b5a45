// Package config provides configuration for the portfolio engine service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Dialog tables (empty = embedded default)
	DialogConfigPath string

	// Session state store: "memory" or "redis"
	SessionBackend string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisPrefix    string
	SessionTTL     time.Duration

	// Timeouts
	CommitTimeout time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:         getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:      getEnv("DATABASE_URL", "file:dreamforge.db?cache=shared&mode=rwc"),
		DialogConfigPath: getEnv("DIALOG_CONFIG_PATH", ""),
		SessionBackend:   getEnv("SESSION_BACKEND", "memory"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPrefix:      getEnv("REDIS_PREFIX", "dreamforge:session"),
		SessionTTL:       time.Duration(getEnvInt("SESSION_TTL_MS", 86400000)) * time.Millisecond,
		CommitTimeout:    time.Duration(getEnvInt("COMMIT_TIMEOUT_MS", 10000)) * time.Millisecond,
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
