package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Redis configuration (optional — an empty RedisURL disables the
	// purchase idempotency cache and the service runs fully in-memory)
	RedisURL         string
	RedisPoolSize    int
	RedisMinIdleConn int
	RedisMaxRetries  int
	RedisDialTimeout time.Duration

	// TTL for stored purchase responses in the idempotency cache
	IdempotencyTTL time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string

	// Application metadata
	AppName    string
	AppVersion string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		ServerHost:       getEnv("SERVER_HOST", "0.0.0.0"),
		RedisURL:         getEnv("REDIS_URL", ""),
		RedisPoolSize:    getEnvInt("REDIS_POOL_SIZE", 10),
		RedisMinIdleConn: getEnvInt("REDIS_MIN_IDLE_CONNS", 2),
		RedisMaxRetries:  getEnvInt("REDIS_MAX_RETRIES", 3),
		RedisDialTimeout: getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		IdempotencyTTL:   getEnvDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		AppName:          "vise-api",
		AppVersion:       getEnv("APP_VERSION", "dev"),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug/info/warn/error)", c.LogLevel)
	}

	if c.ServerPort == "" {
		return fmt.Errorf("server_port is required")
	}

	if c.IdempotencyTTL <= 0 {
		return fmt.Errorf("idempotency_ttl must be positive")
	}

	return nil
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return c.ServerHost + ":" + c.ServerPort
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return defaultVal
		}
		return i
	}
	return defaultVal
}

// getEnvDuration retrieves a duration environment variable or returns a default value
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return defaultVal
		}
		return d
	}
	return defaultVal
}
