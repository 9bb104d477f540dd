package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// ErrMissingSecret is returned when JWT_SECRET is unset. The service refuses
// to start with an empty signing secret.
var ErrMissingSecret = errors.New("app: JWT_SECRET is required")

type Config struct {
	JWTSecret     string        // Required: HMAC signing secret for tokens
	AccessTTL     time.Duration // Optional: access token lifetime (default: 30m)
	RefreshTTL    time.Duration // Optional: refresh token lifetime (default: 14 days)
	AccessHeader  string        // Optional: header carrying the access token (default: Authorization)
	RefreshHeader string        // Optional: header carrying the refresh token (default: Authorization-Refresh)

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./sucat.db)
	PepperFile           string        // Optional: path to password hashing pepper file (default: ./pepper)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired token sweep interval (default: 1h)
}

func LoadConfig() (Config, error) {
	cfg := Config{
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AccessTTL:     getEnvDurationOrDefault("JWT_ACCESS_TTL", 30*time.Minute),
		RefreshTTL:    getEnvDurationOrDefault("JWT_REFRESH_TTL", 14*24*time.Hour),
		AccessHeader:  getEnvOrDefault("JWT_ACCESS_HEADER", "Authorization"),
		RefreshHeader: getEnvOrDefault("JWT_REFRESH_HEADER", "Authorization-Refresh"),

		DatabaseFile:         getEnvOrDefault("DATABASE_FILE", "sucat.db"),
		PepperFile:           getEnvOrDefault("PEPPER_FILE", "pepper"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingSecret
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Duration string first ("30m", "1h"), integer seconds as fallback
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
