package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is loaded once at
// startup and passed to the components that need it.
type Config struct {
	Env           string
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTExpiration time.Duration

	RateLimitRequests int64
	RateLimitWindow   time.Duration
}

// Load reads configuration from a .env file when present, falling back to
// the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Env:               getEnv("ENV", "development"),
		Port:              getEnv("PORT", "5000"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", "default_secret"),
		RateLimitRequests: int64(getEnvInt("RATE_LIMIT_REQUESTS", 100)),
	}

	expiration, err := time.ParseDuration(getEnv("JWT_EXPIRATION", "1h"))
	if err != nil {
		return nil, err
	}
	cfg.JWTExpiration = expiration

	window, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "15m"))
	if err != nil {
		return nil, err
	}
	cfg.RateLimitWindow = window

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
