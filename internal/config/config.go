package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Gateway GatewayConfig
	Batch   BatchConfig
	Server  ServerConfig
}

// GatewayConfig selects and tunes the remote gateway
type GatewayConfig struct {
	Mode           string // "http" or "memory"
	BackendURL     string
	RequestTimeout time.Duration
}

// BatchConfig tunes the reconciliation layer
type BatchConfig struct {
	EnrichmentLimit int
	LookupTimeout   time.Duration
	SeedOnEmpty     bool
}

// ServerConfig configures the mock backend server
type ServerConfig struct {
	Port string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Gateway: GatewayConfig{
			Mode:           getEnv("GATEWAY_MODE", "http"),
			BackendURL:     getEnv("BACKEND_URL", "http://localhost:3000"),
			RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
		},
		Batch: BatchConfig{
			EnrichmentLimit: getInt("ENRICHMENT_LIMIT", 8),
			LookupTimeout:   getDuration("LOOKUP_TIMEOUT", 5*time.Second),
			SeedOnEmpty:     getEnv("SEED_ON_EMPTY", "true") == "true",
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getInt gets an integer environment variable with default value
func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getDuration gets a duration environment variable with default value
func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
