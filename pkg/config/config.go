package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Parser  ParserConfig
	Logging LoggingConfig
}

type ParserConfig struct {
	// DedupWindow is the tolerance for treating two parsed records as the
	// same underlying event.
	DedupWindow time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string // "text" or "json"
}

// Load reads configuration from the environment, after loading a local .env
// file when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Parser: ParserConfig{
			DedupWindow: time.Duration(getEnvAsInt("DEDUP_WINDOW_SECONDS", 60)) * time.Second,
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
