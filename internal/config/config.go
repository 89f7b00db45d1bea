// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir         string // Base directory for the market database (always absolute)
	Port            int
	DevMode         bool
	LogLevel        string
	CronSecret      string // Shared secret for the scheduled collector trigger
	ManualRunKey    string // Query-string key for manual collector runs
	CollectSchedule string // Cron expression for the collection cycle
	OpinetAPIKey    string // Fuel prices (optional - missing key degrades to fallback)
	RebAPIKey       string // Real estate index (optional)
	EcosAPIKey      string // Bank of Korea statistics (optional)
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", "./data")
	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}
	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:         absDataDir,
		Port:            getEnvAsInt("PORT", 8080),
		DevMode:         getEnvAsBool("DEV_MODE", false),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CronSecret:      getEnv("CRON_SECRET", ""),
		ManualRunKey:    getEnv("MANUAL_RUN_KEY", ""),
		CollectSchedule: getEnv("COLLECT_SCHEDULE", "@every 10m"),
		OpinetAPIKey:    getEnv("OPINET_API_KEY", ""),
		RebAPIKey:       getEnv("REB_API_KEY", ""),
		EcosAPIKey:      getEnv("ECOS_API_KEY", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	// The collector trigger endpoint is unusable without at least one of the
	// two auth mechanisms. Source API keys stay optional: a missing key only
	// degrades that source to fallback data.
	if c.CronSecret == "" && c.ManualRunKey == "" {
		return fmt.Errorf("CRON_SECRET or MANUAL_RUN_KEY must be set")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
