// Package config loads application configuration from the environment
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Redis    RedisConfig
	Catalog  CatalogConfig
	Leveling LevelingConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CatalogConfig points at the compendium data the planner resolves
// references against
type CatalogConfig struct {
	// Path is a JSON file holding an array of catalog item entries
	Path string
}

// LevelingConfig holds progression tuning
type LevelingConfig struct {
	// MaxLevel caps progression; 0 uses the built-in table cap
	MaxLevel int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Catalog: CatalogConfig{
			Path: os.Getenv("CATALOG_PATH"),
		},
		Leveling: LevelingConfig{
			MaxLevel: getEnvAsIntOrDefault("LEVELING_MAX_LEVEL", 0),
		},
	}

	if cfg.Catalog.Path == "" {
		return nil, fmt.Errorf("CATALOG_PATH is required")
	}
	if cfg.Leveling.MaxLevel < 0 {
		return nil, fmt.Errorf("LEVELING_MAX_LEVEL must not be negative")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
