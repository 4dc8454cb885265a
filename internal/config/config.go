// Package config loads application configuration from environment
// variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Redis  RedisConfig
	Wizard WizardConfig
	DND5E  DND5EConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// WizardConfig holds wizard-specific configuration
type WizardConfig struct {
	// DraftKey is the storage key for the in-progress draft
	DraftKey string
	// DraftTTL bounds how long an abandoned draft survives
	DraftTTL time.Duration
}

// DND5EConfig holds 5e API configuration
type DND5EConfig struct {
	// Enabled switches the live API catalog on; the bundled reference
	// data serves everything when off
	Enabled bool
	Timeout time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Wizard: WizardConfig{
			DraftKey: getEnvOrDefault("WIZARD_DRAFT_KEY", "character-wizard"),
			DraftTTL: getEnvAsDurationOrDefault("WIZARD_DRAFT_TTL", 24*time.Hour),
		},
		DND5E: DND5EConfig{
			Enabled: getEnvAsBoolOrDefault("DND5E_API_ENABLED", false),
			Timeout: getEnvAsDurationOrDefault("DND5E_API_TIMEOUT", 30*time.Second),
		},
	}, nil
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

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
