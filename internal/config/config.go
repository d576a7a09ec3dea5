package config

import (
	"os"
	"strconv"

	"golift/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Analysis AnalysisConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// AnalysisConfig holds the statistical conventions applied by default.
// Both can be overridden per request.
type AnalysisConfig struct {
	Confidence float64 // confidence level for interval estimates
	Alpha      float64 // significance threshold for the verdict
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Analysis: AnalysisConfig{
			Confidence: getEnvFloatOrDefault("CONFIDENCE_LEVEL", 0.95),
			Alpha:      getEnvFloatOrDefault("SIGNIFICANCE_ALPHA", 0.05),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Analysis.Confidence <= 0 || config.Analysis.Confidence >= 1 {
		return errors.ConfigInvalid("CONFIDENCE_LEVEL must be in (0, 1)")
	}
	if config.Analysis.Alpha <= 0 || config.Analysis.Alpha >= 1 {
		return errors.ConfigInvalid("SIGNIFICANCE_ALPHA must be in (0, 1)")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT cannot be empty")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
