package config

import (
	"os"
	"strconv"

	"github.com/srkael/painel-de-analise-de-ecommerce/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Database  DatabaseConfig
	Profiling ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
	Host string
}

// DataConfig holds dataset settings
type DataConfig struct {
	// DatasetFile points at the product CSV or XLSX. Empty is allowed only
	// in demo mode, where a generated catalog is served instead.
	DatasetFile string
	Demo        bool
}

// DatabaseConfig holds the optional archive database settings
type DatabaseConfig struct {
	URL string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8050"),
			Host: getEnvOrDefault("HOST", "0.0.0.0"),
		},
		Data: DataConfig{
			DatasetFile: getEnvOrDefault("DATASET_FILE", "ecommerce_estatistica.csv"),
			Demo:        getEnvBoolOrDefault("DEMO_MODE", false),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Profiling: ProfilingConfig{
			Port:    getEnvOrDefault("PPROF_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// LoadArchive reads configuration for the archive tool, which requires a
// database in addition to the dataset.
func LoadArchive() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}
	if config.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required for archiving")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Data.DatasetFile == "" && !config.Data.Demo {
		return errors.ConfigInvalid("DATASET_FILE is required outside demo mode")
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
