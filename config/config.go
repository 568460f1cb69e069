package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	App      AppConfig
	Pipeline PipelineConfig
	Export   ExportConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Environment string
	Port        string
}

// PipelineConfig holds tunables of the analytics pipelines
type PipelineConfig struct {
	// VisitDateFormat is the Go layout for joined visit dates in the
	// customer extraction output.
	VisitDateFormat string
	// MaxUploadMB caps the size of an uploaded CSV.
	MaxUploadMB int
}

// ExportConfig holds CSV export configuration
type ExportConfig struct {
	Dir string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist in production
		fmt.Println("No .env file found")
	}

	config := &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
		},
		Pipeline: PipelineConfig{
			VisitDateFormat: getEnv("VISIT_DATE_FORMAT", "02/01/2006"),
			MaxUploadMB:     getEnvInt("MAX_UPLOAD_MB", 32),
		},
		Export: ExportConfig{
			Dir: getEnv("EXPORT_DIR", "exports"),
		},
	}

	return config, nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an integer environment variable with a fallback value
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
