package config

import (
	"os"
	"strconv"

	"github.com/mmrzaf/tabgen/internal/domain"
)

type Config struct {
	OutputDir string
	LogLevel  string
	BatchSize int
}

func Load() *Config {
	return &Config{
		OutputDir: getEnv("TABGEN_OUTPUT_DIR", "."),
		LogLevel:  getEnv("TABGEN_LOG_LEVEL", "info"),
		BatchSize: getEnvInt("TABGEN_BATCH_SIZE", domain.DefaultBatchSize),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
