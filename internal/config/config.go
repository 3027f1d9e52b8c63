package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string
	LogLevel    string
	LogFormat   string

	// Cron expression for the periodic revenue snapshot log.
	// Empty disables the job.
	RevenueSnapshotSchedule string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		DatabaseURL:             getEnv("DATABASE_URL", ""),
		Port:                    getEnv("PORT", "8080"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		LogFormat:               getEnv("LOG_FORMAT", "text"),
		RevenueSnapshotSchedule: getEnv("REVENUE_SNAPSHOT_SCHEDULE", "@hourly"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
