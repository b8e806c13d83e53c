package config

import (
	"os"
	"strings"
)

// Config holds all configuration for the game server.
type Config struct {
	// HTTP
	Port           string
	AllowedOrigins []string

	// Station dataset sources, checked in order: Postgres, SQLite, JSON file.
	DatabaseURL  string
	DatabasePath string
	StationsJSON string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8081"),
		AllowedOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DatabasePath:   getEnv("SQLITE_DATABASE", ""),
		StationsJSON:   getEnv("STATIONS_JSON", "data/stations.json"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
