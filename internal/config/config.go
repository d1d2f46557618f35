package config

import (
	"os"
)

// Storage backend selectors
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string

	// Storage selects the persistence adapter: memory, file or postgres
	Storage string

	// StorePath is the JSON store location for the file adapter
	StorePath string

	// DatabaseURL is the Postgres connection string for the postgres adapter
	DatabaseURL string

	// TablePrefix scopes database tables per environment
	TablePrefix string

	// LogDir, when set, sends logs to a timestamped file there
	// instead of stdout
	LogDir string

	// Debug enables debug-level logging
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		Storage:     getEnv("STORAGE", StorageFile),
		StorePath:   getEnv("STORE_PATH", "data/classeur.json"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		TablePrefix: getTablePrefix(env),
		LogDir:      getEnv("LOG_DIR", ""),
		Debug:       getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
