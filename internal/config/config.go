package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends understood by storage.Open.
const (
	BackendJSON     = "json"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Config holds application configuration
type Config struct {
	// Runtime
	Env  string
	Port string

	// Storage
	StorageBackend string
	DataDir        string
	SQLitePath     string
	MigrationsDir  string

	// Database
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendJSON)),
		DataDir:        getEnv("DATA_DIR", "data"),
		SQLitePath:     getEnv("SQLITE_PATH", "loterias.db"),
		MigrationsDir:  getEnv("MIGRATIONS_DIR", "migrations"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "loterias"),
		DBPassword:  getEnv("DB_PASSWORD", "loterias"),
		DBName:      getEnv("DB_NAME", "loterias"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects unknown storage backends.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendJSON, BackendPostgres, BackendSQLite:
		return nil
	}
	return fmt.Errorf("unsupported STORAGE_BACKEND %q (use json, postgres or sqlite)", c.StorageBackend)
}

// PostgresURL returns DATABASE_URL when set, otherwise a URL assembled from the DB_* parts.
func (c *Config) PostgresURL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
