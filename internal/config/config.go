package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"finboard/internal/logger"
)

// StoreBackend selects where transactions are persisted.
type StoreBackend string

const (
	StoreBackendMongo    StoreBackend = "mongo"
	StoreBackendPostgres StoreBackend = "postgres"
	StoreBackendSQLite   StoreBackend = "sqlite"
)

// IsValid reports whether b names a supported backend.
func (b StoreBackend) IsValid() bool {
	switch b {
	case StoreBackendMongo, StoreBackendPostgres, StoreBackendSQLite:
		return true
	}
	return false
}

// placeholderMongoURI is used when MONGODB_URI is unset. It is not a valid
// connection string and connecting with it fails.
const placeholderMongoURI = "your_connection_string"

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Storage
	StoreBackend  StoreBackend
	StoreTimeout  time.Duration
	MongoURI      string
	MongoDatabase string
	SQLitePath    string

	// Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Budget sessions
	SessionTTL time.Duration
	SessionMax int
}

// Load loads configuration from environment variables, reading a .env file
// first when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug(".env file not found, using process environment")
	}

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		StoreBackend:  StoreBackend(getEnv("STORE_BACKEND", string(StoreBackendMongo))),
		StoreTimeout:  getEnvDuration("STORE_TIMEOUT", 10*time.Second),
		MongoURI:      getEnv("MONGODB_URI", placeholderMongoURI),
		MongoDatabase: getEnv("MONGODB_DATABASE", "finboard"),
		SQLitePath:    getEnv("SQLITE_PATH", "finboard.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "finboard"),
		DBPassword: getEnv("DB_PASSWORD", "finboard"),
		DBName:     getEnv("DB_NAME", "finboard"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SessionTTL: getEnvDuration("SESSION_TTL", 24*time.Hour),
		SessionMax: getEnvInt("SESSION_MAX", 1000),
	}

	if !cfg.StoreBackend.IsValid() {
		return nil, fmt.Errorf("invalid STORE_BACKEND %q (use mongo, postgres, or sqlite)", cfg.StoreBackend)
	}
	if cfg.StoreBackend == StoreBackendMongo && cfg.MongoURI == placeholderMongoURI {
		logger.Get().Warn("MONGODB_URI is not set; connecting will fail")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		logger.Get().Warnf("invalid %s value '%s', falling back to %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		logger.Get().Warnf("invalid %s value '%s', falling back to %d", key, raw, defaultValue)
		return defaultValue
	}
	return n
}
