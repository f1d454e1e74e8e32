package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported persistence drivers
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Config holds application configuration
type Config struct {
	// Persistence
	DBDriver string

	// PostgreSQL
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// MongoDB
	MongoURI    string
	MongoDBName string

	// Server
	ServerPort       string
	GinMode          string
	CORSAllowOrigins []string

	// Logging
	LogLevel string

	// Warnings collects problems found while loading. They are logged once
	// the logger is configured.
	Warnings []string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		DBDriver: strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "subwaypass"),
		DBName:     getEnv("DB_NAME", "subway"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName: getEnv("MONGO_DB_NAME", "subway"),

		ServerPort:       getEnv("SERVER_PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "release"),
		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	switch config.DBDriver {
	case DriverPostgres, DriverMongo, DriverMemory:
	default:
		config.Warnings = append(config.Warnings,
			"unknown DB_DRIVER "+strconv.Quote(config.DBDriver)+", using postgres as fallback")
		config.DBDriver = DriverPostgres
	}

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
