package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBDriver  string // "sqlite" or "postgres"
	DBDsn     string
	SaltRound int

	SessionTTLMin int  // session lifetime in minutes
	SeedDemo      bool // seed demo users/courses on startup
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBDsn:     getEnv("DB_DSN", "gradebook.db"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		SessionTTLMin: getEnvInt("SESSION_TTL_MIN", 120),
		SeedDemo:      getEnvBool("SEED_DEMO", true),
	}

	// Validate critical configuration
	if AppConfig.DBDriver != "sqlite" && AppConfig.DBDriver != "postgres" {
		log.Printf("Warning: Unknown DB_DRIVER %q. Falling back to sqlite.", AppConfig.DBDriver)
		AppConfig.DBDriver = "sqlite"
	}
	if AppConfig.DBDsn == "gradebook.db" {
		log.Println("Warning: Using default DB_DSN. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a bool or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
