package config

import (
	"fmt"     // DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv"   // For loading .env files
	"github.com/sirupsen/logrus" // Fatal logging for startup validation
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	DBUser        string // Database user
	DBPassword    string // Database password
	DBHost        string // Database host
	DBPort        string // Database port
	DBName        string // Database name
	JWTSecret     string // JWT signing secret
	AccessMinutes int    // Access token lifetime in minutes
	RefreshDays   int    // Refresh token lifetime in days
	RedisAddr     string // Redis server address
	RedisPass     string // Redis password
	RedisDB       int    // Redis database number
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables.
// Missing required values are fatal: the process cannot serve without them.
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:       getEnvDefault("APP_PORT", "8080"),
		DBUser:        mustGetenv("DB_USER"),
		DBPassword:    mustGetenv("DB_PASSWORD"),
		DBHost:        mustGetenv("DB_HOST"),
		DBPort:        mustGetenv("DB_PORT"),
		DBName:        mustGetenv("DB_NAME"),
		JWTSecret:     mustGetenv("JWT_SECRET"),
		AccessMinutes: mustGetenvInt("ACCESS_TOKEN_EXPIRE_MINUTES"),
		RefreshDays:   mustGetenvInt("REFRESH_TOKEN_EXPIRE_DAYS"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPass:     os.Getenv("REDIS_PASS"),
		RedisDB:       redisDB,
		IsProd:        os.Getenv("IS_PROD") == "true",
	}
}

// DSN builds the Postgres connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

// mustGetenv reads an environment variable and fails startup when it is absent
func mustGetenv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		logrus.Fatalf("missing required environment variable %s", key)
	}
	return v
}

// mustGetenvInt reads a required integer environment variable
func mustGetenvInt(key string) int {
	v, err := strconv.Atoi(mustGetenv(key))
	if err != nil {
		logrus.Fatalf("environment variable %s must be an integer: %v", key, err)
	}
	return v
}

// getEnvDefault reads an environment variable with a fallback value
func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
