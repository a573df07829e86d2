package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultLLMAPIURL is used when LLM_API_URL is not set
const DefaultLLMAPIURL = "https://api.openai.com/v1/chat/completions"

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// LLM provider configuration
	LLMAPIKey string
	LLMAPIURL string
	LLMModel  string
}

// LoadConfig creates a new Config instance from environment variables.
// Secrets may alternatively be supplied through files referenced by
// <NAME>_FILE variables, for Docker secret mounts.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBName:     getEnv("DB_NAME", "cookai"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),
		RedisHost:  getEnv("REDIS_HOST", "localhost"),
		RedisPort:  getEnv("REDIS_PORT", "6379"),
		RedisURL:   os.Getenv("REDIS_URL"),
		LLMAPIURL:  getEnv("LLM_API_URL", DefaultLLMAPIURL),
		LLMModel:   getEnv("LLM_MODEL", "gpt-3.5-turbo"),
	}

	var err error
	if cfg.DBPassword, err = getSecret("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.RedisPassword, err = getSecret("REDIS_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.JWTSecret, err = getSecret("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.LLMAPIKey, err = getSecret("LLM_API_KEY"); err != nil {
		return nil, err
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are present
func Validate(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET or JWT_SECRET_FILE must be set")
	}
	if cfg.LLMAPIKey == "" {
		return fmt.Errorf("LLM_API_KEY or LLM_API_KEY_FILE must be set")
	}
	if cfg.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getSecret reads a value from the environment, falling back to the file
// named by the <key>_FILE variable.
func getSecret(key string) (string, error) {
	if v := os.Getenv(key); v != "" {
		return v, nil
	}
	file := os.Getenv(key + "_FILE")
	if file == "" {
		return "", nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read secret file for %s: %w", key, err)
	}
	return strings.TrimSpace(string(data)), nil
}
