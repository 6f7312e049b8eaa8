package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Mongo    MongoConfig
	SkipSeed bool
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	StaticDir       string
}

type MongoConfig struct {
	URI             string
	Database        string
	ConnectAttempts int
	ConnectDelay    time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "3000"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
			StaticDir:       getEnv("STATIC_DIR", "web"),
		},
		Mongo: MongoConfig{
			URI:             getEnv("MONGO_URI", "mongodb://localhost:27017/courseStore"),
			Database:        getEnv("MONGO_DB", "courseStore"),
			ConnectAttempts: getEnvAsInt("MONGO_CONNECT_ATTEMPTS", 10),
			ConnectDelay:    time.Duration(getEnvAsInt("MONGO_CONNECT_DELAY_MS", 2000)) * time.Millisecond,
		},
		SkipSeed: getEnvAsBool("CI", false),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}

	if c.Mongo.ConnectAttempts < 1 {
		return fmt.Errorf("MONGO_CONNECT_ATTEMPTS must be at least 1")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool treats any value other than "", "false" and "0" as true,
// matching how CI systems set flags like CI=true or CI=1
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if b, err := strconv.ParseBool(valueStr); err == nil {
		return b
	}
	return true
}
