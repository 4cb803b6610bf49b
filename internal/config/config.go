package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	Timezone    string
	Database    DatabaseConfig
	RateLimit   RateLimitConfig

	location *time.Location
}

// RateLimitConfig holds the local server rate limiting settings
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TIMEZONE", DefaultTimezone)
	v.SetDefault("PLANTILLAS_CRUD_PORT", DefaultPort)
	v.SetDefault("PLANTILLAS_CRUD_SCHEME", SchemeStandard)
	v.SetDefault("PLANTILLAS_CRUD_CONNECT_TIMEOUT", "10s")
	v.SetDefault("RATE_LIMIT_RPS", 50.0)
	v.SetDefault("RATE_LIMIT_BURST", 100)

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Timezone:    v.GetString("TIMEZONE"),
		Database: DatabaseConfig{
			Scheme:         strings.ToLower(v.GetString("PLANTILLAS_CRUD_SCHEME")),
			Host:           v.GetString("PLANTILLAS_CRUD_HOST"),
			Port:           v.GetString("PLANTILLAS_CRUD_PORT"),
			Username:       v.GetString("PLANTILLAS_CRUD_USERNAME"),
			Password:       v.GetString("PLANTILAS_CRUD_PASS"),
			Name:           v.GetString("PLANTILLAS_CRUD_DB"),
			Collection:     CollectionName,
			ConnectTimeout: v.GetDuration("PLANTILLAS_CRUD_CONNECT_TIMEOUT"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration and resolves the timezone
func (c *Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	c.location = loc

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return nil
}

// Location returns the configured timezone, UTC when it has not been resolved
func (c *Config) Location() *time.Location {
	if c.location == nil {
		if loc, err := time.LoadLocation(c.Timezone); err == nil {
			c.location = loc
		} else {
			return time.UTC
		}
	}
	return c.location
}

// NewLogger builds the application logger for the current deployment mode
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if IsServerlessMode() || c.Environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
