package config

import (
	"fmt"
	"time"
)

const (
	// SchemeStandard connects directly to host:port
	SchemeStandard = "mongodb"
	// SchemeSRV resolves the host through DNS seed lists (managed clusters)
	SchemeSRV = "mongodb+srv"

	// CollectionName is the collection holding plantilla documents
	CollectionName = "plantilla"

	DefaultPort     = "27017"
	DefaultTimezone = "America/Bogota"
)

// DatabaseConfig holds the document store connection parameters
type DatabaseConfig struct {
	Scheme         string        `mapstructure:"scheme"`
	Host           string        `mapstructure:"host"`
	Port           string        `mapstructure:"port"`
	Username       string        `mapstructure:"username"`
	Password       string        `mapstructure:"password"`
	Name           string        `mapstructure:"name"`
	Collection     string        `mapstructure:"collection"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// HasCredentials reports whether both username and password are set
func (c *DatabaseConfig) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}

// Validate validates the database configuration
func (c *DatabaseConfig) Validate() error {
	switch c.Scheme {
	case SchemeStandard, SchemeSRV:
	default:
		return fmt.Errorf("unsupported connection scheme: %s", c.Scheme)
	}

	if c.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}

	if c.Scheme == SchemeStandard && c.Port == "" {
		return fmt.Errorf("database port cannot be empty")
	}

	if c.Name == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	if c.Collection == "" {
		c.Collection = CollectionName
	}

	if c.ConnectTimeout < 0 {
		return fmt.Errorf("connect timeout cannot be negative")
	}

	return nil
}
