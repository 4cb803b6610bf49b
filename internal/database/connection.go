package database

import (
	"context"
	"fmt"
	"net"
	"net/url"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"plantillas-crud-api/internal/config"
	"plantillas-crud-api/internal/repositories"
	mongorepo "plantillas-crud-api/internal/repositories/mongo"
)

// Session is an open connection to the document store
type Session interface {
	// Plantillas returns the repository bound to the configured database and collection
	Plantillas() repositories.PlantillaRepository

	// Close releases the connection
	Close(ctx context.Context) error
}

// Connector opens sessions. Connect returns nil when the connection cannot be
// established; the cause is logged, never returned.
type Connector interface {
	Connect(ctx context.Context) Session
}

// MongoConnector opens MongoDB client sessions from a DatabaseConfig
type MongoConnector struct {
	config config.DatabaseConfig
	logger *logrus.Logger
}

// NewConnector creates a new MongoDB connector
func NewConnector(cfg config.DatabaseConfig, logger *logrus.Logger) *MongoConnector {
	if logger == nil {
		logger = logrus.New()
	}
	return &MongoConnector{
		config: cfg,
		logger: logger,
	}
}

// BuildURI builds the connection string for the configured scheme. Credentials
// are only included when both username and password are present.
func BuildURI(cfg config.DatabaseConfig) (string, error) {
	u := url.URL{Path: "/"}

	switch cfg.Scheme {
	case config.SchemeStandard:
		u.Scheme = config.SchemeStandard
		u.Host = net.JoinHostPort(cfg.Host, cfg.Port)
	case config.SchemeSRV:
		u.Scheme = config.SchemeSRV
		u.Host = cfg.Host
		u.Path = "/" + cfg.Name
		u.RawQuery = "retryWrites=true&w=majority"
	default:
		return "", fmt.Errorf("unsupported connection scheme: %q", cfg.Scheme)
	}

	if cfg.Host == "" {
		return "", fmt.Errorf("database host is required")
	}

	if cfg.HasCredentials() {
		u.User = url.UserPassword(cfg.Username, cfg.Password)
	}

	return u.String(), nil
}

// Connect opens a client for the configured database
func (c *MongoConnector) Connect(ctx context.Context) Session {
	uri, err := BuildURI(c.config)
	if err != nil {
		c.logger.WithError(err).Error("Error client DB")
		return nil
	}

	opts := options.Client().ApplyURI(uri)
	if c.config.ConnectTimeout > 0 {
		opts.SetConnectTimeout(c.config.ConnectTimeout)
		opts.SetServerSelectionTimeout(c.config.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"scheme": c.config.Scheme,
			"host":   c.config.Host,
			"error":  err.Error(),
		}).Error("Error client DB")
		return nil
	}

	c.logger.WithFields(logrus.Fields{
		"scheme":   c.config.Scheme,
		"host":     c.config.Host,
		"database": c.config.Name,
	}).Debug("Client DB successful")

	return &mongoSession{
		client:     client,
		database:   c.config.Name,
		collection: c.config.Collection,
	}
}

type mongoSession struct {
	client     *mongo.Client
	database   string
	collection string
}

func (s *mongoSession) Plantillas() repositories.PlantillaRepository {
	name := s.collection
	if name == "" {
		name = config.CollectionName
	}
	return mongorepo.NewPlantillaRepository(s.client.Database(s.database).Collection(name))
}

func (s *mongoSession) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// Close releases the session if there is one. Errors are logged, not returned.
func Close(ctx context.Context, session Session, logger *logrus.Logger) {
	if session == nil {
		return
	}

	if err := session.Close(ctx); err != nil {
		if logger != nil {
			logger.WithError(err).Warn("Error close client DB")
		}
		return
	}

	if logger != nil {
		logger.Debug("Closed client DB")
	}
}
