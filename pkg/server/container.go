package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"plantillas-crud-api/internal/config"
	"plantillas-crud-api/internal/database"
	"plantillas-crud-api/internal/handlers"
	"plantillas-crud-api/internal/models"
	"plantillas-crud-api/pkg/lambda"
)

// Container holds all application dependencies. It is built once per process;
// database sessions are not part of it and are opened per request.
type Container struct {
	Config           *config.Config
	Logger           *logrus.Logger
	Connector        database.Connector
	Validator        *models.Validator
	Formatter        *lambda.Formatter
	PlantillaHandler *handlers.PlantillaHandler
}

// NewContainer creates a new dependency injection container backed by MongoDB
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	logger := cfg.NewLogger()
	if sc := config.GetServerlessConfig(); sc.IsLambda {
		logger.WithFields(sc.Fields()).Info("Initializing Lambda function")
	}
	return NewContainerWithConnector(cfg, database.NewConnector(cfg.Database, logger), logger)
}

// NewContainerWithConnector creates a container around an existing connector
func NewContainerWithConnector(cfg *config.Config, connector database.Connector, logger *logrus.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if connector == nil {
		return nil, fmt.Errorf("database connector is required")
	}
	if logger == nil {
		logger = cfg.NewLogger()
	}

	validator := models.NewValidator(cfg.Location())
	formatter := lambda.NewFormatter(cfg.Location())

	return &Container{
		Config:           cfg,
		Logger:           logger,
		Connector:        connector,
		Validator:        validator,
		Formatter:        formatter,
		PlantillaHandler: handlers.NewPlantillaHandler(connector, validator, formatter, logger),
	}, nil
}
